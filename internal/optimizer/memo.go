package optimizer

import (
	"strconv"

	"github.com/patrickmn/go-cache"

	"gem-optimizer/internal/gear"
)

// chooser is what the search asks for its next gem or enchantment.
type chooser interface {
	bestGem(ref gear.Profile, allowRare bool) (*gear.Gem, error)
	bestEnchantment(slot gear.Slot, ref gear.Profile) (*gear.Enchantment, error)
}

// runScorer binds a Scorer to the requirements of one run. Rankings depend
// only on the reference profile once requirements are fixed, so they are
// cached per profile when memo is set.
type runScorer struct {
	scorer *Scorer
	reqs   []gear.Requirement
	memo   *cache.Cache
}

func newRunScorer(s *Scorer, reqs []gear.Requirement, memoize bool) *runScorer {
	rs := &runScorer{scorer: s, reqs: reqs}
	if memoize {
		rs.memo = cache.New(cache.NoExpiration, 0)
	}
	return rs
}

func memoKey(kind byte, slot gear.Slot, allowRare bool, ref gear.Profile) string {
	buf := make([]byte, 0, 64)
	buf = append(buf, kind)
	buf = strconv.AppendInt(buf, int64(slot), 10)
	buf = strconv.AppendBool(buf, allowRare)
	for _, v := range ref {
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}

func (rs *runScorer) bestGem(ref gear.Profile, allowRare bool) (*gear.Gem, error) {
	if rs.memo == nil {
		return rs.scorer.BestGem(ref, rs.reqs, allowRare)
	}
	key := memoKey('g', -1, allowRare, ref)
	if v, ok := rs.memo.Get(key); ok {
		return v.(*gear.Gem), nil
	}
	g, err := rs.scorer.BestGem(ref, rs.reqs, allowRare)
	if err != nil {
		return nil, err
	}
	rs.memo.Set(key, g, cache.NoExpiration)
	return g, nil
}

func (rs *runScorer) bestEnchantment(slot gear.Slot, ref gear.Profile) (*gear.Enchantment, error) {
	if rs.memo == nil {
		return rs.scorer.BestEnchantment(slot, ref, rs.reqs)
	}
	key := memoKey('e', slot, false, ref)
	if v, ok := rs.memo.Get(key); ok {
		return v.(*gear.Enchantment), nil
	}
	e, err := rs.scorer.BestEnchantment(slot, ref, rs.reqs)
	if err != nil {
		return nil, err
	}
	rs.memo.Set(key, e, cache.NoExpiration)
	return e, nil
}
