package optimizer

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gem-optimizer/internal/gear"
)

// Pool is the read-only catalog the scorer picks candidates from.
type Pool struct {
	Gems     []gear.Gem
	Enchants map[gear.Slot][]gear.Enchantment
	Foods    []gear.Food
}

// AddEnchantment appends e to the pool of its slot.
func (p *Pool) AddEnchantment(e gear.Enchantment) {
	if p.Enchants == nil {
		p.Enchants = make(map[gear.Slot][]gear.Enchantment)
	}
	p.Enchants[e.Slot] = append(p.Enchants[e.Slot], e)
}

// Scorer greedily picks the single best gem, enchantment or food from a Pool.
// It never mutates the pool and is safe for concurrent use.
type Scorer struct {
	pool *Pool
}

// NewScorer returns a scorer over pool.
func NewScorer(pool *Pool) *Scorer {
	return &Scorer{pool: pool}
}

// Pool returns the underlying pool.
func (s *Scorer) Pool() *Pool {
	return s.pool
}

// bonusGain is the incremental gain of b against ref under reqs.
func bonusGain(b gear.Bonus, ref gear.Profile, reqs []gear.Requirement) float64 {
	var gain float64
	for i := range reqs {
		if reqs[i].Stat != b.Stat {
			continue
		}
		gain += reqs[i].IncrementalGain(b.Value, ref.Get(b.Stat))
	}
	return gain
}

// BonusesGain sums the incremental gain of every bonus in bs against the same
// reference profile.
func BonusesGain(bs gear.Bonuses, ref gear.Profile, reqs []gear.Requirement) float64 {
	var gain float64
	for _, b := range bs {
		gain += bonusGain(b, ref, reqs)
	}
	return gain
}

// rankOrder returns candidate indices best first. Scores are rounded to whole
// points, sorted stably ascending and then reversed, so among equal scores
// the candidate later in the pool wins.
func rankOrder(n int, score func(i int) float64) []int {
	type entry struct {
		idx int
		key int64
	}
	entries := make([]entry, n)
	for i := range entries {
		entries[i] = entry{idx: i, key: int64(math.Round(score(i)))}
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return cmp.Compare(a.key, b.key) })
	slices.Reverse(entries)

	order := make([]int, n)
	for i, e := range entries {
		order[i] = e.idx
	}
	return order
}

// BestGem returns the pooled gem with the highest incremental gain over ref.
// When the winner is universal and allowRare is false, the runner-up is
// returned instead. The result points into the pool and must not be modified.
func (s *Scorer) BestGem(ref gear.Profile, reqs []gear.Requirement, allowRare bool) (*gear.Gem, error) {
	gems := s.pool.Gems
	if len(gems) == 0 {
		return nil, ErrEmptyPool
	}
	order := rankOrder(len(gems), func(i int) float64 {
		return BonusesGain(gems[i].Bonuses, ref, reqs)
	})
	best := &gems[order[0]]
	if !allowRare && best.Universal {
		if len(order) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrNoFallbackGem, best.Name)
		}
		return &gems[order[1]], nil
	}
	return best, nil
}

// BestEnchantment returns the enchantment pooled for slot with the highest
// incremental gain over ref. The result points into the pool.
func (s *Scorer) BestEnchantment(slot gear.Slot, ref gear.Profile, reqs []gear.Requirement) (*gear.Enchantment, error) {
	enchants := s.pool.Enchants[slot]
	if len(enchants) == 0 {
		return nil, fmt.Errorf("%w %s", ErrNoEnchantments, slot)
	}
	order := rankOrder(len(enchants), func(i int) float64 {
		return BonusesGain(enchants[i].Bonuses, ref, reqs)
	})
	return &enchants[order[0]], nil
}

// UsefulFood returns, in pool order, every food with a strictly positive gain
// against an empty profile.
func (s *Scorer) UsefulFood(reqs []gear.Requirement) []gear.Food {
	var empty gear.Profile
	var out []gear.Food
	for _, f := range s.pool.Foods {
		if BonusesGain(f.Bonuses, empty, reqs) > 0 {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks that the pool can serve a run with the given slots.
func (s *Scorer) Validate(gems, enchants bool, slots []gear.Slot) error {
	if gems && len(s.pool.Gems) == 0 {
		return ErrEmptyPool
	}
	if enchants {
		for _, slot := range slots {
			if len(s.pool.Enchants[slot]) == 0 {
				return fmt.Errorf("%w %s", ErrNoEnchantments, slot)
			}
		}
	}
	return nil
}
