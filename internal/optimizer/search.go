package optimizer

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"gem-optimizer/internal/gear"
)

// ── Search engine ───────────────────────────────────────────────────

// searcher tries every order of filling the open sockets of a set of items,
// choosing each gem greedily, and keeps the best Distribution it reaches.
type searcher struct {
	reqs    []gear.Requirement
	choose  chooser
	enchant bool // enchant an item the first time one of its sockets is filled
	workers int
	log     *slog.Logger
}

func newSearcher(reqs []gear.Requirement, choose chooser, enchant bool, workers int, log *slog.Logger) *searcher {
	return &searcher{reqs: reqs, choose: choose, enchant: enchant, workers: workers, log: log}
}

func hasUniversal(items []gear.Item) bool {
	for i := range items {
		if items[i].HasUniversalGem() {
			return true
		}
	}
	return false
}

// expand fills each open socket of items in turn and calls visit with the
// resulting stats. items is modified in place for the duration of visit and
// restored before the next socket is tried.
//
// Whether a universal gem may be chosen is decided once, from the state on
// entry, and passed on to visit unchanged.
func (s *searcher) expand(items []gear.Item, stats gear.Profile, allowRare bool, visit func(next gear.Profile, allowRare bool) error) error {
	allowFurther := allowRare && !hasUniversal(items)

	for i := range items {
		it := &items[i]
		for j := range it.Sockets {
			if !it.Sockets[j].Empty() {
				continue
			}
			gem, err := s.choose.bestGem(stats, allowFurther)
			if err != nil {
				return err
			}
			next := stats
			it.Sockets[j].Gem = gem
			gem.Bonuses.ApplyTo(&next)

			granted := false
			if s.enchant && it.Enchant == nil {
				e, err := s.choose.bestEnchantment(it.Slot, next)
				if err != nil {
					it.Sockets[j].Gem = nil
					return err
				}
				it.Enchant = e
				e.Bonuses.ApplyTo(&next)
				granted = true
			}
			if it.SocketBonus != nil && it.SocketsMatch() {
				it.SocketBonus.ApplyTo(&next)
			}

			err = visit(next, allowFurther)

			it.Sockets[j].Gem = nil
			if granted {
				it.Enchant = nil
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// solveSeq returns the best Distribution reachable from items and stats,
// searching on the calling goroutine. items is restored before it returns.
func (s *searcher) solveSeq(items []gear.Item, stats gear.Profile, allowRare bool) (Distribution, error) {
	baseGain := stats.Gain(s.reqs)
	var best *Distribution

	err := s.expand(items, stats, allowRare, func(next gear.Profile, allow bool) error {
		d, err := s.solveSeq(items, next, allow)
		if err != nil {
			return err
		}
		if (best == nil && d.Gain() > baseGain) || (best != nil && d.Better(*best)) {
			best = &d
		}
		return nil
	})
	if err != nil {
		return Distribution{}, err
	}
	if best == nil {
		// items is back in its entry state here
		return NewDistribution(stats, s.reqs, items), nil
	}
	return *best, nil
}

// solve is solveSeq with the first level of branches run on their own
// goroutines. Deeper levels stay sequential. A branch that panics counts as
// its own starting state; a scorer error aborts the search.
func (s *searcher) solve(items []gear.Item, stats gear.Profile, allowRare bool) (Distribution, error) {
	best := NewDistribution(stats, s.reqs, items)

	var g errgroup.Group
	g.SetLimit(s.workers)
	var results []*Distribution

	err := s.expand(items, stats, allowRare, func(next gear.Profile, allow bool) error {
		branch := gear.CloneItems(items)
		res := new(Distribution)
		*res = NewDistribution(next, s.reqs, branch)
		results = append(results, res)

		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					s.log.Warn("[search] branch failed, keeping its starting state",
						"panic", r, "gain", res.Gain())
				}
			}()
			d, err := s.solveSeq(branch, next, allow)
			if err != nil {
				return err
			}
			*res = d
			return nil
		})
		return nil
	})
	werr := g.Wait()
	if err != nil {
		return Distribution{}, err
	}
	if werr != nil {
		return Distribution{}, werr
	}

	for _, d := range results {
		if d.Better(best) {
			best = *d
		}
	}
	s.log.Debug("[search] solved", "branches", len(results), "gain", best.Gain())
	return best, nil
}

// prechant enchants every unenchanted item once, in order, each against the
// stats accumulated so far. An item that is already enchanted keeps its
// enchantment and adds nothing: like the rest of the build, its bonuses are
// taken to be part of the base profile already.
func prechant(choose chooser, reqs []gear.Requirement, items []gear.Item, stats gear.Profile) (Distribution, error) {
	items = gear.CloneItems(items)
	for i := range items {
		if items[i].Enchant != nil {
			continue
		}
		e, err := choose.bestEnchantment(items[i].Slot, stats)
		if err != nil {
			return Distribution{}, err
		}
		items[i].Enchant = e
		e.Bonuses.ApplyTo(&stats)
	}
	return NewDistribution(stats, reqs, items), nil
}
