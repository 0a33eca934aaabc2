package optimizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gem-optimizer/internal/gear"
)

// Options selects what a run may change.
type Options struct {
	Gems     bool `yaml:"gems"`
	Enchants bool `yaml:"enchants"`
	Food     bool `yaml:"food"`
	// Prechant additionally tries enchanting everything first and gemming
	// afterwards. It only applies when both gems and enchants are enabled.
	Prechant bool `yaml:"prechant"`
	// AllowRareGem lets a single universal gem be socketed.
	AllowRareGem bool `yaml:"allow_rare_gem"`
}

// Simulator searches the best gems, enchantments and food for a build,
// optionally over rotating items, and keeps the best result found.
type Simulator struct {
	reqs     []gear.Requirement
	build    *gear.Build
	rotation *gear.RotationSet
	scorer   *Scorer
	cfg      Config
	log      *slog.Logger

	best *Distribution
}

// Option customises a Simulator.
type Option func(*Simulator)

// WithConfig sets the search tuning.
func WithConfig(cfg Config) Option {
	return func(s *Simulator) { s.cfg = cfg }
}

// WithLogger sets the logger progress is reported to.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// New returns a simulator for build, whose stats are already part of base.
// Capped requirements are converted to headroom over base here, once.
// rotation may be nil. The simulator works on a copy of build: rotated items
// are locked into the copy and later changes to build are not seen.
func New(base gear.Profile, reqs []gear.Requirement, build *gear.Build, rotation *gear.RotationSet, scorer *Scorer, opts ...Option) *Simulator {
	s := &Simulator{
		reqs:     gear.Normalize(reqs, base),
		build:    build.Clone(),
		rotation: rotation,
		scorer:   scorer,
		cfg:      DefaultConfig(),
		log:      slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Requirements returns the normalised requirements.
func (s *Simulator) Requirements() []gear.Requirement {
	return s.reqs
}

// slots lists every slot an item can occupy during the run.
func (s *Simulator) slots() []gear.Slot {
	var slots []gear.Slot
	for _, it := range s.build.Items() {
		slots = append(slots, it.Slot)
	}
	return append(slots, s.rotation.Slots()...)
}

// Run searches every food candidate against every rotation variant and keeps
// the best Distribution across calls.
func (s *Simulator) Run(ctx context.Context, o Options) error {
	if !o.Gems && !o.Enchants {
		return ErrNoMode
	}
	if err := s.rotation.Validate(); err != nil {
		return err
	}
	if err := s.scorer.Validate(o.Gems, o.Enchants, s.slots()); err != nil {
		return err
	}

	start := time.Now()
	foods := []*gear.Food{nil}
	if o.Food {
		if useful := s.scorer.UsefulFood(s.reqs); len(useful) > 0 {
			foods = foods[:0]
			for i := range useful {
				foods = append(foods, &useful[i])
			}
		}
	}
	s.log.Info("[init] simulation",
		"requirements", len(s.reqs), "foods", len(foods), "variants", s.rotation.Count())

	rs := newRunScorer(s.scorer, s.reqs, s.cfg.Memoize)
	for _, food := range foods {
		for n := 0; ; n++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			rotated, ok := s.rotation.Variant(n)
			if !ok {
				break
			}
			var stats gear.Profile
			for i := range rotated {
				rotated[i].Stats.ApplyTo(&stats)
				s.build.Lock(rotated[i])
			}
			if food != nil {
				food.Bonuses.ApplyTo(&stats)
			}

			d, err := s.solve(rs, o, s.build.Items(), stats)
			if err != nil {
				return fmt.Errorf("variant %d: %w", n, err)
			}
			if food != nil {
				d = d.WithFood(*food)
			}
			s.log.Debug("[variant] solved", "n", n, "food", foodName(food), "gain", d.Gain())
			if s.best == nil || d.Better(*s.best) {
				s.best = &d
			}
		}
	}
	s.log.Info("[done] simulation", "gain", s.Gain(), "elapsed", time.Since(start))
	return nil
}

// solve runs the search mode selected by o from one starting state.
func (s *Simulator) solve(rs *runScorer, o Options, items []gear.Item, stats gear.Profile) (Distribution, error) {
	workers := s.cfg.workers()
	switch {
	case o.Enchants && !o.Gems:
		return prechant(rs, s.reqs, items, stats)
	case o.Gems && !o.Enchants:
		return newSearcher(s.reqs, rs, false, workers, s.log).solve(items, stats, o.AllowRareGem)
	case !o.Prechant:
		return newSearcher(s.reqs, rs, true, workers, s.log).solve(items, stats, o.AllowRareGem)
	}

	chanted, err := prechant(rs, s.reqs, items, stats)
	if err != nil {
		return Distribution{}, err
	}
	pre, err := newSearcher(s.reqs, rs, false, workers, s.log).solve(chanted.Items(), chanted.Stats(), o.AllowRareGem)
	if err != nil {
		return Distribution{}, err
	}
	both, err := newSearcher(s.reqs, rs, true, workers, s.log).solve(items, stats, o.AllowRareGem)
	if err != nil {
		return Distribution{}, err
	}
	if both.Better(pre) {
		return both, nil
	}
	return pre, nil
}

// Result returns the best Distribution found, or false if Run never
// produced one.
func (s *Simulator) Result() (Distribution, bool) {
	if s.best == nil {
		return Distribution{}, false
	}
	return *s.best, true
}

// Gain returns the best gain found, or 0 without a result.
func (s *Simulator) Gain() float64 {
	if s.best == nil {
		return 0
	}
	return s.best.Gain()
}

// Report returns the best Distribution as text, or "" without a result.
func (s *Simulator) Report() string {
	if s.best == nil {
		return ""
	}
	return s.best.String()
}

func foodName(f *gear.Food) string {
	if f == nil {
		return "none"
	}
	return f.Name
}
