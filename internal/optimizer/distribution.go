package optimizer

import "gem-optimizer/internal/gear"

// Distribution is one fully resolved candidate: the stats gained, their gain
// under the run's requirements, the items as they were when scored and the
// food eaten, if any. It is never modified after construction.
type Distribution struct {
	stats gear.Profile
	gain  float64
	items []gear.Item
	food  *gear.Food
}

// NewDistribution scores stats under reqs and snapshots items.
func NewDistribution(stats gear.Profile, reqs []gear.Requirement, items []gear.Item) Distribution {
	return Distribution{
		stats: stats,
		gain:  stats.Gain(reqs),
		items: gear.CloneItems(items),
	}
}

// Gain returns the scalar the distribution is ordered by.
func (d Distribution) Gain() float64 { return d.gain }

// Stats returns the stat growth the distribution scored.
func (d Distribution) Stats() gear.Profile { return d.stats }

// Items returns copies of the resolved items.
func (d Distribution) Items() []gear.Item { return gear.CloneItems(d.items) }

// Food returns the food eaten for this distribution.
func (d Distribution) Food() (gear.Food, bool) {
	if d.food == nil {
		return gear.Food{}, false
	}
	return *d.food, true
}

// Better reports whether d strictly beats other. Ties keep other.
func (d Distribution) Better(other Distribution) bool {
	return d.gain > other.gain
}

// WithFood returns a copy of d recording f as the food eaten.
func (d Distribution) WithFood(f gear.Food) Distribution {
	d.food = &f
	return d
}
