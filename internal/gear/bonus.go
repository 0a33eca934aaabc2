package gear

import "math"

// Bonus grants Value points of Stat.
type Bonus struct {
	Stat  Stat
	Value int
}

// NewBonus returns a flat bonus.
func NewBonus(stat Stat, value int) Bonus {
	return Bonus{Stat: stat, Value: value}
}

// ProcBonus returns the average value of a bonus of raw points that is up for
// duration out of every cooldown seconds.
func ProcBonus(stat Stat, raw int, duration, cooldown float64) Bonus {
	return Bonus{Stat: stat, Value: int(math.Round(float64(raw) * duration / cooldown))}
}

// ApplyTo adds the bonus to p.
func (b Bonus) ApplyTo(p *Profile) {
	p.Add(b.Stat, b.Value)
}

// Bonuses is an ordered set of bonuses applied together.
type Bonuses []Bonus

// ApplyTo adds every bonus to p.
func (bs Bonuses) ApplyTo(p *Profile) {
	for _, b := range bs {
		b.ApplyTo(p)
	}
}
