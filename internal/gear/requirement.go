package gear

// Kind tags the two requirement variants.
type Kind int

const (
	// KindCap credits a stat only up to a threshold.
	KindCap Kind = iota
	// KindWeighted credits every point of a stat linearly.
	KindWeighted
)

func (k Kind) String() string {
	switch k {
	case KindCap:
		return "cap"
	case KindWeighted:
		return "weighted"
	}
	return "unknown"
}

// Requirement is one term of the gain function.
//
// For a Cap, Value holds the threshold. Before a simulation it is the absolute
// target; after Normalize it is the remaining headroom above the character's
// starting profile, which may be negative once the cap is already exceeded.
// Weighted requirements ignore Value.
type Requirement struct {
	Kind   Kind
	Stat   Stat
	Value  int
	Weight float64
}

// Cap returns a capped requirement with an absolute target.
func Cap(stat Stat, target int, weight float64) Requirement {
	return Requirement{Kind: KindCap, Stat: stat, Value: target, Weight: weight}
}

// Weighted returns an uncapped linear requirement.
func Weighted(stat Stat, weight float64) Requirement {
	return Requirement{Kind: KindWeighted, Stat: stat, Weight: weight}
}

// Gain is the contribution of a stat holding value in total.
func (r Requirement) Gain(value int) float64 {
	if r.Kind == KindCap && value > r.Value {
		return float64(r.Value) * r.Weight
	}
	return float64(value) * r.Weight
}

// IncrementalGain is the marginal contribution of adding inc on top of
// reference. It equals Gain(reference+inc) - Gain(reference).
func (r Requirement) IncrementalGain(inc, reference int) float64 {
	if r.Kind == KindWeighted {
		return float64(inc) * r.Weight
	}
	if reference > r.Value {
		return 0
	}
	if reference+inc > r.Value {
		return float64(r.Value-reference) * r.Weight
	}
	return float64(inc) * r.Weight
}

// Normalize returns a copy of reqs whose caps are expressed as headroom over
// base. It must be applied exactly once per simulation.
func Normalize(reqs []Requirement, base Profile) []Requirement {
	out := make([]Requirement, len(reqs))
	copy(out, reqs)
	for i := range out {
		if out[i].Kind == KindCap {
			out[i].Value -= base.Get(out[i].Stat)
		}
	}
	return out
}
