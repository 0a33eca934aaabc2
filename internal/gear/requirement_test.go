package gear

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	var base Profile
	base.Set(APR, 1383)
	reqs := []Requirement{Cap(APR, 1400, 2.35), Weighted(Agility, 1)}

	norm := Normalize(reqs, base)

	assert.Equal(t, 17, norm[0].Value)
	assert.Equal(t, 1400, reqs[0].Value, "input must stay untouched")
	assert.Equal(t, reqs[1], norm[1])
}

func TestNormalize_AlreadyExceeded(t *testing.T) {
	var base Profile
	base.Set(HitRate, 250)

	norm := Normalize([]Requirement{Cap(HitRate, 230, 2.19)}, base)

	assert.Equal(t, -20, norm[0].Value)
	assert.Zero(t, norm[0].IncrementalGain(10, 0))
}

func TestCap_IncrementalMatchesAbsolute(t *testing.T) {
	for _, remaining := range []int{-5, 0, 17, 50} {
		r := Requirement{Kind: KindCap, Stat: APR, Value: remaining, Weight: 2.35}
		for ref := 0; ref <= 60; ref++ {
			for inc := 0; inc <= 30; inc++ {
				want := r.Gain(ref+inc) - r.Gain(ref)
				assert.InDelta(t, want, r.IncrementalGain(inc, ref), 1e-9,
					"remaining=%d ref=%d inc=%d", remaining, ref, inc)
			}
		}
	}
}

func TestCap_MonotonicAndSaturates(t *testing.T) {
	r := Cap(HitRate, 29, 2.19)
	prev := r.Gain(0)
	for v := 1; v <= 100; v++ {
		g := r.Gain(v)
		assert.GreaterOrEqual(t, g, prev, "value %d", v)
		if v >= 29 {
			assert.InDelta(t, 29*2.19, g, 1e-9, "value %d", v)
		}
		prev = g
	}
}

func TestCap_IncrementalCases(t *testing.T) {
	r := Cap(ExpertiseRate, 26, 2.0)
	tests := []struct {
		name     string
		inc, ref int
		want     float64
	}{
		{name: "fits", inc: 10, ref: 0, want: 20},
		{name: "partial", inc: 20, ref: 10, want: 32},
		{name: "exactly at cap", inc: 10, ref: 16, want: 20},
		{name: "exhausted", inc: 10, ref: 27, want: 0},
		{name: "reference at cap", inc: 10, ref: 26, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IncrementalGain(tt.inc, tt.ref))
		})
	}
}

func TestWeighted_Linear(t *testing.T) {
	r := Weighted(Agility, 1.91)
	for v := 0; v <= 50; v++ {
		for k := 0; k <= 5; k++ {
			assert.InDelta(t, float64(k)*r.Gain(v), r.Gain(k*v), 1e-9)
		}
		assert.Equal(t, r.Gain(v), r.IncrementalGain(v, 1000))
	}
}
