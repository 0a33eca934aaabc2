package gear

import (
	"fmt"
	"strings"
)

// Profile is an accumulated stat profile. It is a value type: assigning a
// Profile copies it, so a search branch forks its stats by plain assignment.
type Profile [NumStats]int

// Get returns the accumulated value of s. Stats never touched read as zero.
func (p Profile) Get(s Stat) int {
	return p[s]
}

// Set overwrites the value of s.
func (p *Profile) Set(s Stat, v int) {
	p[s] = v
}

// Add increases s by v.
func (p *Profile) Add(s Stat, v int) {
	p[s] += v
}

// Merge returns the element-wise sum of p and other.
func (p Profile) Merge(other Profile) Profile {
	for i := range p {
		p[i] += other[i]
	}
	return p
}

// Gain converts the profile into a single comparable scalar under reqs,
// evaluating every requirement in absolute mode.
func (p Profile) Gain(reqs []Requirement) float64 {
	var gain float64
	for i := range reqs {
		gain += reqs[i].Gain(p[reqs[i].Stat])
	}
	return gain
}

// String lists the non-zero stats in enum order, one "Stat: value" per line.
func (p Profile) String() string {
	var b strings.Builder
	for i, v := range p {
		if v == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %d\n", Stat(i), v)
	}
	return b.String()
}
