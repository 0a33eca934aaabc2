package gear

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Stat identifies one character statistic.
type Stat int

const (
	Agility Stat = iota
	AttackPower
	CritRate
	APR
	ExpertiseRate
	HasteRate
	HitRate
	Strength
	Stamina

	// NumStats is the size of the closed stat set.
	NumStats
)

var statNames = [NumStats]string{
	Agility:       "Agility",
	AttackPower:   "AttackPower",
	CritRate:      "CritRate",
	APR:           "APR",
	ExpertiseRate: "ExpertiseRate",
	HasteRate:     "HasteRate",
	HitRate:       "HitRate",
	Strength:      "Strength",
	Stamina:       "Stamina",
}

func (s Stat) String() string {
	if s < 0 || s >= NumStats {
		return fmt.Sprintf("Stat(%d)", int(s))
	}
	return statNames[s]
}

// ParseStat resolves a stat by name, case-insensitively.
func ParseStat(name string) (Stat, error) {
	for i, n := range statNames {
		if strings.EqualFold(n, name) {
			return Stat(i), nil
		}
	}
	return 0, unknownName("stat", name, statNames[:])
}

// unknownName builds an error for an unrecognised identifier, suggesting the
// closest known spelling when one is near enough.
func unknownName(kind, name string, known []string) error {
	if s := Suggest(name, known); s != "" {
		return fmt.Errorf("%w %s %q (did you mean %q?)", ErrUnknownName, kind, name, s)
	}
	return fmt.Errorf("%w %s %q", ErrUnknownName, kind, name)
}

// Suggest returns the entry of known closest to name, or "" when nothing is
// within a third of the name's length in edits.
func Suggest(name string, known []string) string {
	lower := strings.ToLower(name)
	best, bestDist := "", len(name)/3+1
	for _, k := range known {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(k))
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
