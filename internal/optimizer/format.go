package optimizer

import (
	"fmt"
	"strings"
)

// String renders the distribution as a human-readable report: the stat
// breakdown, the food to eat and, per item, its enchantment and gems.
func (d Distribution) String() string {
	var b strings.Builder
	b.WriteString(d.stats.String())

	if d.food != nil {
		fmt.Fprintf(&b, "Eat %s for this gain in stats:\n", d.food.Name)
	}
	for i := range d.items {
		it := &d.items[i]
		enchant := "None"
		if it.Enchant != nil {
			enchant = it.Enchant.Name
		}
		fmt.Fprintf(&b, "[%s]%s <- %s:\n", it.Slot, it.Name, enchant)

		for j := range it.Sockets {
			s := &it.Sockets[j]
			gem := "None"
			if s.Gem != nil {
				gem = s.Gem.Name
			}
			match := "mismatch"
			if s.Matches() {
				match = "match"
			}
			fmt.Fprintf(&b, "\t%s <- %s (%s)\n", s.Color, gem, match)
		}
	}
	return b.String()
}
