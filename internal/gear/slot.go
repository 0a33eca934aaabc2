package gear

import (
	"fmt"
	"strings"
)

// Slot is an equipment slot.
type Slot int

const (
	Head Slot = iota
	Neck
	Shoulder
	Back
	Chest
	Bracer
	WpnMain
	WpnOff
	Idol
	Gloves
	Belt
	Legs
	Feet
	Ring1
	Ring2
	Trinket1
	Trinket2

	// NumSlots is the number of defined slots.
	NumSlots
)

var slotNames = [NumSlots]string{
	Head:     "Head",
	Neck:     "Neck",
	Shoulder: "Shoulder",
	Back:     "Back",
	Chest:    "Chest",
	Bracer:   "Bracer",
	WpnMain:  "WpnMain",
	WpnOff:   "WpnOff",
	Idol:     "Idol",
	Gloves:   "Gloves",
	Belt:     "Belt",
	Legs:     "Legs",
	Feet:     "Feet",
	Ring1:    "Ring1",
	Ring2:    "Ring2",
	Trinket1: "Trinket1",
	Trinket2: "Trinket2",
}

// SlotOrder is the canonical iteration order of a build.
var SlotOrder = [NumSlots]Slot{
	Head, Neck, Shoulder, Back, Chest, Bracer, WpnMain, WpnOff, Idol,
	Gloves, Belt, Legs, Feet, Ring1, Ring2, Trinket1, Trinket2,
}

func (s Slot) String() string {
	if s < 0 || s >= NumSlots {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotNames[s]
}

// ParseSlot resolves a slot by name, case-insensitively.
func ParseSlot(name string) (Slot, error) {
	for i, n := range slotNames {
		if strings.EqualFold(n, name) {
			return Slot(i), nil
		}
	}
	return 0, unknownName("slot", name, slotNames[:])
}

// Color is a socket or gem color.
type Color int

const (
	Red Color = iota
	Blue
	Yellow

	numColors
)

var colorNames = [numColors]string{Red: "Red", Blue: "Blue", Yellow: "Yellow"}

func (c Color) String() string {
	if c < 0 || c >= numColors {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor resolves a color by name, case-insensitively.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if strings.EqualFold(n, name) {
			return Color(i), nil
		}
	}
	return 0, unknownName("color", name, colorNames[:])
}
