package gear

import "errors"

var (
	// ErrUnknownName is returned when a stat, slot or color name cannot be resolved.
	ErrUnknownName = errors.New("unknown")
	// ErrEmptyRotationSlot is returned for a rotation slot registered without alternatives.
	ErrEmptyRotationSlot = errors.New("rotation slot has no alternatives")
	// ErrSlotMismatch is returned when an item is filed under a slot it does not fit.
	ErrSlotMismatch = errors.New("item slot mismatch")
)
