package gear

import (
	"fmt"
	"slices"
)

// RotationSet holds the interchangeable items considered for some slots.
// A nil *RotationSet behaves as a set with no registered slots.
type RotationSet struct {
	items map[Slot][]Item
	order []Slot
}

// NewRotationSet returns an empty rotation set.
func NewRotationSet() *RotationSet {
	return &RotationSet{items: make(map[Slot][]Item)}
}

// Rotate adds item as an alternative for its slot. Slots are enumerated in
// the order they were first registered.
func (r *RotationSet) Rotate(item Item) {
	r.Register(item.Slot, item)
}

// Register records slot as rotating and appends alternatives to it.
func (r *RotationSet) Register(slot Slot, alternatives ...Item) {
	if r.items == nil {
		r.items = make(map[Slot][]Item)
	}
	if _, ok := r.items[slot]; !ok {
		r.order = append(r.order, slot)
		r.items[slot] = nil
	}
	for i := range alternatives {
		r.items[slot] = append(r.items[slot], alternatives[i].Clone())
	}
}

// Slots returns the rotating slots in registration order.
func (r *RotationSet) Slots() []Slot {
	if r == nil {
		return nil
	}
	return slices.Clone(r.order)
}

// Alternatives returns the items registered for slot.
func (r *RotationSet) Alternatives(slot Slot) []Item {
	if r == nil {
		return nil
	}
	return r.items[slot]
}

// Validate checks that every registered slot has at least one alternative
// and that each alternative belongs to its slot.
func (r *RotationSet) Validate() error {
	if r == nil {
		return nil
	}
	for _, slot := range r.order {
		alts := r.items[slot]
		if len(alts) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyRotationSlot, slot)
		}
		for i := range alts {
			if alts[i].Slot != slot {
				return fmt.Errorf("%w: %q is %s, registered under %s", ErrSlotMismatch, alts[i].Name, alts[i].Slot, slot)
			}
		}
	}
	return nil
}

// Count returns the number of variants Variant can produce.
func (r *RotationSet) Count() int {
	if r == nil {
		return 1
	}
	n := 1
	for _, slot := range r.order {
		n *= len(r.items[slot])
	}
	return n
}

// Variant returns the n-th combination of one item per rotating slot, the
// first registered slot varying slowest. With no registered slots the only
// variant is index 0, an empty combination meaning "use the build as-is".
// ok is false once n is past the last variant.
func (r *RotationSet) Variant(n int) (items []Item, ok bool) {
	if n < 0 || n >= r.Count() {
		return nil, false
	}
	slots := r.Slots()
	items = make([]Item, len(slots))
	for i := len(slots) - 1; i >= 0; i-- {
		alts := r.items[slots[i]]
		items[i] = alts[n%len(alts)].Clone()
		n /= len(alts)
	}
	return items, true
}
