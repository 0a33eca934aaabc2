package gear

// Build maps every slot to an optional locked item.
type Build struct {
	items [NumSlots]*Item
}

// NewBuild returns an empty build.
func NewBuild() *Build {
	return &Build{}
}

// Lock equips a copy of item in its slot, replacing whatever was there.
func (b *Build) Lock(item Item) {
	c := item.Clone()
	b.items[item.Slot] = &c
}

// Clone returns a build that can be locked into without affecting b. A nil
// build clones to an empty one.
func (b *Build) Clone() *Build {
	c := &Build{}
	if b == nil {
		return c
	}
	for i, it := range b.items {
		if it != nil {
			cp := it.Clone()
			c.items[i] = &cp
		}
	}
	return c
}

// Get returns the item locked in slot, if any.
func (b *Build) Get(slot Slot) (Item, bool) {
	it := b.items[slot]
	if it == nil {
		return Item{}, false
	}
	return it.Clone(), true
}

// Items returns copies of the locked items in canonical slot order.
func (b *Build) Items() []Item {
	var out []Item
	for _, slot := range SlotOrder {
		if it := b.items[slot]; it != nil {
			out = append(out, it.Clone())
		}
	}
	return out
}

// Clear unlocks every slot.
func (b *Build) Clear() {
	b.items = [NumSlots]*Item{}
}
