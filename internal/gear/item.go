package gear

import "slices"

// Gem is an immutable pooled gem.
type Gem struct {
	Name    string
	Colors  []Color
	Bonuses Bonuses
	// Universal marks a premium gem of which at most one may be socketed.
	Universal bool
}

// Fits reports whether the gem counts as color c.
func (g *Gem) Fits(c Color) bool {
	return slices.Contains(g.Colors, c)
}

// Socket is a colored gem socket. A nil Gem means the socket is empty.
type Socket struct {
	Color Color
	Gem   *Gem
}

// NewSocket returns an empty socket of color c.
func NewSocket(c Color) Socket {
	return Socket{Color: c}
}

// Empty reports whether no gem is inserted.
func (s *Socket) Empty() bool {
	return s.Gem == nil
}

// Matches reports whether the inserted gem fits the socket color.
// An empty socket never matches.
func (s *Socket) Matches() bool {
	return s.Gem != nil && s.Gem.Fits(s.Color)
}

// Enchantment is an immutable pooled enchantment for one slot.
type Enchantment struct {
	Name    string
	Slot    Slot
	Bonuses Bonuses
}

// Food is an immutable pooled consumable buff.
type Food struct {
	Name    string
	Bonuses Bonuses
}

// Item is a piece of equipment. Sockets and Enchant are mutated during the
// search; Clone before handing an item to another branch.
type Item struct {
	Name        string
	Slot        Slot
	Stats       Bonuses
	Sockets     []Socket
	SocketBonus *Bonus
	Enchant     *Enchantment
}

// Clone returns a copy whose sockets and enchantment can be changed without
// affecting it. Gems, enchantments and bonuses are immutable and shared.
func (it *Item) Clone() Item {
	c := *it
	c.Sockets = slices.Clone(it.Sockets)
	return c
}

// SocketsMatch reports whether every socket holds a gem of its color.
func (it *Item) SocketsMatch() bool {
	for i := range it.Sockets {
		if !it.Sockets[i].Matches() {
			return false
		}
	}
	return true
}

// HasEmptySocket reports whether any socket is still open.
func (it *Item) HasEmptySocket() bool {
	for i := range it.Sockets {
		if it.Sockets[i].Empty() {
			return true
		}
	}
	return false
}

// HasUniversalGem reports whether a universal gem is socketed in it.
func (it *Item) HasUniversalGem() bool {
	for i := range it.Sockets {
		if g := it.Sockets[i].Gem; g != nil && g.Universal {
			return true
		}
	}
	return false
}

// CloneItems deep-copies a list of items.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}
