package gear

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocket_Matches(t *testing.T) {
	red := &Gem{Name: "red", Colors: []Color{Red}}
	prism := &Gem{Name: "prism", Colors: []Color{Red, Blue, Yellow}}

	s := NewSocket(Blue)
	assert.False(t, s.Matches(), "empty socket never matches")
	s.Gem = red
	assert.False(t, s.Matches())
	s.Gem = prism
	assert.True(t, s.Matches())
}

func TestItem_SocketsMatch(t *testing.T) {
	gems := []Gem{
		{Colors: []Color{Red}},
		{Colors: []Color{Yellow, Blue}},
		{Colors: []Color{Yellow}},
	}
	item := Item{Slot: Feet, Sockets: []Socket{NewSocket(Red), NewSocket(Blue), NewSocket(Yellow)}}
	assert.True(t, item.HasEmptySocket())
	assert.False(t, item.SocketsMatch())

	for i := range item.Sockets {
		item.Sockets[i].Gem = &gems[i]
	}

	assert.True(t, item.SocketsMatch())
	assert.False(t, item.HasEmptySocket())
}

func TestItem_Clone(t *testing.T) {
	gem := &Gem{Name: "tear", Universal: true}
	item := Item{Name: "helm", Slot: Head, Sockets: []Socket{NewSocket(Red)}}

	c := item.Clone()
	c.Sockets[0].Gem = gem
	c.Enchant = &Enchantment{Name: "x"}

	assert.True(t, item.Sockets[0].Empty())
	assert.Nil(t, item.Enchant)
	assert.True(t, c.HasUniversalGem())
	assert.False(t, item.HasUniversalGem())
}

func TestBuild_ItemsInSlotOrder(t *testing.T) {
	b := NewBuild()
	b.Lock(Item{Name: "feet", Slot: Feet})
	b.Lock(Item{Name: "neck", Slot: Neck})
	b.Lock(Item{Name: "chest", Slot: Chest})
	b.Lock(Item{Name: "other neck", Slot: Neck})

	var names []string
	for _, it := range b.Items() {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"other neck", "chest", "feet"}, names)

	_, ok := b.Get(Head)
	assert.False(t, ok)

	b.Clear()
	assert.Empty(t, b.Items())
}

func TestBuild_Clone(t *testing.T) {
	b := NewBuild()
	b.Lock(Item{Name: "feet", Slot: Feet, Sockets: []Socket{NewSocket(Yellow)}})

	c := b.Clone()
	c.Lock(Item{Name: "ring", Slot: Ring1})
	gem := &Gem{Name: "rigid", Colors: []Color{Yellow}}
	c.items[Feet].Sockets[0].Gem = gem

	_, ok := b.Get(Ring1)
	assert.False(t, ok)
	feet, ok := b.Get(Feet)
	require.True(t, ok)
	assert.True(t, feet.HasEmptySocket())

	var nilBuild *Build
	assert.Empty(t, nilBuild.Clone().Items())
}

func TestParse(t *testing.T) {
	s, err := ParseStat("hasterate")
	require.NoError(t, err)
	assert.Equal(t, HasteRate, s)

	_, err = ParseStat("Agilty")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownName))
	assert.Contains(t, err.Error(), `did you mean "Agility"`)

	slot, err := ParseSlot("ring2")
	require.NoError(t, err)
	assert.Equal(t, Ring2, slot)

	c, err := ParseColor("YELLOW")
	require.NoError(t, err)
	assert.Equal(t, Yellow, c)

	_, err = ParseColor("purple")
	assert.ErrorIs(t, err, ErrUnknownName)
}
