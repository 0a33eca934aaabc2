package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gem-optimizer/internal/catalog"
	"gem-optimizer/internal/gear"
)

const ringScenario = `
base_stats: {HitRate: 201, Agility: 10}
requirements:
  - {kind: cap, stat: HitRate, target: 230, weight: 2.19}
  - {kind: Weighted, stat: Agility, weight: 1.91}
items:
  - {name: gloves, slot: gloves, sockets: [Yellow], enchant: crusher}
rotation:
  - {name: ring_a, slot: Ring1, stats: {Agility: 100, CritRate: 5}, sockets: [Red], socket_bonus: {stat: Agility, value: 60}}
  - {name: ring_b, slot: Ring1}
options: {gems: true, food: true}
`

func TestResolve(t *testing.T) {
	sc, err := Parse([]byte(ringScenario))
	require.NoError(t, err)

	st, err := sc.Resolve(catalog.Default())
	require.NoError(t, err)

	assert.Equal(t, 201, st.Base.Get(gear.HitRate))
	assert.Equal(t, 10, st.Base.Get(gear.Agility))
	assert.Equal(t, []gear.Requirement{
		gear.Cap(gear.HitRate, 230, 2.19),
		gear.Weighted(gear.Agility, 1.91),
	}, st.Requirements)

	gloves, ok := st.Build.Get(gear.Gloves)
	require.True(t, ok)
	require.NotNil(t, gloves.Enchant)
	assert.Equal(t, "crusher", gloves.Enchant.Name)
	require.Len(t, gloves.Sockets, 1)
	assert.Equal(t, gear.Yellow, gloves.Sockets[0].Color)
	assert.Nil(t, gloves.SocketBonus)

	require.NotNil(t, st.Rotation)
	assert.Equal(t, []gear.Slot{gear.Ring1}, st.Rotation.Slots())
	assert.Equal(t, 2, st.Rotation.Count())
	ring := st.Rotation.Alternatives(gear.Ring1)[0]
	assert.Equal(t, gear.Bonuses{gear.NewBonus(gear.Agility, 100), gear.NewBonus(gear.CritRate, 5)}, ring.Stats)
	assert.Equal(t, &gear.Bonus{Stat: gear.Agility, Value: 60}, ring.SocketBonus)

	assert.True(t, st.Options.Gems)
	assert.True(t, st.Options.Food)
	assert.False(t, st.Options.Enchants)
}

func TestResolve_NoRotation(t *testing.T) {
	sc, err := Parse([]byte(`{"requirements": [{"kind": "weighted", "stat": "Agility", "weight": 1}]}`))
	require.NoError(t, err)

	st, err := sc.Resolve(catalog.Default())
	require.NoError(t, err)
	assert.Nil(t, st.Rotation)
	assert.Empty(t, st.Build.Items())
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"base stat", `base_stats: {Agi: 1}`, `base_stats: unknown stat "Agi"`},
		{"kind", `requirements: [{kind: soft, stat: Agility}]`, `requirements[0]: invalid scenario: requirement kind "soft"`},
		{"slot", `items: [{name: x, slot: Finger}]`, `items[0]: "x": unknown slot "Finger"`},
		{"socket", `items: [{name: x, slot: Head, sockets: [Green]}]`, `unknown color "Green"`},
		{"socket bonus", `items: [{name: x, slot: Head, socket_bonus: {stat: Hit}}]`, `"x" socket_bonus: unknown stat "Hit"`},
		{"twice", `items: [{name: a, slot: Head}, {name: b, slot: Head}]`, "items[1]: invalid scenario: slot Head locked twice"},
		{"enchant", `items: [{name: g, slot: Gloves, enchant: crushr}]`, `no Gloves enchantment "crushr" (did you mean "crusher"?)`},
		{"rotation", `rotation: [{name: r, slot: Ring3}]`, `rotation[0]: "r": unknown slot "Ring3"`},
		{"negative base", `base_stats: {HitRate: -5}`, "base_stats: invalid scenario: negative HitRate -5"},
		{"negative item stat", `items: [{name: x, slot: Head, stats: {Agility: -1}}]`, `"x": invalid scenario: negative Agility -1`},
		{"negative socket bonus", `items: [{name: x, slot: Head, socket_bonus: {stat: Agility, value: -6}}]`, `"x" socket_bonus: invalid scenario: negative Agility -6`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			_, err = sc.Resolve(catalog.Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(`{"name": "json", "options": {"gems": true, "allow_rare_gem": true}}`))
	require.NoError(t, err)
	assert.Equal(t, "json", sc.Name)
	assert.True(t, sc.Options.Gems)
	assert.True(t, sc.Options.AllowRareGem)

	sc, err = Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, sc.Items)

	tests := map[string]string{
		"camelCase option": `{"options": {"gems": true, "allowRareGem": true}}`,
		"misspelt key":     "requirement: []",
		"unknown item key": "items: [{name: x, slot: Head, color: Red}]",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorContains(t, err, "not found in type")
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ringScenario), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rings", sc.Name)
	assert.Len(t, sc.Rotation, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("items: {"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parsing scenario")
}
