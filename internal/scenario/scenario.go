// Package scenario describes one optimisation problem in YAML: the starting
// stats, the requirements, the locked build, the rotation and the run options.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"gem-optimizer/internal/gear"
	"gem-optimizer/internal/optimizer"
)

// ErrInvalid is returned for scenarios that cannot be turned into a simulation.
var ErrInvalid = errors.New("invalid scenario")

// Scenario is the file form of a simulation.
type Scenario struct {
	Name         string            `yaml:"name"`
	BaseStats    map[string]int    `yaml:"base_stats"`
	Requirements []Requirement     `yaml:"requirements"`
	Items        []Item            `yaml:"items"`
	Rotation     []Item            `yaml:"rotation"`
	Options      optimizer.Options `yaml:"options"`
}

// Requirement is one line of the requirement list. Kind is "cap" or
// "weighted"; Target is read for caps only.
type Requirement struct {
	Kind   string  `yaml:"kind"`
	Stat   string  `yaml:"stat"`
	Target int     `yaml:"target"`
	Weight float64 `yaml:"weight"`
}

// Item is an equipment piece. Enchant names an enchantment of the catalog
// already applied to it.
type Item struct {
	Name        string         `yaml:"name"`
	Slot        string         `yaml:"slot"`
	Stats       map[string]int `yaml:"stats"`
	Sockets     []string       `yaml:"sockets"`
	SocketBonus *Bonus         `yaml:"socket_bonus"`
	Enchant     string         `yaml:"enchant"`
}

// Bonus is a flat stat bonus.
type Bonus struct {
	Stat  string `yaml:"stat"`
	Value int    `yaml:"value"`
}

// Setup is a scenario resolved against a catalog.
type Setup struct {
	Base         gear.Profile
	Requirements []gear.Requirement
	Build        *gear.Build
	Rotation     *gear.RotationSet
	Options      optimizer.Options
}

// Load reads a scenario from a YAML file. The file name stands in for a
// missing name.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes a scenario document. JSON documents are accepted as well,
// with the same snake_case keys. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &sc, nil
}

// Resolve turns the scenario into simulation inputs, looking enchantments up
// in pool.
func (sc *Scenario) Resolve(pool *optimizer.Pool) (*Setup, error) {
	base, err := statMap(sc.BaseStats)
	if err != nil {
		return nil, fmt.Errorf("base_stats: %w", err)
	}

	reqs := make([]gear.Requirement, 0, len(sc.Requirements))
	for i, r := range sc.Requirements {
		req, err := r.resolve()
		if err != nil {
			return nil, fmt.Errorf("requirements[%d]: %w", i, err)
		}
		reqs = append(reqs, req)
	}

	build := gear.NewBuild()
	for i := range sc.Items {
		it, err := sc.Items[i].resolve(pool)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		if _, taken := build.Get(it.Slot); taken {
			return nil, fmt.Errorf("items[%d]: %w: slot %s locked twice", i, ErrInvalid, it.Slot)
		}
		build.Lock(it)
	}

	var rot *gear.RotationSet
	if len(sc.Rotation) > 0 {
		rot = gear.NewRotationSet()
		for i := range sc.Rotation {
			it, err := sc.Rotation[i].resolve(pool)
			if err != nil {
				return nil, fmt.Errorf("rotation[%d]: %w", i, err)
			}
			rot.Rotate(it)
		}
	}

	return &Setup{
		Base:         base,
		Requirements: reqs,
		Build:        build,
		Rotation:     rot,
		Options:      sc.Options,
	}, nil
}

// Simulator builds a simulator for the setup scored against pool.
func (st *Setup) Simulator(pool *optimizer.Pool, opts ...optimizer.Option) *optimizer.Simulator {
	return optimizer.New(st.Base, st.Requirements, st.Build, st.Rotation, optimizer.NewScorer(pool), opts...)
}

func (r Requirement) resolve() (gear.Requirement, error) {
	stat, err := gear.ParseStat(r.Stat)
	if err != nil {
		return gear.Requirement{}, err
	}
	switch strings.ToLower(r.Kind) {
	case "cap":
		return gear.Cap(stat, r.Target, r.Weight), nil
	case "weighted":
		return gear.Weighted(stat, r.Weight), nil
	}
	return gear.Requirement{}, fmt.Errorf("%w: requirement kind %q", ErrInvalid, r.Kind)
}

func (it *Item) resolve(pool *optimizer.Pool) (gear.Item, error) {
	slot, err := gear.ParseSlot(it.Slot)
	if err != nil {
		return gear.Item{}, fmt.Errorf("%q: %w", it.Name, err)
	}
	out := gear.Item{Name: it.Name, Slot: slot}

	stats, err := statMap(it.Stats)
	if err != nil {
		return out, fmt.Errorf("%q: %w", it.Name, err)
	}
	for s := gear.Stat(0); s < gear.NumStats; s++ {
		if v := stats.Get(s); v != 0 {
			out.Stats = append(out.Stats, gear.NewBonus(s, v))
		}
	}

	for _, c := range it.Sockets {
		color, err := gear.ParseColor(c)
		if err != nil {
			return out, fmt.Errorf("%q: %w", it.Name, err)
		}
		out.Sockets = append(out.Sockets, gear.NewSocket(color))
	}

	if it.SocketBonus != nil {
		stat, err := gear.ParseStat(it.SocketBonus.Stat)
		if err != nil {
			return out, fmt.Errorf("%q socket_bonus: %w", it.Name, err)
		}
		if it.SocketBonus.Value < 0 {
			return out, fmt.Errorf("%q socket_bonus: %w: negative %s %d", it.Name, ErrInvalid, stat, it.SocketBonus.Value)
		}
		b := gear.NewBonus(stat, it.SocketBonus.Value)
		out.SocketBonus = &b
	}

	if it.Enchant != "" {
		e, err := findEnchantment(pool, slot, it.Enchant)
		if err != nil {
			return out, fmt.Errorf("%q: %w", it.Name, err)
		}
		out.Enchant = e
	}
	return out, nil
}

func findEnchantment(pool *optimizer.Pool, slot gear.Slot, name string) (*gear.Enchantment, error) {
	var known []string
	if pool != nil {
		for i, e := range pool.Enchants[slot] {
			if e.Name == name {
				return &pool.Enchants[slot][i], nil
			}
			known = append(known, e.Name)
		}
	}
	if s := gear.Suggest(name, known); s != "" {
		return nil, fmt.Errorf("%w: no %s enchantment %q (did you mean %q?)", ErrInvalid, slot, name, s)
	}
	return nil, fmt.Errorf("%w: no %s enchantment %q", ErrInvalid, slot, name)
}

func statMap(m map[string]int) (gear.Profile, error) {
	var p gear.Profile
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		stat, err := gear.ParseStat(name)
		if err != nil {
			return p, err
		}
		if m[name] < 0 {
			return p, fmt.Errorf("%w: negative %s %d", ErrInvalid, stat, m[name])
		}
		p.Add(stat, m[name])
	}
	return p, nil
}
