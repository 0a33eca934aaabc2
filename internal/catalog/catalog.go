// Package catalog loads the pools of gems, enchantments and food the
// optimizer chooses from.
//
// A catalog is a JSON document:
//
//	{
//	  "gems":         [{"name", "colors": [...], "universal", "bonuses": [...]}],
//	  "enchantments": [{"name", "slot" | "slots": [...], "bonuses": [...]}],
//	  "foods":        [{"name", "bonuses": [...]}]
//	}
//
// A bonus is {"stat", "value"} or, for an effect that procs, {"stat",
// "value", "duration", "cooldown"}. The slot "*" stands for every slot.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/tidwall/gjson"

	"gem-optimizer/internal/gear"
	"gem-optimizer/internal/optimizer"
)

//go:embed default.json
var defaultJSON string

// ErrInvalid is returned for catalog documents that cannot be used.
var ErrInvalid = errors.New("invalid catalog")

// Default returns the built-in catalog.
func Default() *optimizer.Pool {
	p, err := Parse(defaultJSON)
	if err != nil {
		panic("catalog: embedded default: " + err.Error())
	}
	return p
}

// LoadFile reads a catalog from path. Files ending in .br are brotli
// compressed.
func LoadFile(path string) (*optimizer.Pool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if strings.HasSuffix(path, ".br") {
		raw, err = io.ReadAll(brotli.NewReader(bytes.NewReader(raw)))
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}
	p, err := Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse builds a pool from a catalog document.
func Parse(doc string) (*optimizer.Pool, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalid)
	}
	p := &optimizer.Pool{}
	var err error

	gjson.Get(doc, "gems").ForEach(func(_, v gjson.Result) bool {
		var g gear.Gem
		if g, err = parseGem(v); err != nil {
			return false
		}
		p.Gems = append(p.Gems, g)
		return true
	})
	if err != nil {
		return nil, err
	}

	gjson.Get(doc, "enchantments").ForEach(func(_, v gjson.Result) bool {
		err = parseEnchantment(v, p)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	gjson.Get(doc, "foods").ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name").String()
		var bs gear.Bonuses
		if bs, err = parseBonuses(v.Get("bonuses"), name); err != nil {
			return false
		}
		p.Foods = append(p.Foods, gear.Food{Name: name, Bonuses: bs})
		return true
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func parseGem(v gjson.Result) (gear.Gem, error) {
	g := gear.Gem{
		Name:      v.Get("name").String(),
		Universal: v.Get("universal").Bool(),
	}
	if g.Name == "" {
		return g, fmt.Errorf("%w: gem without a name", ErrInvalid)
	}
	for _, c := range v.Get("colors").Array() {
		color, err := gear.ParseColor(c.String())
		if err != nil {
			return g, fmt.Errorf("gem %q: %w", g.Name, err)
		}
		g.Colors = append(g.Colors, color)
	}
	if len(g.Colors) == 0 {
		return g, fmt.Errorf("%w: gem %q has no colors", ErrInvalid, g.Name)
	}
	bs, err := parseBonuses(v.Get("bonuses"), g.Name)
	if err != nil {
		return g, err
	}
	g.Bonuses = bs
	return g, nil
}

func parseEnchantment(v gjson.Result, p *optimizer.Pool) error {
	name := v.Get("name").String()
	bs, err := parseBonuses(v.Get("bonuses"), name)
	if err != nil {
		return err
	}

	var names []string
	if s := v.Get("slot"); s.Exists() {
		names = append(names, s.String())
	}
	for _, s := range v.Get("slots").Array() {
		names = append(names, s.String())
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: enchantment %q has no slot", ErrInvalid, name)
	}

	for _, n := range names {
		if n == "*" {
			for _, slot := range gear.SlotOrder {
				p.AddEnchantment(gear.Enchantment{Name: name, Slot: slot, Bonuses: bs})
			}
			continue
		}
		slot, err := gear.ParseSlot(n)
		if err != nil {
			return fmt.Errorf("enchantment %q: %w", name, err)
		}
		p.AddEnchantment(gear.Enchantment{Name: name, Slot: slot, Bonuses: bs})
	}
	return nil
}

func parseBonuses(v gjson.Result, owner string) (gear.Bonuses, error) {
	var out gear.Bonuses
	for _, b := range v.Array() {
		stat, err := gear.ParseStat(b.Get("stat").String())
		if err != nil {
			return nil, fmt.Errorf("%q: %w", owner, err)
		}
		value := int(b.Get("value").Int())
		if value < 0 {
			return nil, fmt.Errorf("%w: %q has a negative %s bonus", ErrInvalid, owner, stat)
		}
		cd := b.Get("cooldown")
		if !cd.Exists() {
			out = append(out, gear.NewBonus(stat, value))
			continue
		}
		if cd.Float() <= 0 {
			return nil, fmt.Errorf("%w: %q has a non-positive cooldown", ErrInvalid, owner)
		}
		out = append(out, gear.ProcBonus(stat, value, b.Get("duration").Float(), cd.Float()))
	}
	return out, nil
}
