// Package loot implements the post-victory item drop table: a single
// uniform roll walked through cumulative drop chances.
package loot

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dmolchanov/magequest/internal/game/item"
	"github.com/dmolchanov/magequest/internal/game/random"
)

// Entry pairs an item id with its drop chance.
type Entry struct {
	ItemID string  `yaml:"item"`
	Chance float64 `yaml:"chance"`
}

// Table is an ordered drop table. Entries are evaluated in order against
// a cumulative sum, so earlier entries shadow none of the later ones and
// the total chance of any drop is the sum of all chances.
//
// Invariant: chances are in (0, 1] and sum to at most 1.
type Table []Entry

// Validate checks chance bounds and that every item id resolves in the
// registry.
func (t Table) Validate(reg *item.Registry) error {
	var sum float64
	for i, e := range t {
		if e.ItemID == "" {
			return fmt.Errorf("loot: entry %d: item must not be empty", i)
		}
		if _, ok := reg.Lookup(e.ItemID); !ok {
			return fmt.Errorf("loot: entry %d: unknown item %q", i, e.ItemID)
		}
		if e.Chance <= 0 || e.Chance > 1 {
			return fmt.Errorf("loot: entry %d (%s): chance must be in (0, 1], got %v", i, e.ItemID, e.Chance)
		}
		sum += e.Chance
	}
	if sum > 1 {
		return fmt.Errorf("loot: chances sum to %v, must not exceed 1", sum)
	}
	return nil
}

// Roll draws once and returns the id of the dropped item, or "" when the
// draw lands beyond the cumulative sum (no drop).
//
// Precondition: src is non-nil.
func (t Table) Roll(src random.Source) string {
	r := src.Float64()
	var cumulative float64
	for _, e := range t {
		cumulative += e.Chance
		if r < cumulative {
			return e.ItemID
		}
	}
	return ""
}

// DefaultTable is the built-in drop table: 60% of victories drop
// nothing.
func DefaultTable() Table {
	return Table{
		{ItemID: "health_potion", Chance: 0.30},
		{ItemID: "math_scroll", Chance: 0.15},
		{ItemID: "rus_scroll", Chance: 0.10},
		{ItemID: "amulet", Chance: 0.05},
	}
}

// LoadTable reads a drop table from dir/loot.yaml and validates it
// against the registry.
func LoadTable(dir string, reg *item.Registry) (Table, error) {
	path := filepath.Join(dir, "loot.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loot: read %s: %w", path, err)
	}
	var file struct {
		Drops Table `yaml:"drops"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("loot: parse %s: %w", path, err)
	}
	if err := file.Drops.Validate(reg); err != nil {
		return nil, fmt.Errorf("loot: %s: %w", path, err)
	}
	return file.Drops, nil
}
