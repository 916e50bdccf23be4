// Package ruleset defines the playable classes and the skill catalog.
package ruleset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Class identifies a playable character class.
type Class string

const (
	ClassMage   Class = "mage"
	ClassKnight Class = "knight"
	ClassArcher Class = "archer"
)

// IsValid reports whether c is a known class.
func (c Class) IsValid() bool {
	switch c {
	case ClassMage, ClassKnight, ClassArcher:
		return true
	default:
		return false
	}
}

// StarterItem is one line of a class starter kit.
type StarterItem struct {
	ItemID   string `yaml:"item"`
	Quantity int    `yaml:"quantity"`
}

// ClassInfo defines a playable class: base hit points, the fixed XP
// multiplier applied at character creation, and the declarative starter kit.
type ClassInfo struct {
	ID          Class         `yaml:"id"`
	Name        string        `yaml:"name"`
	Emoji       string        `yaml:"emoji"`
	Description string        `yaml:"description"`
	BonusText   string        `yaml:"bonus_text"`
	BaseHP      int           `yaml:"base_hp"`
	XPMult      float64       `yaml:"xp_mult"`
	StarterKit  []StarterItem `yaml:"starter_kit"`
}

// Validate checks the class invariants.
//
// Postcondition: Returns nil iff the id is known, BaseHP > 0, XPMult >= 1,
// and every starter line has a positive quantity.
func (c ClassInfo) Validate() error {
	if !c.ID.IsValid() {
		return fmt.Errorf("class: unknown id %q", c.ID)
	}
	if c.BaseHP <= 0 {
		return fmt.Errorf("class %q: base_hp must be > 0, got %d", c.ID, c.BaseHP)
	}
	if c.XPMult < 1 {
		return fmt.Errorf("class %q: xp_mult must be >= 1, got %f", c.ID, c.XPMult)
	}
	for i, s := range c.StarterKit {
		if s.ItemID == "" {
			return fmt.Errorf("class %q: starter_kit[%d] must name an item", c.ID, i)
		}
		if s.Quantity < 1 {
			return fmt.Errorf("class %q: starter_kit[%d] quantity must be >= 1", c.ID, i)
		}
	}
	return nil
}

// DefaultClasses returns the built-in class table.
//
// Every class shares the common starter supplies; the archer additionally
// starts with a luck-shield rune.
func DefaultClasses() map[Class]ClassInfo {
	common := []StarterItem{
		{ItemID: "health_potion", Quantity: 2},
		{ItemID: "math_scroll", Quantity: 1},
	}
	archerKit := append(append([]StarterItem{}, common...), StarterItem{ItemID: "shield_rune", Quantity: 1})
	return map[Class]ClassInfo{
		ClassMage: {
			ID: ClassMage, Name: "Маг", Emoji: "🧙",
			Description: "Чародей знаний и заклинаний", BonusText: "+20% к XP после побед",
			BaseHP: 80, XPMult: 1.2, StarterKit: common,
		},
		ClassKnight: {
			ID: ClassKnight, Name: "Рыцарь", Emoji: "⚔️",
			Description: "Воин, закалённый в боях", BonusText: "+40 HP, крепкая броня",
			BaseHP: 140, XPMult: 1.0, StarterKit: common,
		},
		ClassArcher: {
			ID: ClassArcher, Name: "Лучник", Emoji: "🏹",
			Description: "Ловкий охотник за знаниями", BonusText: "Щит удачи раз в бою",
			BaseHP: 100, XPMult: 1.0, StarterKit: archerKit,
		},
	}
}

// LoadClasses reads all .yaml files in dir and parses each as a ClassInfo.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns a map keyed by class id, or a non-nil error.
func LoadClasses(dir string) (map[Class]ClassInfo, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", dir, err)
	}
	classes := make(map[Class]ClassInfo, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var c ClassInfo
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing class file %s: %w", path, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if _, dup := classes[c.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate class %q", path, c.ID)
		}
		classes[c.ID] = c
	}
	return classes, nil
}
