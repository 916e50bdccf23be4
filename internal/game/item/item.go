// Package item defines item types, the item catalog, and inventory mutation.
package item

import "fmt"

// Type tags an item with its use-effect category.
type Type string

const (
	TypePotion   Type = "potion"
	TypeScroll   Type = "scroll"
	TypeArtifact Type = "artifact"
)

// IsValid reports whether t is a known item type.
func (t Type) IsValid() bool {
	switch t {
	case TypePotion, TypeScroll, TypeArtifact:
		return true
	default:
		return false
	}
}

// Def describes an item kind. Use-effects are declarative: a potion with
// Heal > 0 restores that many hit points when consumed.
type Def struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Emoji       string `yaml:"emoji" json:"emoji"`
	Description string `yaml:"description" json:"description"`
	Type        Type   `yaml:"type" json:"type"`
	Heal        int    `yaml:"heal,omitempty" json:"heal,omitempty"`
}

// Validate checks the definition invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty, Type is valid,
// and Heal is non-negative.
func (d Def) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("item: id must not be empty")
	}
	if d.Name == "" {
		return fmt.Errorf("item %q: name must not be empty", d.ID)
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("item %q: unknown type %q", d.ID, d.Type)
	}
	if d.Heal < 0 {
		return fmt.Errorf("item %q: heal must be >= 0, got %d", d.ID, d.Heal)
	}
	return nil
}

// Item is an owned inventory entry: a Def plus a quantity.
//
// Invariant: Quantity >= 1 for any entry held in an Inventory.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Type        Type   `json:"type"`
}

// FromDef builds an owned Item with the given quantity.
func FromDef(d Def, quantity int) Item {
	return Item{
		ID:          d.ID,
		Name:        d.Name,
		Emoji:       d.Emoji,
		Description: d.Description,
		Quantity:    quantity,
		Type:        d.Type,
	}
}
