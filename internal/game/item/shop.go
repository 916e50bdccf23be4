package item

import "fmt"

// ShopEntry is a purchasable catalogue line.
//
// Stock == nil means unlimited; otherwise Stock is the per-session cap.
type ShopEntry struct {
	ItemID string `yaml:"item" json:"itemId"`
	Price  int    `yaml:"price" json:"price"`
	Stock  *int   `yaml:"stock,omitempty" json:"stock,omitempty"`
}

// Catalogue is the ordered shop listing.
type Catalogue []ShopEntry

// Validate checks the catalogue against the given registry.
//
// Postcondition: Returns nil iff every entry references a known item,
// has a positive price, and a non-negative stock when limited.
func (c Catalogue) Validate(reg *Registry) error {
	for i, e := range c {
		if _, ok := reg.Lookup(e.ItemID); !ok {
			return fmt.Errorf("shop: entry[%d] references unknown item %q", i, e.ItemID)
		}
		if e.Price <= 0 {
			return fmt.Errorf("shop: entry[%d] (%s) price must be > 0, got %d", i, e.ItemID, e.Price)
		}
		if e.Stock != nil && *e.Stock < 0 {
			return fmt.Errorf("shop: entry[%d] (%s) stock must be >= 0", i, e.ItemID)
		}
	}
	return nil
}

// Entry returns the catalogue line for the given item id.
func (c Catalogue) Entry(itemID string) (ShopEntry, bool) {
	for _, e := range c {
		if e.ItemID == itemID {
			return e, true
		}
	}
	return ShopEntry{}, false
}

func stock(n int) *int { return &n }

// DefaultCatalogue returns the built-in shop listing.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		{ItemID: "health_potion", Price: 15},
		{ItemID: "big_potion", Price: 30},
		{ItemID: "math_scroll", Price: 25},
		{ItemID: "rus_scroll", Price: 25},
		{ItemID: "amulet", Price: 80, Stock: stock(1)},
		{ItemID: "shield_rune", Price: 60, Stock: stock(2)},
	}
}
