package item

// Inventory is the player's owned item collection.
//
// Invariant: no entry has Quantity <= 0 — entries that reach zero are pruned.
// Invariant: at most one entry per item id.
type Inventory []Item

// Find returns a pointer to the entry with the given id, or nil.
func (inv Inventory) Find(id string) *Item {
	for i := range inv {
		if inv[i].ID == id {
			return &inv[i]
		}
	}
	return nil
}

// Quantity returns the owned quantity of the given item id (0 if absent).
func (inv Inventory) Quantity(id string) int {
	if it := inv.Find(id); it != nil {
		return it.Quantity
	}
	return 0
}

// Add merges quantity units of the given definition into the inventory:
// an existing entry's quantity is incremented, otherwise a new entry is
// appended.
//
// Precondition: quantity > 0.
// Postcondition: inv.Quantity(d.ID) increased by exactly quantity.
func (inv Inventory) Add(d Def, quantity int) Inventory {
	if quantity <= 0 {
		return inv
	}
	if it := inv.Find(d.ID); it != nil {
		it.Quantity += quantity
		return inv
	}
	return append(inv, FromDef(d, quantity))
}

// Consume removes one unit of the given item id. Entries reaching zero are
// pruned. Returns the updated inventory and whether a unit was consumed.
//
// Postcondition: no entry has Quantity <= 0; quantities never go negative.
func (inv Inventory) Consume(id string) (Inventory, bool) {
	it := inv.Find(id)
	if it == nil || it.Quantity <= 0 {
		return inv, false
	}
	it.Quantity--
	if it.Quantity > 0 {
		return inv, true
	}
	out := make(Inventory, 0, len(inv)-1)
	for _, e := range inv {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out, true
}

// Clone returns a deep copy of the inventory.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}
