package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// AddItem grants quantity units of an item outside the shop flow (quest
// scripting, admin tooling).
func (s *Store) AddItem(ctx context.Context, itemID string, quantity int) CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return ignored("quantity must be at least 1")
	}
	def, ok := s.content.Items.Lookup(itemID)
	if !ok {
		return ignored(fmt.Sprintf("unknown item %q", itemID))
	}
	s.inventory = s.inventory.Add(def, quantity)
	s.persistLocked(ctx)
	return applied()
}

// UseItem consumes one unit of an owned item. Healing items restore HP;
// items with no consumable effect are rejected and keep their quantity.
func (s *Store) UseItem(ctx context.Context, itemID string) CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inventory.Find(itemID) == nil {
		return ignored(fmt.Sprintf("item %q is not in the inventory", itemID))
	}
	def, ok := s.content.Items.Lookup(itemID)
	if !ok || def.Heal <= 0 {
		return ignored(fmt.Sprintf("item %q cannot be used", itemID))
	}
	if s.player.HP >= s.player.MaxHP {
		return ignored("health is already full")
	}

	inv, consumed := s.inventory.Consume(itemID)
	if !consumed {
		return ignored(fmt.Sprintf("item %q is not in the inventory", itemID))
	}
	s.inventory = inv
	s.player.Heal(def.Heal)
	s.log.Debug("item used",
		zap.String("item", itemID),
		zap.Int("heal", def.Heal),
		zap.Int("hp", s.player.HP))
	s.persistLocked(ctx)
	return applied()
}

// Purchase buys one unit from the shop: the price is charged, limited
// stock is tracked per play session, and the item joins the inventory.
func (s *Store) Purchase(ctx context.Context, itemID string) CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.content.Catalogue.Entry(itemID)
	if !ok {
		return ignored(fmt.Sprintf("item %q is not sold here", itemID))
	}
	if entry.Stock != nil && s.purchased[itemID] >= *entry.Stock {
		return ignored(fmt.Sprintf("item %q is sold out", itemID))
	}
	if s.player.Gold < entry.Price {
		return ignored("not enough gold")
	}
	def, ok := s.content.Items.Lookup(itemID)
	if !ok {
		return ignored(fmt.Sprintf("unknown item %q", itemID))
	}

	s.player.Gold -= entry.Price
	s.purchased[itemID]++
	s.inventory = s.inventory.Add(def, 1)
	s.log.Debug("item purchased",
		zap.String("item", itemID),
		zap.Int("price", entry.Price),
		zap.Int("gold", s.player.Gold))
	s.persistLocked(ctx)
	return applied()
}

// ShopItem is one shop listing with live session stock.
type ShopItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	// Remaining is the purchasable count this session, -1 for unlimited.
	Remaining int `json:"remaining"`
}

// Shop lists the catalogue with per-session stock applied.
func (s *Store) Shop() []ShopItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ShopItem, 0, len(s.content.Catalogue))
	for _, entry := range s.content.Catalogue {
		def, ok := s.content.Items.Lookup(entry.ItemID)
		if !ok {
			continue
		}
		listing := ShopItem{
			ID:          def.ID,
			Name:        def.Name,
			Emoji:       def.Emoji,
			Description: def.Description,
			Price:       entry.Price,
			Remaining:   -1,
		}
		if entry.Stock != nil {
			left := *entry.Stock - s.purchased[entry.ItemID]
			if left < 0 {
				left = 0
			}
			listing.Remaining = left
		}
		out = append(out, listing)
	}
	return out
}

// ShopStock returns how many units of the item remain purchasable this
// session: -1 means unlimited.
func (s *Store) ShopStock(itemID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.content.Catalogue.Entry(itemID)
	if !ok {
		return 0
	}
	if entry.Stock == nil {
		return -1
	}
	left := *entry.Stock - s.purchased[itemID]
	if left < 0 {
		left = 0
	}
	return left
}
