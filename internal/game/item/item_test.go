package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmolchanov/magequest/internal/game/item"
)

func potionDef() item.Def {
	return item.Def{ID: "health_potion", Name: "Зелье здоровья", Emoji: "🧪", Type: item.TypePotion, Heal: 30}
}

func TestDef_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*item.Def)
		wantErr bool
	}{
		{"valid", func(d *item.Def) {}, false},
		{"empty id", func(d *item.Def) { d.ID = "" }, true},
		{"empty name", func(d *item.Def) { d.Name = "" }, true},
		{"bad type", func(d *item.Def) { d.Type = "weapon" }, true},
		{"negative heal", func(d *item.Def) { d.Heal = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := potionDef()
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInventory_AddMergesExisting(t *testing.T) {
	inv := item.Inventory{}
	inv = inv.Add(potionDef(), 2)
	inv = inv.Add(potionDef(), 1)

	require.Len(t, inv, 1)
	assert.Equal(t, 3, inv.Quantity("health_potion"))
}

func TestInventory_AddNewEntry(t *testing.T) {
	inv := item.Inventory{}.Add(potionDef(), 1)
	inv = inv.Add(item.Def{ID: "amulet", Name: "Амулет удачи", Type: item.TypeArtifact}, 1)

	assert.Len(t, inv, 2)
	assert.Equal(t, 1, inv.Quantity("amulet"))
}

func TestInventory_ConsumeDecrements(t *testing.T) {
	inv := item.Inventory{}.Add(potionDef(), 2)
	inv, ok := inv.Consume("health_potion")

	assert.True(t, ok)
	assert.Equal(t, 1, inv.Quantity("health_potion"))
}

func TestInventory_ConsumePrunesAtZero(t *testing.T) {
	inv := item.Inventory{}.Add(potionDef(), 1)
	inv, ok := inv.Consume("health_potion")

	assert.True(t, ok)
	assert.Empty(t, inv, "zero-quantity entries must be removed")
}

func TestInventory_ConsumeMissingIsNoop(t *testing.T) {
	inv := item.Inventory{}.Add(potionDef(), 1)
	out, ok := inv.Consume("amulet")

	assert.False(t, ok)
	assert.Equal(t, inv, out)
}

func TestProperty_InventoryQuantitiesNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		inv := item.Inventory{}
		ops := rapid.SliceOfN(rapid.IntRange(0, 2), 1, 40).Draw(rt, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				inv = inv.Add(potionDef(), rapid.IntRange(1, 3).Draw(rt, "qty"))
			default:
				inv, _ = inv.Consume("health_potion")
			}
			for _, e := range inv {
				if e.Quantity <= 0 {
					rt.Fatalf("entry %q has non-positive quantity %d", e.ID, e.Quantity)
				}
			}
		}
	})
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	_, err := item.NewRegistry([]item.Def{potionDef(), potionDef()})
	assert.Error(t, err)
}

func TestDefaultRegistry_ContainsCatalog(t *testing.T) {
	reg := item.DefaultRegistry()
	for _, id := range []string{"health_potion", "big_potion", "math_scroll", "rus_scroll", "amulet", "shield_rune", "geo_crystal"} {
		_, ok := reg.Lookup(id)
		assert.True(t, ok, "missing default item %q", id)
	}
	hp, _ := reg.Lookup("health_potion")
	assert.Equal(t, 30, hp.Heal)
	big, _ := reg.Lookup("big_potion")
	assert.Equal(t, 60, big.Heal)
}

func TestDefaultCatalogue_Valid(t *testing.T) {
	cat := item.DefaultCatalogue()
	assert.NoError(t, cat.Validate(item.DefaultRegistry()))

	amulet, ok := cat.Entry("amulet")
	require.True(t, ok)
	assert.Equal(t, 80, amulet.Price)
	require.NotNil(t, amulet.Stock)
	assert.Equal(t, 1, *amulet.Stock)
}

func TestCatalogue_Validate_UnknownItem(t *testing.T) {
	cat := item.Catalogue{{ItemID: "excalibur", Price: 10}}
	assert.Error(t, cat.Validate(item.DefaultRegistry()))
}
