package loot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmolchanov/magequest/internal/game/item"
	"github.com/dmolchanov/magequest/internal/game/loot"
	"github.com/dmolchanov/magequest/internal/game/random"
)

func TestDefaultTable_Valid(t *testing.T) {
	require.NoError(t, loot.DefaultTable().Validate(item.DefaultRegistry()))
}

func TestRoll_CumulativeBuckets(t *testing.T) {
	table := loot.DefaultTable()

	tests := []struct {
		roll float64
		want string
	}{
		{0.0, "health_potion"},
		{0.29, "health_potion"},
		{0.30, "math_scroll"},
		{0.44, "math_scroll"},
		{0.45, "rus_scroll"},
		{0.54, "rus_scroll"},
		{0.55, "amulet"},
		{0.59, "amulet"},
		{0.60, ""},
		{0.99, ""},
	}
	for _, tt := range tests {
		src := random.NewSequenceSource(nil, []float64{tt.roll})
		assert.Equal(t, tt.want, table.Roll(src), "roll %v", tt.roll)
	}
}

func TestRoll_AlwaysKnownItemOrMiss(t *testing.T) {
	table := loot.DefaultTable()
	reg := item.DefaultRegistry()
	rapid.Check(t, func(t *rapid.T) {
		roll := rapid.Float64Range(0, 0.999999).Draw(t, "roll")
		src := random.NewSequenceSource(nil, []float64{roll})
		got := table.Roll(src)
		if got == "" {
			assert.GreaterOrEqual(t, roll, 0.60)
			return
		}
		_, ok := reg.Lookup(got)
		assert.True(t, ok, "dropped unknown item %q", got)
	})
}

func TestValidate_Rejections(t *testing.T) {
	reg := item.DefaultRegistry()

	assert.Error(t, loot.Table{{ItemID: "", Chance: 0.1}}.Validate(reg))
	assert.Error(t, loot.Table{{ItemID: "no_such_item", Chance: 0.1}}.Validate(reg))
	assert.Error(t, loot.Table{{ItemID: "amulet", Chance: 0}}.Validate(reg))
	assert.Error(t, loot.Table{{ItemID: "amulet", Chance: 1.5}}.Validate(reg))
	assert.Error(t, loot.Table{
		{ItemID: "amulet", Chance: 0.6},
		{ItemID: "math_scroll", Chance: 0.6},
	}.Validate(reg))
	assert.NoError(t, loot.Table{{ItemID: "amulet", Chance: 1}}.Validate(reg))
}
