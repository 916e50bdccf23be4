package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolchanov/magequest/internal/game/item"
	"github.com/dmolchanov/magequest/internal/game/player"
	"github.com/dmolchanov/magequest/internal/game/quest"
	"github.com/dmolchanov/magequest/internal/game/ruleset"
	"github.com/dmolchanov/magequest/internal/storage"
	"github.com/dmolchanov/magequest/internal/storage/postgres"
	"github.com/dmolchanov/magequest/internal/testutil"
)

func makeSave(t *testing.T, name string) *storage.SaveData {
	t.Helper()
	info, ok := ruleset.DefaultClasses()[ruleset.ClassKnight]
	require.True(t, ok)
	p := player.New(name, player.Appearance{Class: ruleset.ClassKnight, SkinTone: "tan", HairColor: "black"}, info)
	p.Gold = 42
	return &storage.SaveData{
		Player:          p,
		Inventory:       []item.Item{item.FromDef(item.DefaultDefs()[0], 2)},
		Quests:          quest.InitialQuests(),
		DiagnosticDone:  true,
		RusZoneUnlocked: false,
		GeoZoneUnlocked: false,
		SavedAt:         time.Now().UnixMilli(),
	}
}

func TestSaveRepository_RoundTrip(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewSaveRepository(pool)
	ctx := context.Background()

	_, err := repo.LoadGame(ctx, "slot1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	want := makeSave(t, "Рыцарь")
	require.NoError(t, repo.SaveGame(ctx, "slot1", want))

	got, err := repo.LoadGame(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveRepository_Overwrite(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewSaveRepository(pool)
	ctx := context.Background()

	first := makeSave(t, "Первый")
	require.NoError(t, repo.SaveGame(ctx, "slot1", first))

	second := makeSave(t, "Второй")
	second.Player.Gold = 500
	require.NoError(t, repo.SaveGame(ctx, "slot1", second))

	got, err := repo.LoadGame(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, "Второй", got.Player.Name)
	assert.Equal(t, 500, got.Player.Gold)
}

func TestSaveRepository_ClearSave(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewSaveRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.SaveGame(ctx, "slot1", makeSave(t, "Гость")))
	require.NoError(t, repo.ClearSave(ctx, "slot1"))

	_, err := repo.LoadGame(ctx, "slot1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, repo.ClearSave(ctx, "slot1"), "clearing twice is fine")
}
