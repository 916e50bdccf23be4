package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolchanov/magequest/internal/game/daily"
	"github.com/dmolchanov/magequest/internal/game/quest"
	"github.com/dmolchanov/magequest/internal/game/question"
	"github.com/dmolchanov/magequest/internal/storage"
	"github.com/dmolchanov/magequest/internal/storage/postgres"
	"github.com/dmolchanov/magequest/internal/testutil"
)

func TestDailyRepository_RoundTrip(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewDailyRepository(pool)
	ctx := context.Background()

	_, err := repo.LoadDaily(ctx, "slot1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	board := daily.NewForDay(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	board.Advance(quest.ZoneRussian)
	require.NoError(t, repo.SaveDaily(ctx, "slot1", board))

	got, err := repo.LoadDaily(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, board, got)

	// Next day's board overwrites in place.
	next := daily.NewForDay(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.SaveDaily(ctx, "slot1", next))
	got, err = repo.LoadDaily(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", got.Date)
}

func TestQuestionRepository_CRUD(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewQuestionRepository(pool)
	ctx := context.Background()

	q1, err := question.NewCustom(question.SubjectMath, "6 × 7 = ?", "42", "Таблица умножения", 3)
	require.NoError(t, err)
	q2, err := question.NewCustom(question.SubjectRussian, "Заяц или заец?", "заяц", "", 2)
	require.NoError(t, err)

	require.NoError(t, repo.AddQuestion(ctx, q1))
	require.NoError(t, repo.AddQuestion(ctx, q2))

	all, err := repo.Questions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, q1.ID, all[0].ID, "ordered by creation time")
	assert.Equal(t, q1.Text, all[0].Text)
	assert.Equal(t, question.SubjectMath, all[0].Subject)
	assert.WithinDuration(t, q1.CreatedAt, all[0].CreatedAt, time.Millisecond)

	require.NoError(t, repo.DeleteQuestion(ctx, q1.ID))
	assert.ErrorIs(t, repo.DeleteQuestion(ctx, q1.ID), storage.ErrNotFound)

	all, err = repo.Questions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	assert.Error(t, repo.AddQuestion(ctx, question.Custom{}), "invalid question rejected before insert")
}
