package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dmolchanov/magequest/internal/game/daily"
	"github.com/dmolchanov/magequest/internal/game/question"
	"github.com/dmolchanov/magequest/internal/storage"
)

// InitDailyQuests loads today's board, rolling a fresh one when the
// stored board is missing or from a previous UTC day.
func (s *Store) InitDailyQuests(ctx context.Context) (*daily.Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.dailyBoard != nil && !s.dailyBoard.Stale(now) {
		return s.dailyBoard.Clone(), nil
	}

	stored, err := s.backend.Daily.LoadDaily(ctx, s.slot)
	switch {
	case err == nil && !stored.Stale(now):
		s.dailyBoard = stored
	case err == nil || errors.Is(err, storage.ErrNotFound):
		s.dailyBoard = daily.NewForDay(now)
		s.persistDailyLocked(ctx)
	default:
		return nil, fmt.Errorf("loading daily quests: %w", err)
	}
	return s.dailyBoard.Clone(), nil
}

// ClaimDailyBonus grants the all-completed bonus once per day: XP, gold,
// and a large potion.
func (s *Store) ClaimDailyBonus(ctx context.Context) CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dailyBoard == nil || s.dailyBoard.Stale(s.now()) {
		return ignored("no daily quests for today")
	}
	if !s.dailyBoard.ClaimBonus() {
		return ignored("daily bonus is not claimable")
	}

	s.player.XP += daily.BonusXP
	s.player.Gold += daily.BonusGold
	if def, ok := s.content.Items.Lookup(daily.BonusItemID); ok {
		s.inventory = s.inventory.Add(def, 1)
	} else {
		s.log.Warn("daily bonus references unknown item",
			zap.String("item", daily.BonusItemID))
	}
	s.log.Info("daily bonus claimed",
		zap.Int("xp", daily.BonusXP),
		zap.Int("gold", daily.BonusGold))
	s.persistDailyLocked(ctx)
	s.persistLocked(ctx)
	return applied()
}

// Leaderboard returns the ranking, best first.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]storage.LeaderboardEntry, error) {
	if limit <= 0 || limit > storage.MaxLeaderboardEntries {
		limit = storage.MaxLeaderboardEntries
	}
	entries, err := s.backend.Leaderboard.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("reading leaderboard: %w", err)
	}
	return entries, nil
}

// AddCustomQuestion stores a handwritten question that competes with the
// generated pool for its subject once the player reaches its level.
func (s *Store) AddCustomQuestion(ctx context.Context, subject question.Subject, text, answer, hint string, level int) (question.Custom, error) {
	c, err := question.NewCustom(subject, text, answer, hint, level)
	if err != nil {
		return question.Custom{}, err
	}
	if err := s.backend.Questions.AddQuestion(ctx, c); err != nil {
		return question.Custom{}, fmt.Errorf("storing custom question: %w", err)
	}
	s.log.Info("custom question added",
		zap.String("id", c.ID),
		zap.String("subject", string(subject)))
	return c, nil
}

// DeleteCustomQuestion removes a stored question.
func (s *Store) DeleteCustomQuestion(ctx context.Context, id string) error {
	if err := s.backend.Questions.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("deleting custom question: %w", err)
	}
	return nil
}

// CustomQuestions lists all stored questions, oldest first.
func (s *Store) CustomQuestions(ctx context.Context) ([]question.Custom, error) {
	customs, err := s.backend.Questions.Questions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing custom questions: %w", err)
	}
	return customs, nil
}
