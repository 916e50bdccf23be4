// Package memory provides in-process implementations of the storage
// contracts, used in memory persistence mode and throughout the tests.
package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/dmolchanov/magequest/internal/game/daily"
	"github.com/dmolchanov/magequest/internal/game/question"
	"github.com/dmolchanov/magequest/internal/storage"
)

// Store implements all four storage interfaces over process memory.
// Blobs are round-tripped through their JSON encodings so memory mode
// exercises the same serialization paths as postgres.
type Store struct {
	mu          sync.RWMutex
	saves       map[string][]byte
	daily       map[string][]byte
	leaderboard []storage.LeaderboardEntry
	questions   []question.Custom
}

var (
	_ storage.SaveStore        = (*Store)(nil)
	_ storage.LeaderboardStore = (*Store)(nil)
	_ storage.DailyStore       = (*Store)(nil)
	_ storage.QuestionStore    = (*Store)(nil)
)

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		saves: make(map[string][]byte),
		daily: make(map[string][]byte),
	}
}

// Stores returns the store wired into every storage role.
func (s *Store) Stores() storage.Stores {
	return storage.Stores{Saves: s, Leaderboard: s, Daily: s, Questions: s}
}

func (s *Store) SaveGame(_ context.Context, slot string, data *storage.SaveData) error {
	raw, err := storage.EncodeSave(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[slot] = raw
	return nil
}

func (s *Store) LoadGame(_ context.Context, slot string) (*storage.SaveData, error) {
	s.mu.RLock()
	raw, ok := s.saves[slot]
	s.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	data, err := storage.DecodeSave(raw)
	if err != nil {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (s *Store) ClearSave(_ context.Context, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saves, slot)
	return nil
}

func (s *Store) Upsert(_ context.Context, entry storage.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := false
	for i := range s.leaderboard {
		if s.leaderboard[i].Name == entry.Name {
			s.leaderboard[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		s.leaderboard = append(s.leaderboard, entry)
	}
	storage.SortEntries(s.leaderboard)
	if len(s.leaderboard) > storage.MaxLeaderboardEntries {
		s.leaderboard = s.leaderboard[:storage.MaxLeaderboardEntries]
	}
	return nil
}

func (s *Store) Top(_ context.Context, limit int) ([]storage.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := min(limit, len(s.leaderboard))
	out := make([]storage.LeaderboardEntry, n)
	copy(out, s.leaderboard[:n])
	return out, nil
}

func (s *Store) SaveDaily(_ context.Context, slot string, data *daily.Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.daily[slot] = raw
	return nil
}

func (s *Store) LoadDaily(_ context.Context, slot string) (*daily.Data, error) {
	s.mu.RLock()
	raw, ok := s.daily[slot]
	s.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	var data daily.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, storage.ErrNotFound
	}
	return &data, nil
}

func (s *Store) AddQuestion(_ context.Context, q question.Custom) error {
	if err := q.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append(s.questions, q)
	sort.SliceStable(s.questions, func(i, j int) bool {
		return s.questions[i].CreatedAt.Before(s.questions[j].CreatedAt)
	})
	return nil
}

func (s *Store) DeleteQuestion(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.questions {
		if s.questions[i].ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (s *Store) Questions(_ context.Context) ([]question.Custom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]question.Custom, len(s.questions))
	copy(out, s.questions)
	return out, nil
}
