// Package storage defines the persistence contracts for game saves,
// the leaderboard, daily quest boards, and custom questions. The game
// core depends only on these interfaces; implementations live in the
// memory sub-package and internal/storage/postgres.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/dmolchanov/magequest/internal/game/daily"
	"github.com/dmolchanov/magequest/internal/game/item"
	"github.com/dmolchanov/magequest/internal/game/player"
	"github.com/dmolchanov/magequest/internal/game/quest"
	"github.com/dmolchanov/magequest/internal/game/question"
)

// ErrNotFound is returned when a slot or record does not exist.
var ErrNotFound = errors.New("storage: not found")

// SaveData is the full game snapshot for one save slot. SavedAt is unix
// milliseconds at write time.
type SaveData struct {
	Player          player.Player `json:"player"`
	Inventory       []item.Item   `json:"inventory"`
	Quests          []quest.Quest `json:"quests"`
	DiagnosticDone  bool          `json:"diagnosticDone"`
	RusZoneUnlocked bool          `json:"rusZoneUnlocked"`
	GeoZoneUnlocked bool          `json:"geoZoneUnlocked"`
	SavedAt         int64         `json:"savedAt"`
}

// saveDataDTO mirrors SaveData with pointers for the fields older blobs
// may omit, so absence is distinguishable from false.
type saveDataDTO struct {
	Player          player.Player `json:"player"`
	Inventory       []item.Item   `json:"inventory"`
	Quests          []quest.Quest `json:"quests"`
	DiagnosticDone  *bool         `json:"diagnosticDone"`
	RusZoneUnlocked *bool         `json:"rusZoneUnlocked"`
	GeoZoneUnlocked *bool         `json:"geoZoneUnlocked"`
	SavedAt         int64         `json:"savedAt"`
}

// DecodeSave parses a save blob, defaulting fields older versions lack:
// a missing diagnosticDone means the save predates the flag and the
// diagnostic is considered done; missing zone flags stay locked.
//
// Postcondition: returns a non-nil SaveData or an error; never both.
func DecodeSave(raw []byte) (*SaveData, error) {
	var dto saveDataDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	out := &SaveData{
		Player:          dto.Player,
		Inventory:       dto.Inventory,
		Quests:          dto.Quests,
		DiagnosticDone:  true,
		RusZoneUnlocked: false,
		GeoZoneUnlocked: false,
		SavedAt:         dto.SavedAt,
	}
	if dto.DiagnosticDone != nil {
		out.DiagnosticDone = *dto.DiagnosticDone
	}
	if dto.RusZoneUnlocked != nil {
		out.RusZoneUnlocked = *dto.RusZoneUnlocked
	}
	if dto.GeoZoneUnlocked != nil {
		out.GeoZoneUnlocked = *dto.GeoZoneUnlocked
	}
	return out, nil
}

// EncodeSave serializes a save blob.
func EncodeSave(data *SaveData) ([]byte, error) {
	return json.Marshal(data)
}

// LeaderboardEntry is one ranking row, keyed by player name.
type LeaderboardEntry struct {
	Name    string `json:"name"`
	Level   int    `json:"level"`
	Gold    int    `json:"gold"`
	Wins    int    `json:"wins"`
	Class   string `json:"class"`
	SavedAt int64  `json:"savedAt"`
}

// MaxLeaderboardEntries caps the stored ranking.
const MaxLeaderboardEntries = 10

// SortEntries orders entries by level descending, gold descending.
func SortEntries(entries []LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Level != entries[j].Level {
			return entries[i].Level > entries[j].Level
		}
		return entries[i].Gold > entries[j].Gold
	})
}

// SaveStore persists full game snapshots keyed by slot.
type SaveStore interface {
	// SaveGame overwrites the slot's snapshot.
	SaveGame(ctx context.Context, slot string, data *SaveData) error
	// LoadGame returns the slot's snapshot, ErrNotFound when absent or
	// unreadable.
	LoadGame(ctx context.Context, slot string) (*SaveData, error)
	// ClearSave removes the slot. Clearing an absent slot is not an error.
	ClearSave(ctx context.Context, slot string) error
}

// LeaderboardStore persists the shared top-10 ranking.
type LeaderboardStore interface {
	// Upsert inserts or replaces the entry with the same name, keeping at
	// most MaxLeaderboardEntries best rows.
	Upsert(ctx context.Context, entry LeaderboardEntry) error
	// Top returns up to limit entries in ranking order.
	Top(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

// DailyStore persists the per-slot daily quest board.
type DailyStore interface {
	SaveDaily(ctx context.Context, slot string, data *daily.Data) error
	// LoadDaily returns the stored board, ErrNotFound when absent.
	LoadDaily(ctx context.Context, slot string) (*daily.Data, error)
}

// QuestionStore persists teacher-authored custom questions.
type QuestionStore interface {
	AddQuestion(ctx context.Context, q question.Custom) error
	// DeleteQuestion removes the question; ErrNotFound when absent.
	DeleteQuestion(ctx context.Context, id string) error
	// Questions returns all custom questions ordered by creation time.
	Questions(ctx context.Context) ([]question.Custom, error)
}

// Stores bundles the four persistence concerns as wired into the game
// store.
type Stores struct {
	Saves       SaveStore
	Leaderboard LeaderboardStore
	Daily       DailyStore
	Questions   QuestionStore
}
