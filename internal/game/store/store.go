// Package store is the single mutation point for all game state: the
// player, inventory, quest chains, battles, skills, daily quests, and
// the leaderboard. Every public operation takes the store lock, applies
// the change, and persists through the configured storage backends.
// Persistence failures are logged and never surfaced: the in-memory
// state stays authoritative.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dmolchanov/magequest/internal/game/daily"
	"github.com/dmolchanov/magequest/internal/game/item"
	"github.com/dmolchanov/magequest/internal/game/loot"
	"github.com/dmolchanov/magequest/internal/game/player"
	"github.com/dmolchanov/magequest/internal/game/progression"
	"github.com/dmolchanov/magequest/internal/game/quest"
	"github.com/dmolchanov/magequest/internal/game/question"
	"github.com/dmolchanov/magequest/internal/game/random"
	"github.com/dmolchanov/magequest/internal/game/ruleset"
	"github.com/dmolchanov/magequest/internal/storage"
)

// GameState is the top-level client flow state carried by the store.
type GameState string

const (
	StateLoading    GameState = "LOADING"
	StateMenu       GameState = "MENU"
	StateNameEntry  GameState = "NAME_ENTRY"
	StateDiagnostic GameState = "DIAGNOSTIC"
	StatePlaying    GameState = "PLAYING"
	StateBattle     GameState = "BATTLE"
	StateInventory  GameState = "INVENTORY"
	StateShop       GameState = "SHOP"
	StateDeath      GameState = "DEATH"
)

// CommandResult reports whether a game command took effect. Invalid
// commands are not errors: they are ignored with a reason so callers can
// surface it without aborting anything.
type CommandResult struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
	// ImmediateWin is set when a skill resolves the battle outright and
	// the caller should finish it as a victory.
	ImmediateWin bool `json:"immediateWin,omitempty"`
}

func applied() CommandResult              { return CommandResult{Applied: true} }
func ignored(reason string) CommandResult { return CommandResult{Reason: reason} }

// BattleContext is the state of the battle in progress.
type BattleContext struct {
	Active     bool               `json:"isActive"`
	BattleID   string             `json:"battleId,omitempty"`
	EnemyID    string             `json:"enemyId,omitempty"`
	EnemyType  string             `json:"enemyType,omitempty"`
	Subject    question.Subject   `json:"subject,omitempty"`
	Difficulty int                `json:"difficulty"`
	Question   *question.Question `json:"currentQuestion,omitempty"`
	Zone       quest.Zone         `json:"zone,omitempty"`
	Attempts   int                `json:"attempts"`
	// ActiveEffect is armed by UseSkill, one skill per battle.
	ActiveEffect ruleset.SkillEffect `json:"activeSkillEffect,omitempty"`
	SkillUsed    bool                `json:"skillUsedThisBattle"`
}

// MaxAttempts returns the attempt budget for this battle.
func (b BattleContext) MaxAttempts() int {
	return question.MaxAttempts(b.ActiveEffect == ruleset.EffectExtraAttempts)
}

// Content bundles the game catalogs the store plays by.
type Content struct {
	Classes   map[ruleset.Class]ruleset.ClassInfo
	Skills    []ruleset.Skill
	Items     *item.Registry
	Catalogue item.Catalogue
	Drops     loot.Table
	Quests    []quest.Quest
}

// DefaultContent returns the built-in catalogs.
func DefaultContent() Content {
	return Content{
		Classes:   ruleset.DefaultClasses(),
		Skills:    ruleset.DefaultSkills(),
		Items:     item.DefaultRegistry(),
		Catalogue: item.DefaultCatalogue(),
		Drops:     loot.DefaultTable(),
		Quests:    quest.InitialQuests(),
	}
}

// Store owns all mutable game state for one save slot.
type Store struct {
	mu      sync.Mutex
	log     *zap.Logger
	rng     random.Source
	now     func() time.Time
	backend storage.Stores
	slot    string
	content Content

	state      GameState
	player     player.Player
	inventory  item.Inventory
	quests     []quest.Quest
	diagDone   bool
	rusZone    bool
	geoZone    bool
	unlocked   map[string]bool
	battle     BattleContext
	lastDrop   *item.Item
	dailyBoard *daily.Data
	wins       int
	purchased  map[string]int
}

// Option customizes a Store.
type Option func(*Store)

// WithRandom swaps the randomness source, used by tests to script draws.
func WithRandom(src random.Source) Option {
	return func(s *Store) { s.rng = src }
}

// WithClock swaps the time source, used by tests to pin the day.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithContent replaces the built-in catalogs.
func WithContent(c Content) Option {
	return func(s *Store) { s.content = c }
}

// New creates a Store over the given storage backends and save slot.
//
// Precondition: log must be non-nil; backend stores must be non-nil.
// Postcondition: The store starts in MENU state with no character.
func New(log *zap.Logger, backend storage.Stores, slot string, opts ...Option) *Store {
	s := &Store{
		log:       log,
		rng:       random.NewCryptoSource(),
		now:       time.Now,
		backend:   backend,
		slot:      slot,
		content:   DefaultContent(),
		state:     StateMenu,
		unlocked:  map[string]bool{},
		purchased: map[string]int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SkillView is a skill definition plus its unlock state for the current
// character.
type SkillView struct {
	ruleset.Skill
	Unlocked bool `json:"unlocked"`
}

// View is a deep copy of the store's externally visible state.
type View struct {
	State           GameState      `json:"gameState"`
	Player          player.Player  `json:"player"`
	Inventory       item.Inventory `json:"inventory"`
	Quests          []quest.Quest  `json:"quests"`
	Skills          []SkillView    `json:"skills"`
	Battle          BattleContext  `json:"battleContext"`
	DiagnosticDone  bool           `json:"diagnosticDone"`
	RusZoneUnlocked bool           `json:"rusZoneUnlocked"`
	GeoZoneUnlocked bool           `json:"geoZoneUnlocked"`
	LastDrop        *item.Item     `json:"lastDrop,omitempty"`
	Daily           *daily.Data    `json:"dailyQuests,omitempty"`
	Wins            int            `json:"wins"`
}

// Snapshot returns a copy of the current state, safe to serialize
// concurrently with further mutations.
func (s *Store) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() View {
	v := View{
		State:           s.state,
		Player:          s.player,
		Inventory:       s.inventory.Clone(),
		Quests:          quest.Clone(s.quests),
		Skills:          s.skillViewsLocked(),
		Battle:          s.battle,
		DiagnosticDone:  s.diagDone,
		RusZoneUnlocked: s.rusZone,
		GeoZoneUnlocked: s.geoZone,
		Daily:           s.dailyBoard.Clone(),
		Wins:            s.wins,
	}
	if s.battle.Question != nil {
		q := *s.battle.Question
		v.Battle.Question = &q
	}
	if s.lastDrop != nil {
		d := *s.lastDrop
		v.LastDrop = &d
	}
	return v
}

func (s *Store) skillViewsLocked() []SkillView {
	out := make([]SkillView, len(s.content.Skills))
	for i, sk := range s.content.Skills {
		out[i] = SkillView{Skill: sk, Unlocked: s.unlocked[sk.ID]}
	}
	return out
}

// recomputeSkillsLocked re-derives skill unlocks from the current level.
// Unlocks are monotonic within a character's life; re-deriving from
// level yields the same set because levels never decrease.
func (s *Store) recomputeSkillsLocked() {
	s.unlocked = make(map[string]bool, len(s.content.Skills))
	for _, sk := range s.content.Skills {
		if progression.SkillUnlocked(sk.UnlockLevel, s.player.Level) {
			s.unlocked[sk.ID] = true
		}
	}
}

// persistLocked writes the current snapshot to the save backend. Errors
// are logged, not returned: gameplay never blocks on storage.
func (s *Store) persistLocked(ctx context.Context) {
	data := &storage.SaveData{
		Player:          s.player,
		Inventory:       s.inventory.Clone(),
		Quests:          quest.Clone(s.quests),
		DiagnosticDone:  s.diagDone,
		RusZoneUnlocked: s.rusZone,
		GeoZoneUnlocked: s.geoZone,
		SavedAt:         s.now().UnixMilli(),
	}
	if err := s.backend.Saves.SaveGame(ctx, s.slot, data); err != nil {
		s.log.Warn("saving game failed",
			zap.String("slot", s.slot),
			zap.Error(err))
	}
}

// persistDailyLocked writes the daily board. Errors are logged only.
func (s *Store) persistDailyLocked(ctx context.Context) {
	if s.dailyBoard == nil {
		return
	}
	if err := s.backend.Daily.SaveDaily(ctx, s.slot, s.dailyBoard); err != nil {
		s.log.Warn("saving daily quests failed",
			zap.String("slot", s.slot),
			zap.Error(err))
	}
}

func (s *Store) classInfoLocked(c ruleset.Class) (ruleset.ClassInfo, bool) {
	info, ok := s.content.Classes[c]
	return info, ok
}

// relevantLevelLocked returns the subject level driving question
// difficulty: mathLevel for math, rusLevel for russian, the overall
// level for geometry.
func (s *Store) relevantLevelLocked(subject question.Subject) int {
	switch subject {
	case question.SubjectMath:
		return s.player.MathLevel
	case question.SubjectRussian:
		return s.player.RusLevel
	default:
		return s.player.Level
	}
}
