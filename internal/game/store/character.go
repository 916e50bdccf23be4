package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dmolchanov/magequest/internal/game/item"
	"github.com/dmolchanov/magequest/internal/game/player"
	"github.com/dmolchanov/magequest/internal/game/progression"
	"github.com/dmolchanov/magequest/internal/game/quest"
	"github.com/dmolchanov/magequest/internal/storage"
)

// NewCharacter creates a fresh character, grants the class starter kit,
// resets quest chains, and moves to the diagnostic.
//
// Postcondition: On success the state is DIAGNOSTIC, the diagnostic is
// pending, and the snapshot is persisted.
func (s *Store) NewCharacter(ctx context.Context, name string, appearance player.Appearance) CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := s.classInfoLocked(appearance.Class)
	if !ok {
		return ignored(fmt.Sprintf("unknown class %q", appearance.Class))
	}

	s.player = player.New(name, appearance, info)
	s.player.ID = uuid.NewString()
	s.inventory = item.Inventory{}
	for _, kit := range info.StarterKit {
		def, ok := s.content.Items.Lookup(kit.ItemID)
		if !ok {
			s.log.Warn("starter kit references unknown item",
				zap.String("class", string(info.ID)),
				zap.String("item", kit.ItemID))
			continue
		}
		s.inventory = s.inventory.Add(def, kit.Quantity)
	}
	s.quests = quest.Clone(s.content.Quests)
	s.diagDone = false
	s.rusZone = false
	s.geoZone = false
	s.battle = BattleContext{}
	s.lastDrop = nil
	s.wins = 0
	s.purchased = map[string]int{}
	s.recomputeSkillsLocked()
	s.state = StateDiagnostic

	s.log.Info("character created",
		zap.String("name", s.player.Name),
		zap.String("class", string(appearance.Class)))
	s.persistLocked(ctx)
	return applied()
}

// LoadSave restores the slot's snapshot and resumes play. Returns false
// when the slot has no save.
//
// Postcondition: On success the state is PLAYING, skill unlocks are
// re-derived from the restored level, and saves written before the
// quest prerequisite field existed have it backfilled from the built-in
// chains.
func (s *Store) LoadSave(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Saves.LoadGame(ctx, s.slot)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("loading save: %w", err)
	}

	s.player = data.Player
	s.inventory = item.Inventory(data.Inventory).Clone()
	s.quests = quest.Clone(data.Quests)
	if len(s.quests) == 0 {
		s.quests = quest.Clone(s.content.Quests)
	}
	s.backfillPrerequisitesLocked()
	s.diagDone = data.DiagnosticDone
	s.rusZone = data.RusZoneUnlocked
	s.geoZone = data.GeoZoneUnlocked
	s.battle = BattleContext{}
	s.lastDrop = nil
	s.purchased = map[string]int{}
	s.recomputeSkillsLocked()
	s.restoreWinsLocked(ctx)
	s.state = StatePlaying

	s.log.Info("save loaded",
		zap.String("slot", s.slot),
		zap.String("name", s.player.Name),
		zap.Int("level", s.player.Level))
	return true, nil
}

// backfillPrerequisitesLocked fills missing quest prerequisites from the
// built-in chains. Saves from before the field existed carry empty
// prerequisites for non-root quests.
func (s *Store) backfillPrerequisitesLocked() {
	for i := range s.quests {
		if s.quests[i].Prerequisite != "" {
			continue
		}
		if ref := quest.ByID(s.content.Quests, s.quests[i].ID); ref != nil {
			s.quests[i].Prerequisite = ref.Prerequisite
		}
	}
}

// restoreWinsLocked recovers the battle win counter from the player's
// leaderboard row, if any. Best effort: a read failure leaves it at zero.
func (s *Store) restoreWinsLocked(ctx context.Context) {
	s.wins = 0
	entries, err := s.backend.Leaderboard.Top(ctx, storage.MaxLeaderboardEntries)
	if err != nil {
		s.log.Warn("reading leaderboard failed", zap.Error(err))
		return
	}
	for _, e := range entries {
		if e.Name == s.player.Name {
			s.wins = e.Wins
			return
		}
	}
}

// ClearSave deletes the slot's save and returns to the menu.
func (s *Store) ClearSave(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Saves.ClearSave(ctx, s.slot); err != nil {
		return fmt.Errorf("clearing save: %w", err)
	}
	s.state = StateMenu
	return nil
}

// FinishDiagnostic applies the placement results: the overall level is
// the mean of the two subject levels (at least 1), HP is refilled, and
// zone and skill unlocks are evaluated.
//
// Postcondition: On success diagnosticDone is true, HP == MaxHP, and the
// state is PLAYING.
func (s *Store) FinishDiagnostic(ctx context.Context, mathLevel, rusLevel int) CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.diagDone {
		return ignored("diagnostic already completed")
	}
	if mathLevel < 1 || rusLevel < 1 {
		return ignored("subject levels must be at least 1")
	}

	level := (mathLevel + rusLevel) / 2
	if level < 1 {
		level = 1
	}
	s.player.MathLevel = mathLevel
	s.player.RusLevel = rusLevel
	s.player.Level = level
	s.player.XPToNextLevel = progression.XPToNext(level)
	info, ok := s.classInfoLocked(s.player.Appearance.Class)
	if ok {
		s.player.MaxHP = progression.MaxHP(info.BaseHP, level)
	}
	s.player.HP = s.player.MaxHP
	s.applyZoneUnlocksLocked()
	s.recomputeSkillsLocked()
	s.diagDone = true
	s.state = StatePlaying

	s.log.Info("diagnostic finished",
		zap.Int("mathLevel", mathLevel),
		zap.Int("rusLevel", rusLevel),
		zap.Int("level", level))
	s.persistLocked(ctx)
	return applied()
}

// Respawn brings a dead character back at half health.
//
// Postcondition: HP == floor(MaxHP/2), state is PLAYING, snapshot
// persisted.
func (s *Store) Respawn(ctx context.Context) CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDeath {
		return ignored("not dead")
	}
	s.player.HP = s.player.MaxHP / 2
	s.battle = BattleContext{}
	s.state = StatePlaying
	s.persistLocked(ctx)
	return applied()
}

// SetState switches between the client flow states that carry no game
// semantics (inventory, shop, menu navigation). Battle and death are
// owned by their operations and cannot be entered directly.
func (s *Store) SetState(state GameState) CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch state {
	case StateBattle, StateDeath, StateDiagnostic:
		return ignored(fmt.Sprintf("state %s cannot be entered directly", state))
	case StateLoading, StateMenu, StateNameEntry, StatePlaying, StateInventory, StateShop:
		s.state = state
		return applied()
	default:
		return ignored(fmt.Sprintf("unknown state %q", state))
	}
}

// applyZoneUnlocksLocked raises zone flags for the current level.
// Unlocks are monotonic: flags are never cleared.
func (s *Store) applyZoneUnlocksLocked() {
	rus, geo := progression.ZoneUnlocks(s.player.Level)
	if rus {
		s.rusZone = true
	}
	if geo {
		s.geoZone = true
	}
}
