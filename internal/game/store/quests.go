package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dmolchanov/magequest/internal/game/progression"
	"github.com/dmolchanov/magequest/internal/game/quest"
)

// AcceptQuest takes an available quest, making it active.
func (s *Store) AcceptQuest(ctx context.Context, questID string) CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !quest.Accept(s.quests, questID) {
		return ignored(fmt.Sprintf("quest %q is not available", questID))
	}
	s.log.Debug("quest accepted", zap.String("quest", questID))
	s.persistLocked(ctx)
	return applied()
}

// CompleteQuest turns in a ready quest: XP and gold are granted, a
// level-up is evaluated, the reward item (if any) joins the inventory,
// and follower quests in the chain unlock.
//
// Quest XP is granted as written, without the class multiplier.
func (s *Store) CompleteQuest(ctx context.Context, questID string) CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := quest.ByID(s.quests, questID)
	if q == nil {
		return ignored(fmt.Sprintf("unknown quest %q", questID))
	}
	if q.Status != quest.StatusReady {
		return ignored(fmt.Sprintf("quest %q is not ready to turn in", questID))
	}
	reward := q.Reward
	if !quest.MarkCompleted(s.quests, questID) {
		return ignored(fmt.Sprintf("quest %q is not ready to turn in", questID))
	}

	s.player.Gold += reward.Gold
	up := progression.ApplyXP(s.player.Level, s.player.XP, reward.XP)
	s.player.XP = up.XP
	if up.LeveledUp {
		s.player.Level = up.Level
		if info, ok := s.classInfoLocked(s.player.Appearance.Class); ok {
			s.player.MaxHP = progression.MaxHP(info.BaseHP, s.player.Level)
		}
		s.player.HP = s.player.MaxHP
	}
	s.player.XPToNextLevel = progression.XPToNext(s.player.Level)
	s.applyZoneUnlocksLocked()
	s.recomputeSkillsLocked()

	if reward.Item != nil {
		if def, ok := s.content.Items.Lookup(reward.Item.ID); ok {
			s.inventory = s.inventory.Add(def, 1)
		} else {
			s.log.Warn("quest reward references unknown item",
				zap.String("quest", questID),
				zap.String("item", reward.Item.ID))
		}
	}

	s.log.Info("quest completed",
		zap.String("quest", questID),
		zap.Int("xp", reward.XP),
		zap.Int("gold", reward.Gold),
		zap.Bool("leveledUp", up.LeveledUp))
	s.persistLocked(ctx)
	return applied()
}
