package store

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dmolchanov/magequest/internal/game/progression"
	"github.com/dmolchanov/magequest/internal/game/quest"
	"github.com/dmolchanov/magequest/internal/game/question"
	"github.com/dmolchanov/magequest/internal/game/ruleset"
	"github.com/dmolchanov/magequest/internal/storage"
)

// DefeatDamage is the flat HP loss for losing a battle.
const DefeatDamage = 10

// Outcome classifies the result of an answer or battle resolution.
type Outcome string

const (
	OutcomeVictory Outcome = "victory"
	OutcomeRetry   Outcome = "retry"
	OutcomeDefeat  Outcome = "defeat"
)

// AnswerResult reports what an answer submission did.
type AnswerResult struct {
	Outcome      Outcome `json:"outcome"`
	Correct      bool    `json:"correct"`
	AttemptsLeft int     `json:"attemptsLeft"`
	Hint         string  `json:"hint,omitempty"`
	XP           int     `json:"xp,omitempty"`
	Gold         int     `json:"gold,omitempty"`
	LeveledUp    bool    `json:"leveledUp,omitempty"`
	DropItemID   string  `json:"dropItemId,omitempty"`
	Died         bool    `json:"died,omitempty"`
}

// TriggerBattle starts a quiz battle against the given enemy. A battle
// already in progress is left untouched.
//
// Precondition: subject and zone must be valid.
// Postcondition: On success a question matched to the relevant subject
// level is drawn, attempts are zero, and the state is BATTLE.
func (s *Store) TriggerBattle(ctx context.Context, enemyID, enemyType string, subject question.Subject, difficulty int, zone quest.Zone) CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.battle.Active {
		return ignored("battle already in progress")
	}
	if s.state != StatePlaying {
		return ignored(fmt.Sprintf("cannot start a battle from state %s", s.state))
	}
	if !subject.IsValid() {
		return ignored(fmt.Sprintf("unknown subject %q", subject))
	}
	if !zone.IsValid() {
		return ignored(fmt.Sprintf("unknown zone %q", zone))
	}
	if difficulty < 1 {
		difficulty = 1
	}

	customs, err := s.backend.Questions.Questions(ctx)
	if err != nil {
		s.log.Warn("loading custom questions failed", zap.Error(err))
		customs = nil
	}
	level := s.relevantLevelLocked(subject)
	q := question.GenerateWith(s.rng, subject, level, customs)

	s.battle = BattleContext{
		Active:     true,
		BattleID:   uuid.NewString(),
		EnemyID:    enemyID,
		EnemyType:  enemyType,
		Subject:    subject,
		Difficulty: difficulty,
		Question:   &q,
		Zone:       zone,
	}
	s.lastDrop = nil
	s.state = StateBattle

	s.log.Debug("battle started",
		zap.String("battle", s.battle.BattleID),
		zap.String("enemy", enemyType),
		zap.String("subject", string(subject)),
		zap.Int("difficulty", difficulty))
	return applied()
}

// SubmitAnswer checks the answer against the current question. A correct
// answer resolves the battle as a victory; a wrong one burns an attempt
// and, once the budget is exhausted, resolves it as a defeat.
func (s *Store) SubmitAnswer(ctx context.Context, answer string) (AnswerResult, CommandResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.battle.Active || s.battle.Question == nil {
		return AnswerResult{}, ignored("no battle in progress")
	}

	if question.CheckAnswer(*s.battle.Question, answer) {
		res := s.resolveVictoryLocked(ctx)
		res.Correct = true
		return res, applied()
	}

	s.battle.Attempts++
	maxAttempts := s.battle.MaxAttempts()
	if s.battle.Attempts >= maxAttempts {
		res := s.resolveDefeatLocked(ctx)
		return res, applied()
	}

	res := AnswerResult{
		Outcome:      OutcomeRetry,
		AttemptsLeft: maxAttempts - s.battle.Attempts,
	}
	if s.battle.ActiveEffect == ruleset.EffectShowHint {
		res.Hint = s.battle.Question.Hint
	}
	return res, applied()
}

// UseSkill arms a skill for the current battle. One skill per battle;
// locked skills are rejected. A skip-question skill wins outright.
func (s *Store) UseSkill(ctx context.Context, skillID string) (AnswerResult, CommandResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.battle.Active {
		return AnswerResult{}, ignored("no battle in progress")
	}
	if s.battle.SkillUsed {
		return AnswerResult{}, ignored("a skill was already used this battle")
	}
	var skill *ruleset.Skill
	for i := range s.content.Skills {
		if s.content.Skills[i].ID == skillID {
			skill = &s.content.Skills[i]
			break
		}
	}
	if skill == nil {
		return AnswerResult{}, ignored(fmt.Sprintf("unknown skill %q", skillID))
	}
	if !s.unlocked[skill.ID] {
		return AnswerResult{}, ignored(fmt.Sprintf("skill %q is locked", skillID))
	}

	s.battle.SkillUsed = true
	s.battle.ActiveEffect = skill.Effect
	s.log.Debug("skill used",
		zap.String("battle", s.battle.BattleID),
		zap.String("skill", skillID))

	if skill.Effect == ruleset.EffectSkipQuestion {
		res := s.resolveVictoryLocked(ctx)
		return res, CommandResult{Applied: true, ImmediateWin: true}
	}
	res := AnswerResult{Outcome: OutcomeRetry, AttemptsLeft: s.battle.MaxAttempts() - s.battle.Attempts}
	if skill.Effect == ruleset.EffectShowHint && s.battle.Question != nil {
		res.Hint = s.battle.Question.Hint
	}
	return res, applied()
}

// Forfeit abandons the battle, taking the defeat path.
func (s *Store) Forfeit(ctx context.Context) (AnswerResult, CommandResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.battle.Active {
		return AnswerResult{}, ignored("no battle in progress")
	}
	res := s.resolveDefeatLocked(ctx)
	return res, applied()
}

// resolveVictoryLocked applies the full victory sequence: quest kill
// credit, reward scaling, XP and level-up, unlocks, loot, daily quest
// progress, the leaderboard, and persistence.
func (s *Store) resolveVictoryLocked(ctx context.Context) AnswerResult {
	b := s.battle

	quest.AdvanceKills(s.quests, b.Zone)

	baseXP := question.XPReward(b.Difficulty, b.Attempts)
	baseGold := question.GoldReward(b.Difficulty, b.Attempts)
	rawXP := float64(baseXP)
	rawGold := float64(baseGold)
	if b.ActiveEffect == ruleset.EffectXPBoost {
		rawXP *= 1.5
	}
	if b.ActiveEffect == ruleset.EffectGoldBoost {
		rawGold *= 2
	}
	gainedXP := int(math.Round(rawXP * s.player.XPMult))
	gainedGold := int(math.Round(rawGold))

	s.player.Gold += gainedGold
	up := progression.ApplyXP(s.player.Level, s.player.XP, gainedXP)
	s.player.XP = up.XP
	leveled := up.LeveledUp
	if leveled {
		s.player.Level = up.Level
		switch b.Subject {
		case question.SubjectMath:
			s.player.MathLevel++
		case question.SubjectRussian:
			s.player.RusLevel++
		}
		if info, ok := s.classInfoLocked(s.player.Appearance.Class); ok {
			s.player.MaxHP = progression.MaxHP(info.BaseHP, s.player.Level)
		}
		s.player.HP = s.player.MaxHP
	}
	s.player.XPToNextLevel = progression.XPToNext(s.player.Level)
	s.applyZoneUnlocksLocked()
	s.recomputeSkillsLocked()

	dropID := s.rollDropLocked()
	dailyXP, dailyGold := s.advanceDailyLocked(b.Zone)
	s.player.XP += dailyXP
	s.player.Gold += dailyGold

	s.wins++
	s.upsertLeaderboardLocked(ctx)
	s.persistLocked(ctx)
	s.persistDailyLocked(ctx)

	s.battle = BattleContext{}
	s.state = StatePlaying

	s.log.Info("battle won",
		zap.String("battle", b.BattleID),
		zap.Int("xp", gainedXP),
		zap.Int("gold", gainedGold),
		zap.Bool("leveledUp", leveled),
		zap.String("drop", dropID))
	return AnswerResult{
		Outcome:    OutcomeVictory,
		XP:         gainedXP,
		Gold:       gainedGold,
		LeveledUp:  leveled,
		DropItemID: dropID,
	}
}

// resolveDefeatLocked applies the loss: flat damage unless a damage
// shield was armed. Death clears the battle without saving, so the last
// pre-battle save survives.
func (s *Store) resolveDefeatLocked(ctx context.Context) AnswerResult {
	b := s.battle
	died := false
	if b.ActiveEffect == ruleset.EffectDamageShield {
		s.log.Debug("damage shield absorbed the defeat",
			zap.String("battle", b.BattleID))
	} else {
		died = s.player.TakeDamage(DefeatDamage)
	}

	s.battle = BattleContext{}
	if died {
		s.state = StateDeath
		s.log.Info("player died", zap.String("battle", b.BattleID))
		return AnswerResult{Outcome: OutcomeDefeat, Died: true}
	}
	s.state = StatePlaying
	s.persistLocked(ctx)
	return AnswerResult{Outcome: OutcomeDefeat}
}

// rollDropLocked rolls the drop table once and banks any hit.
func (s *Store) rollDropLocked() string {
	id := s.content.Drops.Roll(s.rng)
	if id == "" {
		s.lastDrop = nil
		return ""
	}
	def, ok := s.content.Items.Lookup(id)
	if !ok {
		s.log.Warn("drop table references unknown item", zap.String("item", id))
		s.lastDrop = nil
		return ""
	}
	s.inventory = s.inventory.Add(def, 1)
	if it := s.inventory.Find(id); it != nil {
		drop := *it
		drop.Quantity = 1
		s.lastDrop = &drop
	}
	return id
}

// advanceDailyLocked feeds a kill into the daily board and returns the
// per-quest completion rewards, zero when no board is active today.
func (s *Store) advanceDailyLocked(zone quest.Zone) (xp, gold int) {
	if s.dailyBoard == nil || s.dailyBoard.Stale(s.now()) {
		return 0, 0
	}
	return s.dailyBoard.Advance(zone)
}

// upsertLeaderboardLocked writes the player's current row. Best effort.
func (s *Store) upsertLeaderboardLocked(ctx context.Context) {
	entry := storage.LeaderboardEntry{
		Name:    s.player.Name,
		Level:   s.player.Level,
		Gold:    s.player.Gold,
		Wins:    s.wins,
		Class:   string(s.player.Appearance.Class),
		SavedAt: s.now().UnixMilli(),
	}
	if err := s.backend.Leaderboard.Upsert(ctx, entry); err != nil {
		s.log.Warn("updating leaderboard failed", zap.Error(err))
	}
}
