package ruleset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SkillEffect enumerates the one-per-battle modifiers a skill can arm.
type SkillEffect string

const (
	EffectXPBoost       SkillEffect = "xpBoost"       // ×1.5 XP on this victory
	EffectShowHint      SkillEffect = "showHint"      // reveals the question hint
	EffectSkipQuestion  SkillEffect = "skipQuestion"  // immediate win, question skipped
	EffectExtraAttempts SkillEffect = "extraAttempts" // +3 answer attempts
	EffectDamageShield  SkillEffect = "damageShield"  // blocks defeat damage
	EffectGoldBoost     SkillEffect = "goldBoost"     // ×2 gold on this victory
)

// IsValid reports whether e is a known skill effect.
func (e SkillEffect) IsValid() bool {
	switch e {
	case EffectXPBoost, EffectShowHint, EffectSkipQuestion,
		EffectExtraAttempts, EffectDamageShield, EffectGoldBoost:
		return true
	default:
		return false
	}
}

// Skill defines a player skill. Skills unlock when the player's level
// reaches UnlockLevel and never lock again.
type Skill struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Emoji       string      `yaml:"emoji" json:"emoji"`
	Description string      `yaml:"description" json:"description"`
	Effect      SkillEffect `yaml:"effect" json:"effect"`
	UnlockLevel int         `yaml:"unlock_level" json:"unlockLevel"`
}

// Validate checks the skill invariants.
func (s Skill) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("skill: id must not be empty")
	}
	if !s.Effect.IsValid() {
		return fmt.Errorf("skill %q: unknown effect %q", s.ID, s.Effect)
	}
	if s.UnlockLevel < 1 {
		return fmt.Errorf("skill %q: unlock_level must be >= 1, got %d", s.ID, s.UnlockLevel)
	}
	return nil
}

// DefaultSkills returns the built-in skill catalog ordered by unlock level.
func DefaultSkills() []Skill {
	return []Skill{
		{ID: "fireball", Name: "Огненный шар", Emoji: "🔥", Description: "+50% XP за эту победу", Effect: EffectXPBoost, UnlockLevel: 1},
		{ID: "scroll", Name: "Свиток мудрости", Emoji: "📜", Description: "Показывает подсказку к вопросу", Effect: EffectShowHint, UnlockLevel: 2},
		{ID: "iceray", Name: "Ледяной луч", Emoji: "❄️", Description: "Пропустить вопрос (победа зачтена)", Effect: EffectSkipQuestion, UnlockLevel: 3},
		{ID: "thunder", Name: "Громовое слово", Emoji: "⚡", Description: "+3 дополнительные попытки", Effect: EffectExtraAttempts, UnlockLevel: 5},
		{ID: "shield", Name: "Щит знаний", Emoji: "🛡️", Description: "Защита от урона при следующей ошибке", Effect: EffectDamageShield, UnlockLevel: 7},
		{ID: "greatspell", Name: "Великое заклинание", Emoji: "✨", Description: "x2 золота за эту победу", Effect: EffectGoldBoost, UnlockLevel: 9},
	}
}

// LoadSkills reads all .yaml files in dir, each holding a list of skills.
//
// Postcondition: Returns the validated skills, or a non-nil error.
func LoadSkills(dir string) ([]Skill, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", dir, err)
	}
	var skills []Skill
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var batch []Skill
		if err := yaml.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parsing skill file %s: %w", path, err)
		}
		for _, s := range batch {
			if err := s.Validate(); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		skills = append(skills, batch...)
	}
	return skills, nil
}
