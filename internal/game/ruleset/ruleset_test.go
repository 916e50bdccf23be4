package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolchanov/magequest/internal/game/ruleset"
)

func TestDefaultClasses_BaseStats(t *testing.T) {
	classes := ruleset.DefaultClasses()

	mage := classes[ruleset.ClassMage]
	assert.Equal(t, 80, mage.BaseHP)
	assert.Equal(t, 1.2, mage.XPMult)

	knight := classes[ruleset.ClassKnight]
	assert.Equal(t, 140, knight.BaseHP)
	assert.Equal(t, 1.0, knight.XPMult)

	archer := classes[ruleset.ClassArcher]
	assert.Equal(t, 100, archer.BaseHP)
	assert.Equal(t, 1.0, archer.XPMult)
}

func TestDefaultClasses_StarterKits(t *testing.T) {
	classes := ruleset.DefaultClasses()

	// All classes share the common supplies.
	for _, c := range classes {
		assert.Equal(t, "health_potion", c.StarterKit[0].ItemID, "class %s", c.ID)
		assert.Equal(t, 2, c.StarterKit[0].Quantity, "class %s", c.ID)
		assert.Equal(t, "math_scroll", c.StarterKit[1].ItemID, "class %s", c.ID)
	}

	// Only the archer carries the shield rune bonus.
	archer := classes[ruleset.ClassArcher]
	require.Len(t, archer.StarterKit, 3)
	assert.Equal(t, "shield_rune", archer.StarterKit[2].ItemID)
	assert.Len(t, classes[ruleset.ClassMage].StarterKit, 2)
	assert.Len(t, classes[ruleset.ClassKnight].StarterKit, 2)
}

func TestClassInfo_Validate(t *testing.T) {
	c := ruleset.DefaultClasses()[ruleset.ClassMage]
	assert.NoError(t, c.Validate())

	c.BaseHP = 0
	assert.Error(t, c.Validate())
}

func TestDefaultSkills_UnlockLevels(t *testing.T) {
	want := map[string]int{
		"fireball": 1, "scroll": 2, "iceray": 3,
		"thunder": 5, "shield": 7, "greatspell": 9,
	}
	skills := ruleset.DefaultSkills()
	require.Len(t, skills, len(want))
	for _, s := range skills {
		assert.Equal(t, want[s.ID], s.UnlockLevel, "skill %s", s.ID)
		assert.NoError(t, s.Validate())
	}
}

func TestSkill_Validate_RejectsUnknownEffect(t *testing.T) {
	s := ruleset.Skill{ID: "x", Effect: "timeStop", UnlockLevel: 1}
	assert.Error(t, s.Validate())
}

func TestLoadClasses_FromYAML(t *testing.T) {
	dir := t.TempDir()
	doc := `
id: mage
name: Маг
base_hp: 90
xp_mult: 1.1
starter_kit:
  - item: health_potion
    quantity: 1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mage.yaml"), []byte(doc), 0o644))

	classes, err := ruleset.LoadClasses(dir)
	require.NoError(t, err)
	require.Contains(t, classes, ruleset.ClassMage)
	assert.Equal(t, 90, classes[ruleset.ClassMage].BaseHP)
}

func TestLoadClasses_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	doc := "id: bard\nname: Бард\nbase_hp: 50\nxp_mult: 1.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bard.yaml"), []byte(doc), 0o644))

	_, err := ruleset.LoadClasses(dir)
	assert.Error(t, err)
}

func TestLoadSkills_FromYAML(t *testing.T) {
	dir := t.TempDir()
	doc := `
- id: fireball
  name: Огненный шар
  effect: xpBoost
  unlock_level: 1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skills.yaml"), []byte(doc), 0o644))

	skills, err := ruleset.LoadSkills(dir)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, ruleset.EffectXPBoost, skills[0].Effect)
}
