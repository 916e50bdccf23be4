// Package player defines the player domain model and creation logic.
package player

import (
	"strings"

	"github.com/dmolchanov/magequest/internal/game/progression"
	"github.com/dmolchanov/magequest/internal/game/ruleset"
)

// SkinTone and HairColor are cosmetic appearance choices rendered by the
// client; the core only round-trips them through the save blob.
type (
	SkinTone  string
	HairColor string
)

// Appearance is the player's chosen class and cosmetics.
type Appearance struct {
	Class     ruleset.Class `json:"class"`
	SkinTone  SkinTone      `json:"skinTone"`
	HairColor HairColor     `json:"hairColor"`
}

// DefaultAppearance is used when a new game starts without explicit choices.
var DefaultAppearance = Appearance{Class: ruleset.ClassMage, SkinTone: "light", HairColor: "brown"}

// DefaultName is the fallback when a player submits a blank name.
const DefaultName = "Маг-Ученик"

// Player is the persistent character state.
//
// Invariant: 0 <= HP <= MaxHP; XP >= 0; Level >= 1 and never decreases.
// Invariant: MaxHP == classBaseHP + 20*(Level-1).
// XPMult is fixed by class at creation and never changes afterwards.
type Player struct {
	ID            string     `json:"id,omitempty"`
	Name          string     `json:"name"`
	Level         int        `json:"level"`
	XP            int        `json:"xp"`
	XPToNextLevel int        `json:"xpToNextLevel"`
	Gold          int        `json:"gold"`
	MathLevel     int        `json:"mathLevel"`
	RusLevel      int        `json:"rusLevel"`
	HP            int        `json:"hp"`
	MaxHP         int        `json:"maxHp"`
	Appearance    Appearance `json:"appearance"`
	XPMult        float64    `json:"xpMult"`
}

// New creates a level-1 player of the given class.
//
// Postcondition: HP == MaxHP == class base HP; XPMult is the class
// multiplier; a blank or whitespace name falls back to DefaultName.
func New(name string, appearance Appearance, info ruleset.ClassInfo) Player {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	return Player{
		Name:          name,
		Level:         1,
		XP:            0,
		XPToNextLevel: progression.XPToNext(1),
		Gold:          0,
		MathLevel:     1,
		RusLevel:      1,
		HP:            info.BaseHP,
		MaxHP:         info.BaseHP,
		Appearance:    appearance,
		XPMult:        info.XPMult,
	}
}

// TakeDamage reduces HP by amount, clamped at zero. Returns true when the
// player died (HP reached 0).
//
// Precondition: amount >= 0.
// Postcondition: 0 <= p.HP <= p.MaxHP.
func (p *Player) TakeDamage(amount int) bool {
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
	return p.HP == 0
}

// Heal restores up to amount HP, clamped at MaxHP.
//
// Precondition: amount >= 0.
func (p *Player) Heal(amount int) {
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}
