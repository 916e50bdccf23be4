// Package question generates battle questions for the three school
// subjects and scores submitted answers. Generation difficulty follows
// the player's subject level; every generated answer is an exact string
// so comparison never needs numeric parsing.
package question

import (
	"strings"

	"github.com/dmolchanov/magequest/internal/game/random"
)

// Subject selects a question generator.
type Subject string

const (
	SubjectMath     Subject = "math"
	SubjectRussian  Subject = "russian"
	SubjectGeometry Subject = "geometry"
)

// IsValid reports whether s is a known subject.
func (s Subject) IsValid() bool {
	switch s {
	case SubjectMath, SubjectRussian, SubjectGeometry:
		return true
	default:
		return false
	}
}

// Question is a single battle challenge. Hint is empty when the
// question carries none.
type Question struct {
	Text          string `json:"text"`
	CorrectAnswer string `json:"correctAnswer"`
	Hint          string `json:"hint,omitempty"`
}

// Generate produces a question for the subject at the given level.
//
// Precondition: src is non-nil; level >= 1 (lower levels are clamped).
// Postcondition: CorrectAnswer is non-empty; numeric answers are exact
// integer strings.
func Generate(src random.Source, subject Subject, level int) Question {
	if level < 1 {
		level = 1
	}
	switch subject {
	case SubjectGeometry:
		return generateGeometry(src, level)
	case SubjectRussian:
		return generateRussian(src, level)
	default:
		return generateMath(src, level)
	}
}

// CheckAnswer compares a submitted answer against the question,
// ignoring surrounding whitespace and letter case.
func CheckAnswer(q Question, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer))
}

// Battle attempt budget. Each wrong answer burns one attempt; the
// thunder skill doubles the budget.
const (
	BaseAttempts  = 3
	ExtraAttempts = 6
)

// MaxAttempts returns the attempt budget for a battle.
func MaxAttempts(extraAttempts bool) int {
	if extraAttempts {
		return ExtraAttempts
	}
	return BaseAttempts
}

// XPReward is the experience for a victory: scales with difficulty and
// shrinks with each failed attempt, floored at 5.
func XPReward(difficulty, attempts int) int {
	return max(5, 20*difficulty-attempts*5)
}

// GoldReward is the gold for a victory, floored at 2.
func GoldReward(difficulty, attempts int) int {
	return max(2, 10*difficulty-attempts*2)
}
