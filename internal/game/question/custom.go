package question

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmolchanov/magequest/internal/game/random"
)

// Custom is a teacher-authored question stored alongside the built-in
// generators. Level is the lowest subject level it may appear at.
type Custom struct {
	ID            string    `json:"id"`
	Subject       Subject   `json:"subject"`
	Text          string    `json:"text"`
	CorrectAnswer string    `json:"correctAnswer"`
	Hint          string    `json:"hint,omitempty"`
	Level         int       `json:"level"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewCustom builds a validated custom question with a fresh id.
func NewCustom(subject Subject, text, answer, hint string, level int) (Custom, error) {
	c := Custom{
		ID:            "cq_" + uuid.NewString(),
		Subject:       subject,
		Text:          strings.TrimSpace(text),
		CorrectAnswer: strings.TrimSpace(answer),
		Hint:          strings.TrimSpace(hint),
		Level:         level,
		CreatedAt:     time.Now().UTC(),
	}
	return c, c.Validate()
}

// Validate checks a custom question's invariants.
func (c Custom) Validate() error {
	if !c.Subject.IsValid() {
		return fmt.Errorf("question: unknown subject %q", c.Subject)
	}
	if c.Text == "" {
		return fmt.Errorf("question: text must not be empty")
	}
	if c.CorrectAnswer == "" {
		return fmt.Errorf("question: correct answer must not be empty")
	}
	if c.Level < 1 {
		return fmt.Errorf("question: level must be >= 1, got %d", c.Level)
	}
	return nil
}

// Question converts the record to a battle question.
func (c Custom) Question() Question {
	return Question{Text: c.Text, CorrectAnswer: c.CorrectAnswer, Hint: c.Hint}
}

// Eligible filters customs to those matching the subject at or below the
// player's level.
func Eligible(customs []Custom, subject Subject, level int) []Custom {
	out := make([]Custom, 0, len(customs))
	for _, c := range customs {
		if c.Subject == subject && c.Level <= level {
			out = append(out, c)
		}
	}
	return out
}

// GenerateWith mixes eligible custom questions into the built-in pool:
// each eligible custom competes against three generator slots, so a
// handful of teacher questions surfaces often without crowding out the
// generated material.
func GenerateWith(src random.Source, subject Subject, level int, customs []Custom) Question {
	eligible := Eligible(customs, subject, level)
	if n := len(eligible); n > 0 && src.Intn(n+3) < n {
		return random.Pick(src, eligible).Question()
	}
	return Generate(src, subject, level)
}
