// Package daily implements the once-per-day quest board: a fixed set of
// battle objectives regenerated each UTC day, with per-quest rewards and
// a completion bonus claimable once.
package daily

import (
	"time"

	"github.com/dmolchanov/magequest/internal/game/quest"
)

// Entry is one daily objective.
type Entry struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Emoji      string     `json:"emoji"`
	Target     int        `json:"target"`
	Current    int        `json:"current"`
	Zone       quest.Zone `json:"zone"`
	XPReward   int        `json:"xpReward"`
	GoldReward int        `json:"goldReward"`
	Completed  bool       `json:"completed"`
}

// Data is a day's quest board.
type Data struct {
	Date         string  `json:"date"`
	Quests       []Entry `json:"quests"`
	BonusClaimed bool    `json:"bonusClaimed"`
}

// All-complete bonus, claimed at most once per day.
const (
	BonusXP     = 150
	BonusGold   = 80
	BonusItemID = "health_potion_big"
)

// DateOf formats the UTC day key for the given instant.
func DateOf(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

// NewForDay builds the fixed daily board for the given instant's UTC day.
func NewForDay(now time.Time) *Data {
	return &Data{
		Date: DateOf(now),
		Quests: []Entry{
			{ID: "dq_math", Title: "Победи 3 монстра в Зоне Математики", Emoji: "⚔️", Target: 3, Zone: quest.ZoneMath, XPReward: 60, GoldReward: 30},
			{ID: "dq_russian", Title: "Победи 2 монстра в Зоне Русского языка", Emoji: "📖", Target: 2, Zone: quest.ZoneRussian, XPReward: 50, GoldReward: 25},
			{ID: "dq_any", Title: "Победи 1 монстра в любой зоне", Emoji: "🌟", Target: 1, Zone: quest.ZoneMath, XPReward: 40, GoldReward: 20},
		},
	}
}

// Stale reports whether the board belongs to an earlier UTC day than now.
// A stale board is treated as absent and regenerated.
func (d *Data) Stale(now time.Time) bool {
	return d == nil || d.Date != DateOf(now)
}

// Advance credits one battle victory in the given zone. Each matching
// incomplete objective gains progress; objectives reaching their target
// flip to completed and their reward is returned for the caller to
// apply.
//
// Postcondition: rewards are returned exactly once per objective per day.
func (d *Data) Advance(zone quest.Zone) (xp, gold int) {
	if d == nil {
		return 0, 0
	}
	for i := range d.Quests {
		q := &d.Quests[i]
		if q.Completed || q.Zone != zone {
			continue
		}
		q.Current++
		if q.Current >= q.Target {
			q.Completed = true
			xp += q.XPReward
			gold += q.GoldReward
		}
	}
	return xp, gold
}

// AllCompleted reports whether every objective on the board is done.
func (d *Data) AllCompleted() bool {
	if d == nil || len(d.Quests) == 0 {
		return false
	}
	for _, q := range d.Quests {
		if !q.Completed {
			return false
		}
	}
	return true
}

// ClaimBonus marks the bonus claimed. The bonus requires a full board
// and is granted at most once.
//
// Postcondition: returns true iff the caller should apply the bonus.
func (d *Data) ClaimBonus() bool {
	if d == nil || d.BonusClaimed || !d.AllCompleted() {
		return false
	}
	d.BonusClaimed = true
	return true
}

// Clone returns a deep copy of the board, nil for nil.
func (d *Data) Clone() *Data {
	if d == nil {
		return nil
	}
	out := *d
	out.Quests = make([]Entry, len(d.Quests))
	copy(out.Quests, d.Quests)
	return &out
}
