// Package quest implements the quest chain state machine: NPC quest chains,
// status transitions, and kill-goal progress tracking.
package quest

import "fmt"

// Zone is a thematic gameplay region gating enemies and quest eligibility.
type Zone string

const (
	ZoneMath     Zone = "math"
	ZoneRussian  Zone = "russian"
	ZoneGeometry Zone = "geometry"
)

// IsValid reports whether z is a known zone.
func (z Zone) IsValid() bool {
	switch z {
	case ZoneMath, ZoneRussian, ZoneGeometry:
		return true
	default:
		return false
	}
}

// Status is the quest lifecycle state. Transitions only move forward:
// locked → available → active → ready → completed.
type Status string

const (
	StatusLocked    Status = "locked"
	StatusAvailable Status = "available"
	StatusActive    Status = "active"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

// GoalType describes what a quest counts.
type GoalType string

// GoalKill counts battle victories in the goal zone.
const GoalKill GoalType = "kill"

// Goal is a quest objective with running progress.
type Goal struct {
	Type    GoalType `yaml:"type" json:"type"`
	Zone    Zone     `yaml:"zone" json:"zone"`
	Target  int      `yaml:"target" json:"target"`
	Current int      `yaml:"current" json:"current"`
}

// RewardItem is the optional item granted on completion.
type RewardItem struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Emoji       string `yaml:"emoji" json:"emoji"`
	Description string `yaml:"description" json:"description"`
	Type        string `yaml:"type" json:"type"`
}

// Reward is granted exactly once, on the ready → completed transition.
type Reward struct {
	XP   int         `yaml:"xp" json:"xp"`
	Gold int         `yaml:"gold" json:"gold"`
	Item *RewardItem `yaml:"item,omitempty" json:"item,omitempty"`
}

// Quest is a single quest in an NPC's chain. Chain ordering is explicit:
// Prerequisite names the quest that must complete before this one can
// become available (empty for chain heads).
type Quest struct {
	ID           string `yaml:"id" json:"id"`
	NPCID        string `yaml:"npc" json:"npcId"`
	Title        string `yaml:"title" json:"title"`
	Description  string `yaml:"description" json:"description"`
	Prerequisite string `yaml:"prerequisite,omitempty" json:"prerequisite,omitempty"`
	Goal         Goal   `yaml:"goal" json:"goal"`
	Reward       Reward `yaml:"reward" json:"reward"`
	Status       Status `yaml:"status" json:"status"`
}

// Validate checks a quest definition's invariants.
func (q Quest) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("quest: id must not be empty")
	}
	if q.NPCID == "" {
		return fmt.Errorf("quest %q: npc must not be empty", q.ID)
	}
	if !q.Goal.Zone.IsValid() {
		return fmt.Errorf("quest %q: unknown zone %q", q.ID, q.Goal.Zone)
	}
	if q.Goal.Target < 1 {
		return fmt.Errorf("quest %q: goal target must be >= 1, got %d", q.ID, q.Goal.Target)
	}
	return nil
}

// ByID returns a pointer into quests for the given id, or nil.
func ByID(quests []Quest, id string) *Quest {
	for i := range quests {
		if quests[i].ID == id {
			return &quests[i]
		}
	}
	return nil
}

// Accept transitions the quest to active. Only the available → active
// transition is permitted; anything else is a silent no-op.
//
// Postcondition: returns true iff the transition happened.
func Accept(quests []Quest, id string) bool {
	q := ByID(quests, id)
	if q == nil || q.Status != StatusAvailable {
		return false
	}
	q.Status = StatusActive
	return true
}

// AdvanceKills credits one battle victory in the given zone to every active
// kill quest matching that zone. Quests reaching their target flip to ready
// (the reward still requires an explicit completion), and followers whose
// prerequisite is now completed or ready become available.
//
// Postcondition: returns true iff any quest changed.
func AdvanceKills(quests []Quest, zone Zone) bool {
	changed := false
	for i := range quests {
		q := &quests[i]
		if q.Status != StatusActive || q.Goal.Type != GoalKill || q.Goal.Zone != zone {
			continue
		}
		q.Goal.Current++
		if q.Goal.Current >= q.Goal.Target {
			q.Status = StatusReady
		}
		changed = true
	}
	if unlockFollowers(quests, true) {
		changed = true
	}
	return changed
}

// MarkCompleted transitions the quest from ready to completed and unlocks
// the follower whose prerequisite it is. Reward application is the
// caller's responsibility and must happen exactly once per quest.
//
// Postcondition: returns true iff the quest was ready and is now completed.
func MarkCompleted(quests []Quest, id string) bool {
	q := ByID(quests, id)
	if q == nil || q.Status != StatusReady {
		return false
	}
	q.Status = StatusCompleted
	unlockFollowers(quests, false)
	return true
}

// unlockFollowers moves locked quests to available when their prerequisite
// is completed (or ready, when allowReady is set — the battle path unlocks
// one quest ahead so the chain never stalls mid-session).
func unlockFollowers(quests []Quest, allowReady bool) bool {
	changed := false
	for i := range quests {
		q := &quests[i]
		if q.Status != StatusLocked || q.Prerequisite == "" {
			continue
		}
		prev := ByID(quests, q.Prerequisite)
		if prev == nil {
			continue
		}
		if prev.Status == StatusCompleted || (allowReady && prev.Status == StatusReady) {
			q.Status = StatusAvailable
			changed = true
		}
	}
	return changed
}

// Clone returns a deep copy of the quest slice.
func Clone(quests []Quest) []Quest {
	out := make([]Quest, len(quests))
	copy(out, quests)
	for i := range out {
		if out[i].Reward.Item != nil {
			it := *out[i].Reward.Item
			out[i].Reward.Item = &it
		}
	}
	return out
}
