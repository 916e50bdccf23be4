// Package progression holds the arithmetic core: XP thresholds, level-up
// evaluation, hit-point scaling, and the zone/skill unlock gates.
package progression

// XPTable is the fixed ascending threshold table indexed by level: a player
// at level L needs XPTable[L] total XP to advance. The final sentinel entry
// effectively caps progression.
var XPTable = []int{0, 100, 250, 450, 700, 1000, 1400, 1900, 2500, 3200, 999999}

// Zone unlock thresholds. Once crossed the unlock is permanent.
const (
	RusZoneLevel = 3
	GeoZoneLevel = 5
)

// HPPerLevel is the per-level hit-point gain on top of the class base.
const HPPerLevel = 20

// XPToNext returns the total-XP threshold for advancing past the given level.
//
// Precondition: level >= 1.
// Postcondition: Return value is strictly increasing in level up to the
// table cap.
func XPToNext(level int) int {
	if level < 0 {
		level = 0
	}
	if level >= len(XPTable) {
		level = len(XPTable) - 1
	}
	return XPTable[level]
}

// MaxHP returns the maximum hit points for a class base at the given level.
//
// Postcondition: MaxHP(base, level) == base + 20*(level-1) for level >= 1.
func MaxHP(baseHP, level int) int {
	if level < 1 {
		level = 1
	}
	return baseHP + HPPerLevel*(level-1)
}

// LevelUp is the outcome of applying gained XP to a player's total.
type LevelUp struct {
	XP        int  // new total XP
	Level     int  // new level
	LeveledUp bool // whether exactly one level was gained
}

// ApplyXP adds gained XP to the running total and evaluates a single-step
// level-up: even when the new total overshoots two thresholds, only one
// level is gained per event. The next XP-granting event picks up the rest.
//
// Precondition: level >= 1, gained >= 0.
// Postcondition: result.Level is level or level+1; result.XP == xp + gained.
func ApplyXP(level, xp, gained int) LevelUp {
	newXP := xp + gained
	if newXP >= XPToNext(level) {
		return LevelUp{XP: newXP, Level: level + 1, LeveledUp: true}
	}
	return LevelUp{XP: newXP, Level: level, LeveledUp: false}
}

// ZoneUnlocks reports which zones a player of the given level has reached.
// Callers must OR the result into existing flags: unlocks are monotonic and
// never revert.
func ZoneUnlocks(level int) (rus, geo bool) {
	return level >= RusZoneLevel, level >= GeoZoneLevel
}

// SkillUnlocked reports whether a skill with the given unlock level is
// available at the given player level.
func SkillUnlocked(unlockLevel, level int) bool {
	return unlockLevel <= level
}
