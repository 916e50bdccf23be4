package quest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolchanov/magequest/internal/game/quest"
)

func TestInitialQuests_ChainsWellFormed(t *testing.T) {
	quests := quest.InitialQuests()
	require.Len(t, quests, 9)

	byID := make(map[string]quest.Quest, len(quests))
	for _, q := range quests {
		require.NoError(t, q.Validate())
		byID[q.ID] = q
	}
	for _, q := range quests {
		if q.Prerequisite == "" {
			assert.Equal(t, quest.StatusAvailable, q.Status, "chain head %s", q.ID)
			continue
		}
		prev, ok := byID[q.Prerequisite]
		require.True(t, ok, "quest %s prerequisite %s missing", q.ID, q.Prerequisite)
		assert.Equal(t, q.NPCID, prev.NPCID, "chains never cross NPCs")
		assert.Equal(t, quest.StatusLocked, q.Status)
	}
}

func TestAccept_OnlyFromAvailable(t *testing.T) {
	quests := quest.InitialQuests()

	assert.True(t, quest.Accept(quests, "q_math_1"))
	assert.Equal(t, quest.StatusActive, quest.ByID(quests, "q_math_1").Status)

	assert.False(t, quest.Accept(quests, "q_math_1"), "already active")
	assert.False(t, quest.Accept(quests, "q_math_2"), "still locked")
	assert.False(t, quest.Accept(quests, "no_such_quest"))
}

func TestAdvanceKills_ProgressAndReady(t *testing.T) {
	quests := quest.InitialQuests()
	require.True(t, quest.Accept(quests, "q_math_1"))

	assert.True(t, quest.AdvanceKills(quests, quest.ZoneMath))

	q1 := quest.ByID(quests, "q_math_1")
	assert.Equal(t, quest.StatusReady, q1.Status)
	assert.Equal(t, 1, q1.Goal.Current)

	// Reaching ready unlocks the follower on the battle path.
	assert.Equal(t, quest.StatusAvailable, quest.ByID(quests, "q_math_2").Status)
	// Other chains untouched.
	assert.Equal(t, quest.StatusLocked, quest.ByID(quests, "q_rus_2").Status)
}

func TestAdvanceKills_IgnoresOtherZonesAndInactive(t *testing.T) {
	quests := quest.InitialQuests()
	require.True(t, quest.Accept(quests, "q_math_1"))

	assert.False(t, quest.AdvanceKills(quests, quest.ZoneRussian))
	assert.Equal(t, 0, quest.ByID(quests, "q_math_1").Goal.Current)
	assert.Equal(t, 0, quest.ByID(quests, "q_rus_1").Goal.Current, "available but not active")
}

func TestAdvanceKills_ProgressCapsAtReady(t *testing.T) {
	quests := quest.InitialQuests()
	require.True(t, quest.Accept(quests, "q_math_1"))

	require.True(t, quest.AdvanceKills(quests, quest.ZoneMath))
	assert.False(t, quest.AdvanceKills(quests, quest.ZoneMath), "ready quests accrue nothing")
	assert.Equal(t, 1, quest.ByID(quests, "q_math_1").Goal.Current)
}

func TestMarkCompleted_RequiresReady(t *testing.T) {
	quests := quest.InitialQuests()

	assert.False(t, quest.MarkCompleted(quests, "q_math_1"), "available, not ready")

	require.True(t, quest.Accept(quests, "q_math_1"))
	require.True(t, quest.AdvanceKills(quests, quest.ZoneMath))

	assert.True(t, quest.MarkCompleted(quests, "q_math_1"))
	assert.Equal(t, quest.StatusCompleted, quest.ByID(quests, "q_math_1").Status)
	assert.False(t, quest.MarkCompleted(quests, "q_math_1"), "completion is terminal")
}

func TestChain_FullProgression(t *testing.T) {
	quests := quest.InitialQuests()

	require.True(t, quest.Accept(quests, "q_rus_1"))
	require.True(t, quest.AdvanceKills(quests, quest.ZoneRussian))
	require.True(t, quest.MarkCompleted(quests, "q_rus_1"))

	require.True(t, quest.Accept(quests, "q_rus_2"))
	for i := 0; i < 3; i++ {
		require.True(t, quest.AdvanceKills(quests, quest.ZoneRussian))
	}
	q2 := quest.ByID(quests, "q_rus_2")
	assert.Equal(t, quest.StatusReady, q2.Status)
	assert.Equal(t, 3, q2.Goal.Current)
	assert.Equal(t, quest.StatusAvailable, quest.ByID(quests, "q_rus_3").Status)

	require.True(t, quest.MarkCompleted(quests, "q_rus_2"))
	require.True(t, quest.Accept(quests, "q_rus_3"))
	for i := 0; i < 5; i++ {
		quest.AdvanceKills(quests, quest.ZoneRussian)
	}
	require.True(t, quest.MarkCompleted(quests, "q_rus_3"))
	assert.NotNil(t, quest.ByID(quests, "q_rus_3").Reward.Item)
}

func TestClone_Independent(t *testing.T) {
	quests := quest.InitialQuests()
	clone := quest.Clone(quests)

	quest.Accept(clone, "q_math_1")
	quest.AdvanceKills(clone, quest.ZoneMath)

	assert.Equal(t, quest.StatusAvailable, quest.ByID(quests, "q_math_1").Status)
	assert.Equal(t, 0, quest.ByID(quests, "q_math_1").Goal.Current)

	orig := quest.ByID(quests, "q_math_3")
	cl := quest.ByID(clone, "q_math_3")
	require.NotNil(t, cl.Reward.Item)
	assert.NotSame(t, orig.Reward.Item, cl.Reward.Item)
}

func TestValidate_Rejections(t *testing.T) {
	base := quest.Quest{
		ID: "q", NPCID: "npc",
		Goal: quest.Goal{Type: quest.GoalKill, Zone: quest.ZoneMath, Target: 1},
	}

	q := base
	q.ID = ""
	assert.Error(t, q.Validate())

	q = base
	q.NPCID = ""
	assert.Error(t, q.Validate())

	q = base
	q.Goal.Zone = "swamp"
	assert.Error(t, q.Validate())

	q = base
	q.Goal.Target = 0
	assert.Error(t, q.Validate())

	assert.NoError(t, base.Validate())
}
