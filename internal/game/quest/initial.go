package quest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// InitialQuests returns the three NPC quest chains in their starting state.
// Each chain head is available; followers are locked behind an explicit
// prerequisite.
func InitialQuests() []Quest {
	return []Quest{
		{
			ID: "q_math_1", NPCID: "npc_mathius",
			Title:       "Первый бой",
			Description: "Профессор Матиус просит тебя победить хотя бы одного монстра в зоне арифмантии.",
			Goal:        Goal{Type: GoalKill, Zone: ZoneMath, Target: 1},
			Reward:      Reward{XP: 50, Gold: 20},
			Status:      StatusAvailable,
		},
		{
			ID: "q_math_2", NPCID: "npc_mathius",
			Title:        "Ученик мага чисел",
			Description:  "Победи 3 гоблина в зоне арифмантии, чтобы доказать свою силу.",
			Prerequisite: "q_math_1",
			Goal:         Goal{Type: GoalKill, Zone: ZoneMath, Target: 3},
			Reward:       Reward{XP: 120, Gold: 50},
			Status:       StatusLocked,
		},
		{
			ID: "q_math_3", NPCID: "npc_mathius",
			Title:        "Мастер сложения",
			Description:  "Победи 5 слизней. Докажи, что ты настоящий маг арифмантии!",
			Prerequisite: "q_math_2",
			Goal:         Goal{Type: GoalKill, Zone: ZoneMath, Target: 5},
			Reward: Reward{XP: 200, Gold: 80, Item: &RewardItem{
				ID: "math_scroll", Name: "Свиток Счёта", Emoji: "📜",
				Description: "Помощник в математике", Type: "scroll",
			}},
			Status: StatusLocked,
		},
		{
			ID: "q_rus_1", NPCID: "npc_wordkeeper",
			Title:       "Слово — не воробей",
			Description: "Хранитель Слова просит победить одного врага в зоне словесной магии.",
			Goal:        Goal{Type: GoalKill, Zone: ZoneRussian, Target: 1},
			Reward:      Reward{XP: 50, Gold: 20},
			Status:      StatusAvailable,
		},
		{
			ID: "q_rus_2", NPCID: "npc_wordkeeper",
			Title:        "Грамотный воин",
			Description:  "Победи 3 тролля в зоне словесной магии, чтобы стать истинным мастером слова.",
			Prerequisite: "q_rus_1",
			Goal:         Goal{Type: GoalKill, Zone: ZoneRussian, Target: 3},
			Reward:       Reward{XP: 120, Gold: 50},
			Status:       StatusLocked,
		},
		{
			ID: "q_rus_3", NPCID: "npc_wordkeeper",
			Title:        "Страж правописания",
			Description:  "Одолей 5 ведьм в зоне словесной магии. Знание — твоё главное оружие!",
			Prerequisite: "q_rus_2",
			Goal:         Goal{Type: GoalKill, Zone: ZoneRussian, Target: 5},
			Reward: Reward{XP: 200, Gold: 80, Item: &RewardItem{
				ID: "rus_scroll", Name: "Свиток Слова", Emoji: "📖",
				Description: "Помощник в правописании", Type: "scroll",
			}},
			Status: StatusLocked,
		},
		{
			ID: "q_geo_1", NPCID: "npc_geomancer",
			Title:       "Первый шаг в мир форм",
			Description: "Архимаг Геометр просит тебя победить хотя бы одного дракона или феникса в Академии Геометрии.",
			Goal:        Goal{Type: GoalKill, Zone: ZoneGeometry, Target: 1},
			Reward:      Reward{XP: 80, Gold: 40},
			Status:      StatusAvailable,
		},
		{
			ID: "q_geo_2", NPCID: "npc_geomancer",
			Title:        "Охотник на драконов",
			Description:  "Победи 3 существ в Академии Геометрии. Покажи, что ты достоин звания Мага Форм!",
			Prerequisite: "q_geo_1",
			Goal:         Goal{Type: GoalKill, Zone: ZoneGeometry, Target: 3},
			Reward:       Reward{XP: 180, Gold: 80},
			Status:       StatusLocked,
		},
		{
			ID: "q_geo_3", NPCID: "npc_geomancer",
			Title:        "Постижение Пространства",
			Description:  "Одолей 5 могучих существ Академии Геометрии и обрети артефакт высшей мудрости!",
			Prerequisite: "q_geo_2",
			Goal:         Goal{Type: GoalKill, Zone: ZoneGeometry, Target: 5},
			Reward: Reward{XP: 300, Gold: 120, Item: &RewardItem{
				ID: "geo_crystal", Name: "Кристалл Форм", Emoji: "💎",
				Description: "Символ мастерства геометрии", Type: "artifact",
			}},
			Status: StatusLocked,
		},
	}
}

// LoadQuests reads quest chain definitions from dir/quests.yaml.
//
// Precondition: dir contains a quests.yaml with a top-level quests list.
// Postcondition: every returned quest passed Validate and prerequisites
// resolve within the file.
func LoadQuests(dir string) ([]Quest, error) {
	path := filepath.Join(dir, "quests.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quest: read %s: %w", path, err)
	}
	var file struct {
		Quests []Quest `yaml:"quests"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("quest: parse %s: %w", path, err)
	}
	seen := make(map[string]bool, len(file.Quests))
	for _, q := range file.Quests {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("quest: %s: %w", path, err)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("quest: %s: duplicate quest id %q", path, q.ID)
		}
		seen[q.ID] = true
	}
	for _, q := range file.Quests {
		if q.Prerequisite != "" && !seen[q.Prerequisite] {
			return nil, fmt.Errorf("quest: %s: quest %q has unknown prerequisite %q", path, q.ID, q.Prerequisite)
		}
	}
	return file.Quests, nil
}
