package item

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry resolves item ids to definitions.
type Registry struct {
	defs map[string]Def
}

// NewRegistry builds a registry from the given definitions.
//
// Precondition: every def must pass Validate; ids must be unique.
// Postcondition: Returns a registry resolving every given id, or an error.
func NewRegistry(defs []Def) (*Registry, error) {
	m := make(map[string]Def, len(defs))
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := m[d.ID]; dup {
			return nil, fmt.Errorf("item: duplicate id %q", d.ID)
		}
		m[d.ID] = d
	}
	return &Registry{defs: m}, nil
}

// Lookup returns the definition for id.
func (r *Registry) Lookup(id string) (Def, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// All returns every definition sorted by id.
func (r *Registry) All() []Def {
	out := make([]Def, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DefaultDefs returns the built-in item catalog.
func DefaultDefs() []Def {
	return []Def{
		{ID: "health_potion", Name: "Зелье здоровья", Emoji: "🧪", Description: "Восстанавливает 30 HP", Type: TypePotion, Heal: 30},
		{ID: "big_potion", Name: "Большое зелье", Emoji: "🫧", Description: "Восстанавливает 60 HP — мощнее обычного!", Type: TypePotion, Heal: 60},
		{ID: "health_potion_big", Name: "Большое зелье", Emoji: "🧪", Description: "Восстанавливает 60 HP", Type: TypePotion, Heal: 60},
		{ID: "math_scroll", Name: "Свиток Счёта", Emoji: "📜", Description: "Помощник в математике", Type: TypeScroll},
		{ID: "rus_scroll", Name: "Свиток Слова", Emoji: "📖", Description: "Помощник в правописании", Type: TypeScroll},
		{ID: "amulet", Name: "Амулет удачи", Emoji: "🔮", Description: "+5% к XP навсегда", Type: TypeArtifact},
		{ID: "shield_rune", Name: "Руна защиты", Emoji: "🛡️", Description: "Щит удачи в бою", Type: TypeArtifact},
		{ID: "geo_crystal", Name: "Кристалл Форм", Emoji: "💎", Description: "Символ мастерства геометрии", Type: TypeArtifact},
	}
}

// DefaultRegistry returns a registry over DefaultDefs.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultDefs())
	if err != nil {
		panic("item: default catalog invalid: " + err.Error())
	}
	return r
}

// LoadDefs reads all .yaml files in dir, each holding a list of item
// definitions, and returns a registry over them.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns a validated registry or a non-nil error.
func LoadDefs(dir string) (*Registry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", dir, err)
	}
	var defs []Def
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var batch []Def
		if err := yaml.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parsing item file %s: %w", path, err)
		}
		defs = append(defs, batch...)
	}
	return NewRegistry(defs)
}
