package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EntityTemplate holds static data for an entity type loaded from YAML.
type EntityTemplate struct {
	TemplateID int32   `yaml:"template_id"`
	Name       string  `yaml:"name"`
	Kind       string  `yaml:"kind"` // creature, world_object, item, container, effect
	Vitality   int32   `yaml:"vitality"`
	Lootable   bool    `yaml:"lootable"`
	Skinnable  bool    `yaml:"skinnable"`
	TypeID     int32   `yaml:"type_id"` // world objects only
	DecayTicks int     `yaml:"decay_ticks"`
	WanderStep float64 `yaml:"wander_step"` // max per-tick walk distance, 0 = stationary
}

// SpawnEntry defines where and how many entities to spawn.
type SpawnEntry struct {
	TemplateID   int32   `yaml:"template_id"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Z            float64 `yaml:"z"`
	Count        int     `yaml:"count"`
	RandomRadius float64 `yaml:"random_radius"`
	RespawnDelay int     `yaml:"respawn_delay"` // ticks
}

type entityListFile struct {
	Entities []EntityTemplate `yaml:"entities"`
}

type spawnListFile struct {
	Spawns []SpawnEntry `yaml:"spawns"`
}

// EntityTable holds all entity templates indexed by TemplateID.
type EntityTable struct {
	templates map[int32]*EntityTemplate
}

// NewEntityTable builds a table from a template slice.
func NewEntityTable(templates []EntityTemplate) *EntityTable {
	t := &EntityTable{templates: make(map[int32]*EntityTemplate, len(templates))}
	for i := range templates {
		tmpl := &templates[i]
		t.templates[tmpl.TemplateID] = tmpl
	}
	return t
}

// LoadEntityTable loads entity templates from a YAML file.
func LoadEntityTable(path string) (*EntityTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entity_list: %w", err)
	}
	var f entityListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse entity_list: %w", err)
	}
	return NewEntityTable(f.Entities), nil
}

// Get returns a template by ID, or nil if not found.
func (t *EntityTable) Get(templateID int32) *EntityTemplate {
	return t.templates[templateID]
}

// Count returns the number of loaded templates.
func (t *EntityTable) Count() int {
	return len(t.templates)
}

// LoadSpawnList loads the spawn list from a YAML file.
func LoadSpawnList(path string) ([]SpawnEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawn_list: %w", err)
	}
	var f spawnListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse spawn_list: %w", err)
	}
	return f.Spawns, nil
}
