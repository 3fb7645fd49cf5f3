package data

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEntityTable(t *testing.T) {
	path := writeTemp(t, "entity_list.yaml", `
entities:
  - template_id: 1001
    name: plains wolf
    kind: creature
    vitality: 120
    skinnable: true
    decay_ticks: 150
    wander_step: 0.4
  - template_id: 2001
    name: ore vein
    kind: world_object
    type_id: 103713
`)
	table, err := LoadEntityTable(path)
	if err != nil {
		t.Fatalf("LoadEntityTable failed: %v", err)
	}
	if table.Count() != 2 {
		t.Fatalf("expected 2 templates, got %d", table.Count())
	}

	wolf := table.Get(1001)
	if wolf == nil {
		t.Fatal("template 1001 missing")
	}
	if wolf.Name != "plains wolf" || wolf.Kind != "creature" {
		t.Errorf("unexpected template: %+v", wolf)
	}
	if wolf.Vitality != 120 || !wolf.Skinnable || wolf.Lootable {
		t.Errorf("unexpected flags: %+v", wolf)
	}
	if wolf.WanderStep != 0.4 {
		t.Errorf("wander_step: got %v", wolf.WanderStep)
	}

	vein := table.Get(2001)
	if vein == nil || vein.TypeID != 103713 {
		t.Errorf("unexpected world object template: %+v", vein)
	}

	if table.Get(9999) != nil {
		t.Error("unknown template should be nil")
	}
}

func TestLoadSpawnList(t *testing.T) {
	path := writeTemp(t, "spawn_list.yaml", `
spawns:
  - template_id: 1001
    x: 10.0
    y: 4.0
    count: 3
    random_radius: 6.0
    respawn_delay: 300
  - template_id: 2001
    x: 2.5
    y: 2.5
`)
	spawns, err := LoadSpawnList(path)
	if err != nil {
		t.Fatalf("LoadSpawnList failed: %v", err)
	}
	if len(spawns) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(spawns))
	}
	if spawns[0].Count != 3 || spawns[0].RespawnDelay != 300 {
		t.Errorf("unexpected first entry: %+v", spawns[0])
	}
	if spawns[1].Count != 0 {
		t.Errorf("count should default to 0 when omitted, got %d", spawns[1].Count)
	}
}

func TestLoadEntityTableErrors(t *testing.T) {
	if _, err := LoadEntityTable("does-not-exist.yaml"); err == nil {
		t.Error("missing file should fail")
	}
	bad := writeTemp(t, "bad.yaml", `entities: [not a map`)
	if _, err := LoadEntityTable(bad); err == nil {
		t.Error("malformed yaml should fail")
	}
}
