package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScenario_Skirmish(t *testing.T) {
	sc, err := LoadScenario(filepath.Join("testdata", "skirmish.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sc.Name != "skirmish" || sc.Grid.Width != 10 || sc.Grid.Height != 10 {
		t.Fatalf("unexpected scenario: %+v", sc)
	}
	if sc.EnemyPhaseDelay != 1.0 {
		t.Fatalf("enemy_phase_delay = %v, want 1.0", sc.EnemyPhaseDelay)
	}
	if len(sc.Units) != 4 {
		t.Fatalf("expected 4 units, got %d", len(sc.Units))
	}

	s := New(sc.Options()...)
	if got := s.UnitByLabel("E1"); got == nil || got.Pos != Pos(7, 7) {
		t.Fatalf("E1 should spawn at (7,7), got %v", got)
	}
}

func TestLoadScenario_TerrainRows(t *testing.T) {
	sc, err := LoadScenario(filepath.Join("testdata", "river.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	s := New(sc.Options()...)
	tile, ok := s.Grid().TileAt(Pos(2, 1))
	if !ok || tile.Kind != TerrainWater || tile.Walkable {
		t.Fatalf("(2,1) should be impassable water, got %+v", tile)
	}
	tile, _ = s.Grid().TileAt(Pos(0, 0))
	if tile.Kind != TerrainGrass || !tile.Walkable {
		t.Fatalf("(0,0) should be grass, got %+v", tile)
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	if _, err := LoadScenario(filepath.Join("testdata", "no-such.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestScenario_ValidationRejections(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero grid", `
grid: {width: 0, height: 5, tile_size: 64}
units: []
`},
		{"negative delay", `
grid: {width: 5, height: 5, tile_size: 64}
enemy_phase_delay: -1
units: []
`},
		{"unknown unit kind", `
grid: {width: 5, height: 5, tile_size: 64}
units:
  - {kind: wizard, x: 1, y: 1}
`},
		{"unit out of bounds", `
grid: {width: 5, height: 5, tile_size: 64}
units:
  - {kind: player, x: 5, y: 0}
`},
		{"units share a tile", `
grid: {width: 5, height: 5, tile_size: 64}
units:
  - {kind: player, x: 1, y: 1}
  - {kind: enemy, x: 1, y: 1}
`},
		{"terrain row count mismatch", `
grid: {width: 2, height: 2, tile_size: 64}
terrain: ["gg"]
units: []
`},
		{"terrain row width mismatch", `
grid: {width: 3, height: 1, tile_size: 64}
terrain: ["gg"]
units: []
`},
		{"unknown terrain rune", `
grid: {width: 2, height: 1, tile_size: 64}
terrain: ["gx"]
units: []
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadScenario(writeScenario(t, tc.body)); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestDefaultScenario_IsValid(t *testing.T) {
	if err := DefaultScenario().Validate(); err != nil {
		t.Fatalf("default scenario should validate: %v", err)
	}
}
