package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioUnit is one roster entry in a scenario file.
type ScenarioUnit struct {
	Kind string `yaml:"kind"` // "player" or "enemy"
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// ScenarioGrid holds the grid geometry of a scenario file.
type ScenarioGrid struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TileSize float64 `yaml:"tile_size"`
}

// Scenario is a declarative simulation setup: grid geometry, pacing,
// optional terrain, and the initial unit roster. Scenarios are loaded
// once at simulation start; nothing is persisted back.
type Scenario struct {
	Name            string         `yaml:"name"`
	Grid            ScenarioGrid   `yaml:"grid"`
	EnemyPhaseDelay float64        `yaml:"enemy_phase_delay"`
	Terrain         []string       `yaml:"terrain,omitempty"` // rows of g/w/m runes, row index = y
	Units           []ScenarioUnit `yaml:"units"`
}

// DefaultScenario returns the stock setup: 10x10 grass grid, tile size
// 64, two player units and two enemy units.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:            "skirmish",
		Grid:            ScenarioGrid{Width: DefaultGridWidth, Height: DefaultGridHeight, TileSize: DefaultTileSize},
		EnemyPhaseDelay: DefaultEnemyPhaseDelay,
		Units: []ScenarioUnit{
			{Kind: "player", X: 2, Y: 2},
			{Kind: "player", X: 3, Y: 2},
			{Kind: "enemy", X: 6, Y: 7},
			{Kind: "enemy", X: 7, Y: 7},
		},
	}
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// terrainKindForRune maps a scenario terrain rune to a TerrainKind.
func terrainKindForRune(r rune) (TerrainKind, bool) {
	switch r {
	case 'g':
		return TerrainGrass, true
	case 'w':
		return TerrainWater, true
	case 'm':
		return TerrainMountain, true
	default:
		return TerrainGrass, false
	}
}

// Validate checks a scenario for internal consistency.
func (sc *Scenario) Validate() error {
	if sc.Grid.Width <= 0 || sc.Grid.Height <= 0 {
		return fmt.Errorf("grid must be positive, got %dx%d", sc.Grid.Width, sc.Grid.Height)
	}
	if sc.Grid.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %v", sc.Grid.TileSize)
	}
	if sc.EnemyPhaseDelay < 0 {
		return fmt.Errorf("enemy_phase_delay must not be negative, got %v", sc.EnemyPhaseDelay)
	}
	if len(sc.Terrain) > 0 {
		if len(sc.Terrain) != sc.Grid.Height {
			return fmt.Errorf("terrain has %d rows, grid height is %d", len(sc.Terrain), sc.Grid.Height)
		}
		for y, row := range sc.Terrain {
			runes := []rune(row)
			if len(runes) != sc.Grid.Width {
				return fmt.Errorf("terrain row %d has %d cells, grid width is %d", y, len(runes), sc.Grid.Width)
			}
			for x, r := range runes {
				if _, ok := terrainKindForRune(r); !ok {
					return fmt.Errorf("terrain row %d cell %d: unknown kind %q", y, x, r)
				}
			}
		}
	}
	seen := make(map[GridPosition]int, len(sc.Units))
	for i, su := range sc.Units {
		if su.Kind != "player" && su.Kind != "enemy" {
			return fmt.Errorf("unit %d: unknown kind %q", i, su.Kind)
		}
		p := Pos(su.X, su.Y)
		if su.X < 0 || su.X >= sc.Grid.Width || su.Y < 0 || su.Y >= sc.Grid.Height {
			return fmt.Errorf("unit %d at %s is out of bounds", i, p)
		}
		if j, dup := seen[p]; dup {
			return fmt.Errorf("units %d and %d share tile %s", j, i, p)
		}
		seen[p] = i
	}
	return nil
}

// Options expands the scenario into Sim construction options.
func (sc *Scenario) Options() []SimOption {
	opts := []SimOption{
		WithGridSize(sc.Grid.Width, sc.Grid.Height),
		WithTileSize(sc.Grid.TileSize),
	}
	if sc.EnemyPhaseDelay > 0 {
		opts = append(opts, WithEnemyPhaseDelay(sc.EnemyPhaseDelay))
	}
	for y, row := range sc.Terrain {
		for x, r := range []rune(row) {
			if k, ok := terrainKindForRune(r); ok && k != TerrainGrass {
				opts = append(opts, WithTerrain(x, y, k))
			}
		}
	}
	for _, su := range sc.Units {
		if su.Kind == "player" {
			opts = append(opts, WithPlayerUnit(su.X, su.Y))
		} else {
			opts = append(opts, WithEnemyUnit(su.X, su.Y))
		}
	}
	return opts
}
