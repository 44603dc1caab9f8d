package game

import "fmt"

// GridPosition is an integer cell coordinate on the battle grid.
// It is distinct from world (pixel) coordinates, which are float64.
type GridPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos is shorthand for constructing a GridPosition.
func Pos(x, y int) GridPosition {
	return GridPosition{X: x, Y: y}
}

func (p GridPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Adjacent returns the four 4-connected neighbours of p, no diagonals.
// Neighbours may be out of bounds; callers check against the GridMap.
func (p GridPosition) Adjacent() [4]GridPosition {
	return [4]GridPosition{
		{p.X + 1, p.Y},
		{p.X - 1, p.Y},
		{p.X, p.Y + 1},
		{p.X, p.Y - 1},
	}
}

// DistanceTo returns the Manhattan distance |dx| + |dy| to other.
func (p GridPosition) DistanceTo(other GridPosition) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// TerrainKind identifies the base surface of a tile.
type TerrainKind uint8

const (
	TerrainGrass    TerrainKind = iota // open walkable ground
	TerrainWater                       // impassable
	TerrainMountain                    // impassable
	terrainKindCount                   // sentinel
)

func (k TerrainKind) String() string {
	switch k {
	case TerrainGrass:
		return "grass"
	case TerrainWater:
		return "water"
	case TerrainMountain:
		return "mountain"
	default:
		return "unknown"
	}
}

// terrainWalkable returns whether units may stand on the terrain kind.
func terrainWalkable(k TerrainKind) bool {
	return k == TerrainGrass
}

// Tile represents one cell of the battle grid.
type Tile struct {
	Walkable bool
	Kind     TerrainKind
}

// GrassTile returns the default walkable tile.
func GrassTile() Tile {
	return Tile{Walkable: true, Kind: TerrainGrass}
}

// WaterTile returns an impassable water tile.
func WaterTile() Tile {
	return Tile{Walkable: false, Kind: TerrainWater}
}

// MountainTile returns an impassable mountain tile.
func MountainTile() Tile {
	return Tile{Walkable: false, Kind: TerrainMountain}
}

// GridMap is the authoritative grid geometry: dimensions, tile size for
// world-space conversion, and the per-cell tile registry. Movement logic
// operates on unit positions directly; the registry exists for lookup and
// presentation.
type GridMap struct {
	Width    int
	Height   int
	TileSize float64
	tiles    []Tile // row-major: index = y*Width + x
}

// NewGridMap creates a grid with every tile defaulting to grass.
func NewGridMap(width, height int, tileSize float64) *GridMap {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = GrassTile()
	}
	return &GridMap{Width: width, Height: height, TileSize: tileSize, tiles: tiles}
}

// InBounds returns true if pos lies within the grid.
func (gm *GridMap) InBounds(pos GridPosition) bool {
	return pos.X >= 0 && pos.X < gm.Width && pos.Y >= 0 && pos.Y < gm.Height
}

// WorldToGrid converts a world-space point to the grid cell containing it.
// Points outside the grid map to out-of-bounds positions; the conversion
// itself never fails.
func (gm *GridMap) WorldToGrid(wx, wy float64) GridPosition {
	return GridPosition{
		X: floorDiv(wx, gm.TileSize),
		Y: floorDiv(wy, gm.TileSize),
	}
}

// GridToWorld converts a grid position to the world-space centre of its tile.
func (gm *GridMap) GridToWorld(pos GridPosition) (wx, wy float64) {
	wx = float64(pos.X)*gm.TileSize + gm.TileSize/2
	wy = float64(pos.Y)*gm.TileSize + gm.TileSize/2
	return wx, wy
}

// TileAt returns the tile at pos, or the zero Tile and false if out of bounds.
func (gm *GridMap) TileAt(pos GridPosition) (Tile, bool) {
	if !gm.InBounds(pos) {
		return Tile{}, false
	}
	return gm.tiles[pos.Y*gm.Width+pos.X], true
}

// SetTile replaces the tile at pos. Out-of-bounds writes are ignored.
func (gm *GridMap) SetTile(pos GridPosition, t Tile) {
	if !gm.InBounds(pos) {
		return
	}
	gm.tiles[pos.Y*gm.Width+pos.X] = t
}

// SetTerrain sets the terrain kind at pos, deriving walkability from the kind.
func (gm *GridMap) SetTerrain(pos GridPosition, k TerrainKind) {
	gm.SetTile(pos, Tile{Walkable: terrainWalkable(k), Kind: k})
}

// floorDiv returns floor(v / size) as an int. Plain integer conversion
// truncates toward zero, which is wrong for negative world coordinates.
func floorDiv(v, size float64) int {
	q := v / size
	n := int(q)
	if q < 0 && float64(n) != q {
		n--
	}
	return n
}
