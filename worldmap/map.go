// Package worldmap holds the static grid map of the station: tiles, wall
// kinds, and the world/grid coordinate transforms everything else relies
// on. The grid plane is (x, z); cell (0,0) covers world [0,1)x[0,1).
package worldmap

import "fmt"

// Kind identifies the wall surface at a tile. Zero means walkable floor.
type Kind uint8

const (
	KindEmpty   Kind = 0
	KindPanel   Kind = 1 // tech panel sections
	KindHull    Kind = 2 // reinforced hull plating
	KindControl Kind = 3 // control consoles
	KindConduit Kind = 4 // energy conduit housings
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPanel:
		return "panel"
	case KindHull:
		return "hull"
	case KindControl:
		return "control"
	case KindConduit:
		return "conduit"
	default:
		return "panel"
	}
}

// Cell is a grid coordinate. Signed so out-of-bounds probes are
// representable.
type Cell struct {
	X, Y int
}

// Map is a fixed grid of tiles with a world-space extent. Tiles are
// indexed [row][col], row = z, col = x.
type Map struct {
	Width  int
	Height int
	Tiles  [][]uint8

	MinX, MinZ float32
	MaxX, MaxZ float32
}

// New creates an all-floor map with one world unit per tile.
func New(width, height int) *Map {
	tiles := make([][]uint8, height)
	for y := range tiles {
		tiles[y] = make([]uint8, width)
	}
	return &Map{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		MaxX:   float32(width),
		MaxZ:   float32(height),
	}
}

// NewStation returns the default 10x10 station deck: hull and panel outer
// walls with control and conduit clusters inside.
func NewStation() *Map {
	m := New(10, 10)
	m.Tiles = [][]uint8{
		{1, 1, 1, 1, 2, 2, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 2},
		{1, 0, 3, 3, 0, 0, 4, 4, 0, 2},
		{1, 0, 3, 0, 0, 0, 0, 4, 0, 2},
		{2, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{2, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 4, 0, 0, 0, 0, 3, 0, 2},
		{1, 0, 4, 4, 0, 0, 3, 3, 0, 2},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 2},
		{1, 1, 1, 2, 2, 2, 2, 1, 1, 1},
	}
	return m
}

// NewBorderedRoom returns an empty room enclosed by hull walls.
func NewBorderedRoom(width, height int) *Map {
	m := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				m.Tiles[y][x] = uint8(KindHull)
			}
		}
	}
	return m
}

// Parse builds a map from an ASCII layout. '.' and ' ' are floor, '#' is
// hull, and '1'-'4' select a wall kind directly. Rows must be non-empty
// and equal length.
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse map: no rows")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("parse map: empty row 0")
	}

	m := New(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("parse map: row %d has %d columns, want %d", y, len(row), width)
		}
		for x, ch := range row {
			switch ch {
			case '.', ' ':
				m.Tiles[y][x] = uint8(KindEmpty)
			case '#':
				m.Tiles[y][x] = uint8(KindHull)
			case '1', '2', '3', '4':
				m.Tiles[y][x] = uint8(ch - '0')
			default:
				return nil, fmt.Errorf("parse map: bad tile %q at %d,%d", ch, x, y)
			}
		}
	}
	return m, nil
}

// WorldToGrid maps a world position to the cell containing it, flooring
// so positions inside a cell snap to that cell even when negative.
func (m *Map) WorldToGrid(worldX, worldZ float32) Cell {
	gx := floorDiv(worldX-m.MinX, (m.MaxX-m.MinX)/float32(m.Width))
	gz := floorDiv(worldZ-m.MinZ, (m.MaxZ-m.MinZ)/float32(m.Height))
	return Cell{X: gx, Y: gz}
}

// GridToWorld returns the world-space center of a cell.
func (m *Map) GridToWorld(c Cell) (worldX, worldZ float32) {
	worldX = m.MinX + (float32(c.X)+0.5)*(m.MaxX-m.MinX)/float32(m.Width)
	worldZ = m.MinZ + (float32(c.Y)+0.5)*(m.MaxZ-m.MinZ)/float32(m.Height)
	return worldX, worldZ
}

// IsWall reports whether the cell blocks movement. Everything outside the
// grid counts as wall.
func (m *Map) IsWall(c Cell) bool {
	if c.X < 0 || c.Y < 0 || c.X >= m.Width || c.Y >= m.Height {
		return true
	}
	return m.Tiles[c.Y][c.X] != uint8(KindEmpty)
}

// IsWallWorld reports whether the cell containing a world position blocks
// movement.
func (m *Map) IsWallWorld(worldX, worldZ float32) bool {
	return m.IsWall(m.WorldToGrid(worldX, worldZ))
}

// KindAt returns the wall kind at a cell. Out of bounds reads as panel,
// matching the outer hull treatment.
func (m *Map) KindAt(c Cell) Kind {
	if c.X < 0 || c.Y < 0 || c.X >= m.Width || c.Y >= m.Height {
		return KindPanel
	}
	k := Kind(m.Tiles[c.Y][c.X])
	if k > KindConduit {
		return KindPanel
	}
	return k
}

func floorDiv(a, b float32) int {
	q := a / b
	i := int(q)
	if q < 0 && float32(i) != q {
		i--
	}
	return i
}
