package engine

import (
	"fmt"
	"strings"
)

// Cell is one board position. Its coordinate never changes; only Kind does.
type Cell struct {
	Coord Coord
	Kind  TileKind
}

// Grid is the board: exactly one Cell for every coordinate in
// [0,width) x [0,height). Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid of the given size with every cell set to kind 0.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("engine: grid size %dx%d must be at least 1x1", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.index(C(x, y))].Coord = C(x, y)
		}
	}
	return g, nil
}

// GridFromRows builds a grid from rows of kinds; rows[y][x] is the kind at (x, y).
// All rows must have the same non-zero length.
func GridFromRows(rows [][]TileKind) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("engine: no rows given")
	}
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("engine: row %d has %d cells, expected %d", y, len(row), g.width)
		}
		for x, k := range row {
			g.cells[g.index(C(x, y))].Kind = k
		}
	}
	return g, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *Grid) boundsErr(c Coord) error {
	return fmt.Errorf("%w: %v outside %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
}

// Get returns the kind at c.
func (g *Grid) Get(c Coord) (TileKind, error) {
	if !g.InBounds(c) {
		return 0, g.boundsErr(c)
	}
	return g.cells[g.index(c)].Kind, nil
}

// Set replaces the kind at c.
func (g *Grid) Set(c Coord, kind TileKind) error {
	if !g.InBounds(c) {
		return g.boundsErr(c)
	}
	g.cells[g.index(c)].Kind = kind
	return nil
}

// kindAt is Get without the bounds check, for coordinates produced by the grid itself.
func (g *Grid) kindAt(c Coord) TileKind {
	return g.cells[g.index(c)].Kind
}

// Swap exchanges the kinds held at a and b.
func (g *Grid) Swap(a, b Coord) error {
	if !g.InBounds(a) {
		return g.boundsErr(a)
	}
	if !g.InBounds(b) {
		return g.boundsErr(b)
	}
	ia, ib := g.index(a), g.index(b)
	g.cells[ia].Kind, g.cells[ib].Kind = g.cells[ib].Kind, g.cells[ia].Kind
	return nil
}

// Neighbors returns the in-bounds orthogonal neighbours of c
// in the order left, right, up (y+1), down (y-1).
func (g *Grid) Neighbors(c Coord) []Coord {
	result := make([]Coord, 0, len(orthogonal))
	for _, d := range orthogonal {
		if n := c.Add(d.X, d.Y); g.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// Row returns the coordinates of row y ordered by ascending x.
// The scanner relies on this order to build contiguous runs.
func (g *Grid) Row(y int) []Coord {
	if y < 0 || y >= g.height {
		return nil
	}
	coords := make([]Coord, g.width)
	for x := range coords {
		coords[x] = C(x, y)
	}
	return coords
}

// Column returns the coordinates of column x ordered by ascending y.
func (g *Grid) Column(x int) []Coord {
	if x < 0 || x >= g.width {
		return nil
	}
	coords := make([]Coord, g.height)
	for y := range coords {
		coords[y] = C(x, y)
	}
	return coords
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, row 0 first, one digit per kind.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.kindAt(C(x, y)).Rune())
		}
	}
	return sb.String()
}
