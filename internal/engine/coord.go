package engine

import "fmt"

// Coord is a grid position. X grows along a row, Y along a column.
type Coord struct {
	X, Y int
}

// orthogonal holds the unit steps left, right, up (y+1) and down (y-1).
var orthogonal = [4]Coord{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// C builds a Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return C(c.X+dx, c.Y+dy)
}

// Adjacent reports whether other shares an edge with c. Diagonal cells and
// c itself are not adjacent.
func (c Coord) Adjacent(other Coord) bool {
	for _, d := range orthogonal {
		if c.Add(d.X, d.Y) == other {
			return true
		}
	}
	return false
}
