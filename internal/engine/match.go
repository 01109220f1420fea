package engine

import "fmt"

// Axis is the direction a run lies along.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// MinRun is the shortest run that counts as a match.
const MinRun = 3

// Match is one detected run of at least MinRun same-kind cells.
// Cells are contiguous along Axis, in scan order.
// Runs that cross each other are reported as separate matches.
type Match struct {
	Axis  Axis
	Kind  TileKind
	Cells []Coord
}

// Len returns the run length.
func (m Match) Len() int {
	return len(m.Cells)
}

// Score returns the points the run is worth: (len-2)*2.
func (m Match) Score() int {
	return (m.Len() - 2) * 2
}

// String returns the combo text shown to the player, e.g. "Bear combo: x3".
func (m Match) String() string {
	return fmt.Sprintf("%s combo: x%d", m.Kind, m.Len())
}

// ScoreDelta sums the score of every match.
func ScoreDelta(matches []Match) int {
	total := 0
	for _, m := range matches {
		total += m.Score()
	}
	return total
}

// matchedCoords returns every coordinate referenced by the matches,
// each once, in first-seen order.
func matchedCoords(matches []Match) []Coord {
	seen := make(map[Coord]bool)
	var coords []Coord
	for _, m := range matches {
		for _, c := range m.Cells {
			if seen[c] {
				continue
			}
			seen[c] = true
			coords = append(coords, c)
		}
	}
	return coords
}
