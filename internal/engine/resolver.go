package engine

import "fmt"

// MoveStatus tells whether a swap was kept.
type MoveStatus uint8

const (
	// Committed means the swap produced at least one match and was kept.
	Committed MoveStatus = iota
	// Reverted means the swap produced no match and was undone.
	Reverted
)

// String returns the string representation of a status.
func (s MoveStatus) String() string {
	switch s {
	case Committed:
		return "Committed"
	case Reverted:
		return "Reverted"
	default:
		return "Unknown"
	}
}

// ReasonNoMatch is the Reason of a swap reverted for producing no match.
const ReasonNoMatch = "no match"

// Replacement records one matched cell receiving a new kind.
type Replacement struct {
	Coord Coord
	From  TileKind
	To    TileKind
}

// MoveOutcome is the result of a resolved swap.
type MoveOutcome struct {
	Status       MoveStatus
	Matches      []Match       // Committed only, in scan order
	Replacements []Replacement // Committed only, one per distinct matched cell
	ScoreDelta   int           // Committed only
	Reason       string        // Reverted only
}

// Committed reports whether the outcome kept the swap.
func (o MoveOutcome) Committed() bool {
	return o.Status == Committed
}

// Resolver applies swaps to a grid.
type Resolver struct {
	rng     Random
	variety int
	scanner Scanner
}

// NewResolver creates a resolver drawing replacement kinds from [0, variety).
// It returns ErrInitializationFailure for a variety outside
// [MinVariety, MaxVariety] or a nil rng.
func NewResolver(variety int, rng Random) (*Resolver, error) {
	if err := checkVariety(variety); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: no random source", ErrInitializationFailure)
	}
	return &Resolver{
		rng:     rng,
		variety: variety,
	}, nil
}

// SetHighlight installs a callback for cells of runs found while resolving.
func (r *Resolver) SetHighlight(fn HighlightFunc) {
	r.scanner.OnHighlight = fn
}

// AttemptSwap swaps the kinds at a and b and keeps the swap only if it
// creates a match. On commit every matched cell gets a kind different from
// the one it held, once, and the score delta is computed. Replacement is a
// single pass: runs formed by the new kinds are left on the board.
//
// Non-adjacent coordinates return ErrInvalidMove and out-of-range
// coordinates ErrOutOfBounds; the grid is not modified in either case.
func (r *Resolver) AttemptSwap(g *Grid, a, b Coord) (MoveOutcome, error) {
	if !g.InBounds(a) {
		return MoveOutcome{}, g.boundsErr(a)
	}
	if !g.InBounds(b) {
		return MoveOutcome{}, g.boundsErr(b)
	}
	if !a.Adjacent(b) {
		return MoveOutcome{}, fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidMove, a, b)
	}

	// Bounds are already checked, Swap cannot fail from here on.
	_ = g.Swap(a, b)

	matches := r.scanner.Scan(g)
	if len(matches) == 0 {
		_ = g.Swap(a, b)
		return MoveOutcome{Status: Reverted, Reason: ReasonNoMatch}, nil
	}

	return MoveOutcome{
		Status:       Committed,
		Matches:      matches,
		Replacements: r.replace(g, matches),
		ScoreDelta:   ScoreDelta(matches),
	}, nil
}

// replace gives every matched cell a new kind.
func (r *Resolver) replace(g *Grid, matches []Match) []Replacement {
	coords := matchedCoords(matches)
	replacements := make([]Replacement, 0, len(coords))
	for _, c := range coords {
		from := g.kindAt(c)
		to := differentKind(r.rng, r.variety, from)
		g.cells[g.index(c)].Kind = to
		replacements = append(replacements, Replacement{Coord: c, From: from, To: to})
	}
	return replacements
}
