package engine

// SessionOptions configures a new Session.
type SessionOptions struct {
	Width   int
	Height  int
	Variety int
	Rng     Random // nil means a time-seeded math/rand source
}

// Swap is a pair of adjacent coordinates.
type Swap struct {
	A Coord
	B Coord
}

// Session is one game: a grid, its resolver and the running score.
// Observers are called synchronously from Swap. A Session is not safe for
// concurrent use; the caller serialises access.
type Session struct {
	grid     *Grid
	resolver *Resolver
	variety  int
	score    int
	moves    int

	scoreObservers []func(total int)
	comboObservers []func(m Match)
}

// NewSession builds a match-free grid and an empty score.
func NewSession(opts SessionOptions) (*Session, error) {
	rng := opts.Rng
	if rng == nil {
		rng = NewRandom(0)
	}
	g, err := Initialize(opts.Width, opts.Height, opts.Variety, rng)
	if err != nil {
		return nil, err
	}
	return NewSessionWithGrid(g, opts.Variety, rng)
}

// NewSessionWithGrid wraps an existing grid, e.g. a hand-built board.
// The grid is used as is, matches included.
func NewSessionWithGrid(g *Grid, variety int, rng Random) (*Session, error) {
	if rng == nil {
		rng = NewRandom(0)
	}
	resolver, err := NewResolver(variety, rng)
	if err != nil {
		return nil, err
	}
	return &Session{
		grid:     g,
		resolver: resolver,
		variety:  variety,
	}, nil
}

// Grid returns the session's grid. Callers must not mutate it directly.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Variety returns the palette size.
func (s *Session) Variety() int {
	return s.variety
}

// Score returns the running sum of every committed score delta.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of committed swaps.
func (s *Session) Moves() int {
	return s.moves
}

// OnScoreChanged registers fn to receive the new total after each committed swap.
func (s *Session) OnScoreChanged(fn func(total int)) {
	s.scoreObservers = append(s.scoreObservers, fn)
}

// OnCombo registers fn to receive each match of a committed swap, in scan order.
func (s *Session) OnCombo(fn func(m Match)) {
	s.comboObservers = append(s.comboObservers, fn)
}

// SetHighlight forwards scanner highlight hints of resolved swaps to fn.
func (s *Session) SetHighlight(fn HighlightFunc) {
	s.resolver.SetHighlight(fn)
}

// FindMatches scans the session grid. On a settled board it is empty.
func (s *Session) FindMatches() []Match {
	return FindMatches(s.grid)
}

// Swap resolves a player swap and notifies observers on commit.
func (s *Session) Swap(a, b Coord) (MoveOutcome, error) {
	outcome, err := s.resolver.AttemptSwap(s.grid, a, b)
	if err != nil || !outcome.Committed() {
		return outcome, err
	}

	s.moves++
	s.score += outcome.ScoreDelta
	for _, m := range outcome.Matches {
		for _, fn := range s.comboObservers {
			fn(m)
		}
	}
	for _, fn := range s.scoreObservers {
		fn(s.score)
	}
	return outcome, nil
}

// PossibleSwaps returns every swap that would produce at least one match.
func (s *Session) PossibleSwaps() []Swap {
	return PossibleSwaps(s.grid)
}

// Stuck reports whether no swap can produce a match.
func (s *Session) Stuck() bool {
	return len(PossibleSwaps(s.grid)) == 0
}

// PossibleSwaps tries every right and down neighbour swap on a scratch copy
// of g and returns the ones AttemptSwap would commit. g is not modified.
// A board left with a match by a previous replacement pass commits any swap.
func PossibleSwaps(g *Grid) []Swap {
	scratch := g.Clone()
	var swaps []Swap
	try := func(a, b Coord) {
		if !scratch.InBounds(b) {
			return
		}
		_ = scratch.Swap(a, b)
		if len(FindMatches(scratch)) > 0 {
			swaps = append(swaps, Swap{A: a, B: b})
		}
		_ = scratch.Swap(a, b)
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := C(x, y)
			try(c, c.Add(1, 0))
			try(c, c.Add(0, 1))
		}
	}
	return swaps
}
