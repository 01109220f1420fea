package engine

// HighlightFunc receives a coordinate that belongs to a run of at least
// MinRun cells, as soon as the run crosses the threshold.
// It may be called more than once for the same coordinate.
type HighlightFunc func(c Coord, axis Axis)

// Scanner finds matches on a grid. The zero value is ready to use.
type Scanner struct {
	// OnHighlight, if set, is called while scanning for cells of runs that
	// have reached MinRun. It is a presentation hint only.
	OnHighlight HighlightFunc
}

// FindMatches scans g with a zero Scanner.
func FindMatches(g *Grid) []Match {
	return Scanner{}.Scan(g)
}

// Scan returns every run of MinRun or more same-kind cells.
// Columns are scanned first (Vertical), then rows (Horizontal); the results
// are concatenated without merging crossing runs.
func (s Scanner) Scan(g *Grid) []Match {
	var matches []Match
	for x := 0; x < g.Width(); x++ {
		matches = append(matches, s.scanLine(g, g.Column(x), Vertical)...)
	}
	for y := 0; y < g.Height(); y++ {
		matches = append(matches, s.scanLine(g, g.Row(y), Horizontal)...)
	}
	return matches
}

// scanLine walks one ordered line and emits its runs.
func (s Scanner) scanLine(g *Grid, line []Coord, axis Axis) []Match {
	if len(line) == 0 {
		return nil
	}

	var matches []Match
	currentKind := g.kindAt(line[0])
	runLength := 1
	runBuffer := []Coord{line[0]}

	flush := func() {
		if runLength >= MinRun {
			cells := make([]Coord, len(runBuffer))
			copy(cells, runBuffer)
			matches = append(matches, Match{Axis: axis, Kind: currentKind, Cells: cells})
		}
	}

	for i := 1; i < len(line); i++ {
		kind := g.kindAt(line[i])
		if kind == currentKind {
			runLength++
			runBuffer = append(runBuffer, line[i])
			if runLength >= MinRun {
				s.highlight(line[i-2], axis)
				s.highlight(line[i-1], axis)
				s.highlight(line[i], axis)
			}
			continue
		}

		flush()
		currentKind = kind
		runLength = 1
		runBuffer = append(runBuffer[:0], line[i])
	}

	// A run touching the end of the line has no kind change to close it.
	flush()

	return matches
}

func (s Scanner) highlight(c Coord, axis Axis) {
	if s.OnHighlight != nil {
		s.OnHighlight(c, axis)
	}
}
