package engine

import "fmt"

// MaxInitPasses bounds the de-duplication loop of Initialize.
const MaxInitPasses = 500

// Initialize builds a width x height grid of kinds drawn uniformly from
// [0, variety) and then replaces matched cells pass after pass until no
// match is left. The returned grid never contains a match.
func Initialize(width, height, variety int, rng Random) (*Grid, error) {
	if err := checkVariety(variety); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: no random source", ErrInitializationFailure)
	}
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitializationFailure, err)
	}

	for i := range g.cells {
		g.cells[i].Kind = randomKind(rng, variety)
	}

	if err := removeMatches(g, variety, rng); err != nil {
		return nil, err
	}
	return g, nil
}

// checkVariety rejects palettes outside [MinVariety, MaxVariety].
func checkVariety(variety int) error {
	switch {
	case variety < MinVariety:
		return fmt.Errorf("%w: variety %d is below the minimum of %d", ErrInitializationFailure, variety, MinVariety)
	case variety > MaxVariety:
		return fmt.Errorf("%w: variety %d is above the maximum of %d", ErrInitializationFailure, variety, MaxVariety)
	}
	return nil
}

// removeMatches runs scan-and-replace passes until the grid is clean.
func removeMatches(g *Grid, variety int, rng Random) error {
	for range MaxInitPasses {
		matches := FindMatches(g)
		if len(matches) == 0 {
			return nil
		}
		for _, c := range matchedCoords(matches) {
			g.cells[g.index(c)].Kind = differentKind(rng, variety, g.kindAt(c))
		}
	}
	if len(FindMatches(g)) == 0 {
		return nil
	}
	return fmt.Errorf("%w: board still has matches after %d passes", ErrInitializationFailure, MaxInitPasses)
}
