package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/engine"
)

// board builds a grid from rows of digits; row i is y = i and each digit is a kind.
func board(t *testing.T, rows ...string) *engine.Grid {
	t.Helper()
	kinds := make([][]engine.TileKind, len(rows))
	for y, row := range rows {
		kinds[y] = make([]engine.TileKind, len(row))
		for x, r := range row {
			require.True(t, r >= '0' && r <= '9', "row %d has non-digit %q", y, r)
			kinds[y][x] = engine.TileKind(r - '0')
		}
	}
	g, err := engine.GridFromRows(kinds)
	require.NoError(t, err)
	return g
}

// newResolver builds a resolver for a variety the test knows is valid.
func newResolver(t *testing.T, variety int, rng engine.Random) *engine.Resolver {
	t.Helper()
	r, err := engine.NewResolver(variety, rng)
	require.NoError(t, err)
	return r
}

// kind reads a cell that the test knows is in bounds.
func kind(t *testing.T, g *engine.Grid, x, y int) engine.TileKind {
	t.Helper()
	k, err := g.Get(engine.C(x, y))
	require.NoError(t, err)
	return k
}
