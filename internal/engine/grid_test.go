package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/engine"
)

func TestNewGridRejectsEmptySize(t *testing.T) {
	_, err := engine.NewGrid(0, 3)
	assert.Error(t, err)

	_, err = engine.NewGrid(3, -1)
	assert.Error(t, err)
}

func TestNewGridHasOneCellPerCoord(t *testing.T) {
	g, err := engine.NewGrid(4, 3)
	require.NoError(t, err)

	cells := g.Cells()
	require.Len(t, cells, 12)

	seen := make(map[engine.Coord]bool)
	for _, cell := range cells {
		assert.True(t, g.InBounds(cell.Coord), "cell %v out of bounds", cell.Coord)
		assert.False(t, seen[cell.Coord], "duplicate cell %v", cell.Coord)
		seen[cell.Coord] = true
	}
}

func TestGridGetSetOutOfBounds(t *testing.T) {
	g := board(t, "012", "120")

	tests := []engine.Coord{
		engine.C(-1, 0),
		engine.C(0, -1),
		engine.C(3, 0),
		engine.C(0, 2),
	}
	for _, c := range tests {
		_, err := g.Get(c)
		assert.ErrorIs(t, err, engine.ErrOutOfBounds, "Get(%v)", c)
		assert.ErrorIs(t, g.Set(c, engine.Bear), engine.ErrOutOfBounds, "Set(%v)", c)
	}

	require.NoError(t, g.Set(engine.C(2, 1), engine.Frog))
	assert.Equal(t, engine.Frog, kind(t, g, 2, 1))
}

func TestGridSwapExchangesKinds(t *testing.T) {
	g := board(t, "01")
	require.NoError(t, g.Swap(engine.C(0, 0), engine.C(1, 0)))
	assert.Equal(t, "10", g.String())

	assert.ErrorIs(t, g.Swap(engine.C(0, 0), engine.C(2, 0)), engine.ErrOutOfBounds)
	assert.Equal(t, "10", g.String())
}

func TestGridNeighbors(t *testing.T) {
	g := board(t, "000", "000", "000")

	tests := []struct {
		name     string
		coord    engine.Coord
		expected []engine.Coord
	}{
		{"corner", engine.C(0, 0), []engine.Coord{engine.C(1, 0), engine.C(0, 1)}},
		{"edge", engine.C(1, 0), []engine.Coord{engine.C(0, 0), engine.C(2, 0), engine.C(1, 1)}},
		{"center", engine.C(1, 1), []engine.Coord{engine.C(0, 1), engine.C(2, 1), engine.C(1, 2), engine.C(1, 0)}},
		{"far corner", engine.C(2, 2), []engine.Coord{engine.C(1, 2), engine.C(2, 1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.Neighbors(tc.coord))
		})
	}
}

func TestGridRowAndColumnOrder(t *testing.T) {
	g := board(t, "0123", "1230", "2301")

	assert.Equal(t,
		[]engine.Coord{engine.C(0, 1), engine.C(1, 1), engine.C(2, 1), engine.C(3, 1)},
		g.Row(1))
	assert.Equal(t,
		[]engine.Coord{engine.C(2, 0), engine.C(2, 1), engine.C(2, 2)},
		g.Column(2))
	assert.Nil(t, g.Row(3))
	assert.Nil(t, g.Column(-1))
}

func TestGridFromRowsRejectsRaggedRows(t *testing.T) {
	_, err := engine.GridFromRows([][]engine.TileKind{{0, 1, 2}, {0, 1}})
	assert.Error(t, err)

	_, err = engine.GridFromRows(nil)
	assert.Error(t, err)
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := board(t, "012", "201")
	clone := g.Clone()
	require.True(t, g.Equal(clone))

	require.NoError(t, clone.Set(engine.C(0, 0), engine.Rabbit))
	assert.False(t, g.Equal(clone))
	assert.Equal(t, engine.Bear, kind(t, g, 0, 0))
}

func TestGridString(t *testing.T) {
	g := board(t, "012", "345")
	assert.Equal(t, "012\n345", g.String())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
}

func TestCoordAdjacent(t *testing.T) {
	tests := []struct {
		a, b     engine.Coord
		expected bool
	}{
		{engine.C(1, 1), engine.C(2, 1), true},
		{engine.C(1, 1), engine.C(1, 0), true},
		{engine.C(1, 1), engine.C(1, 1), false},
		{engine.C(1, 1), engine.C(2, 2), false},
		{engine.C(0, 0), engine.C(2, 0), false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.a.Adjacent(tc.b), "%v.Adjacent(%v)", tc.a, tc.b)
		assert.Equal(t, tc.expected, tc.b.Adjacent(tc.a), "%v.Adjacent(%v)", tc.b, tc.a)
	}
}

func TestTileKindString(t *testing.T) {
	assert.Equal(t, "Bear", engine.Bear.String())
	assert.Equal(t, "Rabbit", engine.Rabbit.String())
	assert.Equal(t, "Kind(12)", engine.TileKind(12).String())
}
