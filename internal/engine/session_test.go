package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vovakirdan/tui-match3/internal/engine"
	"github.com/vovakirdan/tui-match3/internal/engine/enginetest"
)

type SessionSuite struct {
	suite.Suite
	session *engine.Session
	totals  []int
	combos  []engine.Match
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.totals = nil
	s.combos = nil

	// Swapping the first pair of row 0 or of row 2 lines up three of a kind.
	g := board(s.T(),
		"01002",
		"21210",
		"10112",
	)
	session, err := engine.NewSessionWithGrid(g, 3, enginetest.NewMockRandom())
	s.Require().NoError(err)
	s.session = session
	s.session.OnScoreChanged(func(total int) { s.totals = append(s.totals, total) })
	s.session.OnCombo(func(m engine.Match) { s.combos = append(s.combos, m) })
}

func (s *SessionSuite) TestStartsEmpty() {
	s.Zero(s.session.Score())
	s.Zero(s.session.Moves())
	s.Empty(s.session.FindMatches())
	s.Equal(3, s.session.Variety())
}

func (s *SessionSuite) TestCommittedSwapNotifies() {
	outcome, err := s.session.Swap(engine.C(0, 0), engine.C(1, 0))
	s.Require().NoError(err)
	s.Require().True(outcome.Committed())

	s.Equal(2, s.session.Score())
	s.Equal(1, s.session.Moves())
	s.Equal([]int{2}, s.totals)
	s.Require().Len(s.combos, 1)
	s.Equal(engine.Bear, s.combos[0].Kind)
	s.Equal(3, s.combos[0].Len())
}

func (s *SessionSuite) TestScoreIsRunningSum() {
	first, err := s.session.Swap(engine.C(0, 0), engine.C(1, 0))
	s.Require().NoError(err)
	s.Require().True(first.Committed())

	second, err := s.session.Swap(engine.C(0, 2), engine.C(1, 2))
	s.Require().NoError(err)
	s.Require().True(second.Committed())

	total := first.ScoreDelta + second.ScoreDelta
	s.Equal(total, s.session.Score())
	s.Equal([]int{first.ScoreDelta, total}, s.totals)
	s.Equal(2, s.session.Moves())
}

func (s *SessionSuite) TestRevertedSwapIsSilent() {
	before := s.session.Grid().Clone()

	outcome, err := s.session.Swap(engine.C(3, 1), engine.C(4, 1))
	s.Require().NoError(err)
	s.Equal(engine.Reverted, outcome.Status)

	s.True(s.session.Grid().Equal(before))
	s.Zero(s.session.Score())
	s.Zero(s.session.Moves())
	s.Empty(s.totals)
	s.Empty(s.combos)
}

func (s *SessionSuite) TestInvalidMoveIsSilent() {
	before := s.session.Grid().Clone()

	_, err := s.session.Swap(engine.C(0, 0), engine.C(2, 2))
	s.ErrorIs(err, engine.ErrInvalidMove)

	s.True(s.session.Grid().Equal(before))
	s.Empty(s.totals)
	s.Empty(s.combos)
}

func (s *SessionSuite) TestHighlightIsForwarded() {
	var highlighted []engine.Coord
	s.session.SetHighlight(func(c engine.Coord, _ engine.Axis) {
		highlighted = append(highlighted, c)
	})

	_, err := s.session.Swap(engine.C(0, 0), engine.C(1, 0))
	s.Require().NoError(err)
	s.ElementsMatch(row(0, 1, 2, 3), highlighted)
}

func TestNewSessionBuildsCleanBoard(t *testing.T) {
	session, err := engine.NewSession(engine.SessionOptions{
		Width:   8,
		Height:  8,
		Variety: 6,
		Rng:     engine.NewRandom(7),
	})
	require.NoError(t, err)
	require.Empty(t, session.FindMatches())
	require.Equal(t, 8, session.Grid().Width())
}

func TestNewSessionPropagatesInitFailure(t *testing.T) {
	_, err := engine.NewSession(engine.SessionOptions{Width: 8, Height: 8, Variety: 2})
	require.ErrorIs(t, err, engine.ErrInitializationFailure)
}

func TestPossibleSwaps(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected []engine.Swap
	}{
		{
			name:     "single winning swap",
			rows:     []string{"0100"},
			expected: []engine.Swap{{A: engine.C(0, 0), B: engine.C(1, 0)}},
		},
		{
			name:     "stuck row",
			rows:     []string{"0101"},
			expected: nil,
		},
		{
			name: "swaps forming column runs",
			rows: []string{"01", "10", "00"},
			expected: []engine.Swap{
				{A: engine.C(0, 0), B: engine.C(1, 0)},
				{A: engine.C(0, 1), B: engine.C(1, 1)},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := board(t, tc.rows...)
			before := g.Clone()

			require.Equal(t, tc.expected, engine.PossibleSwaps(g))
			require.True(t, g.Equal(before), "PossibleSwaps must not mutate the grid")

			session, err := engine.NewSessionWithGrid(g, 3, enginetest.NewMockRandom())
			require.NoError(t, err)
			require.Equal(t, len(tc.expected) == 0, session.Stuck())
		})
	}
}

func TestNewSessionWithGridRejectsBadVariety(t *testing.T) {
	g := board(t, "012", "120", "201")
	for _, variety := range []int{0, 2, engine.MaxVariety + 1} {
		session, err := engine.NewSessionWithGrid(g, variety, enginetest.NewMockRandom())
		require.ErrorIs(t, err, engine.ErrInitializationFailure, "variety %d", variety)
		require.Nil(t, session)
	}

	session, err := engine.NewSession(engine.SessionOptions{Width: 6, Height: 6, Variety: 300})
	require.ErrorIs(t, err, engine.ErrInitializationFailure)
	require.Nil(t, session)
}
