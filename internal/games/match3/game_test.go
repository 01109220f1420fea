package match3

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/engine"
	"github.com/vovakirdan/tui-match3/internal/engine/enginetest"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

// newBoardGame returns a reset game playing on a fixed board of digit rows.
func newBoardGame(t *testing.T, variety int, rng engine.Random, rows ...string) *Game {
	t.Helper()

	kinds := make([][]engine.TileKind, len(rows))
	for y, row := range rows {
		for _, r := range row {
			kinds[y] = append(kinds[y], engine.TileKind(r-'0'))
		}
	}
	grid, err := engine.GridFromRows(kinds)
	if err != nil {
		t.Fatalf("GridFromRows(%v) error: %v", rows, err)
	}

	g := New()
	g.Reset(testConfig(1))
	g.gameOver = false
	g.notice = ""
	g.board.Width = grid.Width()
	g.board.Height = grid.Height()
	g.board.Variety = variety
	g.cursor = engine.C(0, 0)
	session, err := engine.NewSessionWithGrid(grid, variety, rng)
	if err != nil {
		t.Fatalf("NewSessionWithGrid(variety %d) error: %v", variety, err)
	}
	g.attach(session)
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.FrameOf(actions...))
}

func idle(g *Game, ticks int) {
	for range ticks {
		g.Step(core.NewInputFrame())
	}
}

func TestPresetsRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"match3", "Match-3"},
		{"match3_mini", "Match-3 Mini"},
		{"match3_zoo", "Match-3 Zoo"},
	}

	for _, tc := range tests {
		if !registry.Exists(tc.id) {
			t.Errorf("preset %q not registered", tc.id)
			continue
		}
		g, err := registry.Create(tc.id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", tc.id, err)
		}
		if g.ID() != tc.id || g.Title() != tc.title {
			t.Errorf("Create(%q) = %s/%s, expected %s/%s", tc.id, g.ID(), g.Title(), tc.id, tc.title)
		}
	}
}

func TestResetBuildsPlayableBoard(t *testing.T) {
	for _, id := range []string{"match3", "match3_mini", "match3_zoo"} {
		g := NewForPreset(id)
		g.Reset(testConfig(42))

		if g.Board() == nil {
			t.Fatalf("%s: Board() = nil after Reset", id)
		}
		if m := engine.FindMatches(g.Board()); len(m) != 0 {
			t.Errorf("%s: fresh board has matches %v", id, m)
		}
		if g.Board().Width() != g.preset.Width || g.Board().Height() != g.preset.Height {
			t.Errorf("%s: board %dx%d, expected %dx%d", id,
				g.Board().Width(), g.Board().Height(), g.preset.Width, g.preset.Height)
		}

		state := g.State()
		if state.Score != 0 || state.Moves != 0 || state.Paused {
			t.Errorf("%s: State() = %+v, expected fresh state", id, state)
		}
	}
}

func TestDeterministicSnapshot(t *testing.T) {
	inputs := []core.Action{
		core.ActionLeft, core.ActionSelect, core.ActionRight,
		core.ActionNone, core.ActionUp, core.ActionSelect, core.ActionDown,
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(7))
		for _, a := range inputs {
			step(g, a)
			idle(g, g.timing.swapDelay)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Snapshots differ for the same seed:\n%+v\n%+v", a, b)
	}
}

func TestCursorClamps(t *testing.T) {
	g := newBoardGame(t, 3, enginetest.NewMockRandom(), "011", "120", "201")

	for range 10 {
		step(g, core.ActionLeft)
		step(g, core.ActionUp)
	}
	if g.cursor != engine.C(0, 0) {
		t.Errorf("cursor = %v, expected (0,0)", g.cursor)
	}

	for range 10 {
		step(g, core.ActionRight)
		step(g, core.ActionDown)
	}
	if g.cursor != engine.C(2, 2) {
		t.Errorf("cursor = %v, expected (2,2)", g.cursor)
	}
}

func TestSelectToggles(t *testing.T) {
	g := newBoardGame(t, 3, enginetest.NewMockRandom(), "011", "120", "201")

	step(g, core.ActionSelect)
	if s := g.Snapshot().State; s != StateSelecting {
		t.Errorf("State after select = %s, expected %s", s, StateSelecting)
	}

	step(g, core.ActionSelect)
	if s := g.Snapshot().State; s != StatePlaying {
		t.Errorf("State after second select = %s, expected %s", s, StatePlaying)
	}
}

func TestSwapIsDeferred(t *testing.T) {
	g := newBoardGame(t, 3, enginetest.NewMockRandom(),
		"01002",
		"21210",
		"10112",
	)
	before := g.Board().String()

	step(g, core.ActionSelect)
	step(g, core.ActionRight)

	if s := g.Snapshot().State; s != StateSwapping {
		t.Fatalf("State after swap request = %s, expected %s", s, StateSwapping)
	}
	if g.cursor != engine.C(1, 0) {
		t.Errorf("cursor = %v, expected to follow the swap to (1,0)", g.cursor)
	}

	idle(g, g.timing.swapDelay-1)
	if g.Board().String() != before {
		t.Error("board changed before the swap delay elapsed")
	}

	// The last waiting tick evaluates the swap and swallows the input.
	step(g, core.ActionEnd)
	if g.State().GameOver {
		t.Error("End should be ignored while a swap is pending")
	}

	snap := g.Snapshot()
	if snap.Score != 2 || snap.Moves != 1 {
		t.Errorf("after delay Score/Moves = %d/%d, expected 2/1", snap.Score, snap.Moves)
	}
	if snap.Combos != 1 || snap.BestRun != 3 {
		t.Errorf("Combos/BestRun = %d/%d, expected 1/3", snap.Combos, snap.BestRun)
	}
	if !reflect.DeepEqual(snap.Messages, []string{"Bear combo: x3"}) {
		t.Errorf("Messages = %v", snap.Messages)
	}
	if len(g.flash) != 3 {
		t.Errorf("flashed %d cells, expected 3", len(g.flash))
	}
}

func TestRevertedSwapShowsNotice(t *testing.T) {
	g := newBoardGame(t, 3, enginetest.NewMockRandom(),
		"01002",
		"21210",
		"10112",
	)
	before := g.Board().String()

	g.cursor = engine.C(3, 1)
	step(g, core.ActionSelect)
	step(g, core.ActionRight)
	idle(g, g.timing.swapDelay)

	snap := g.Snapshot()
	if snap.Board != before {
		t.Errorf("reverted swap changed board:\n%s", snap.Board)
	}
	if snap.Notice != noticeNoMatch {
		t.Errorf("Notice = %q, expected %q", snap.Notice, noticeNoMatch)
	}
	if snap.Score != 0 || snap.Moves != 0 {
		t.Errorf("Score/Moves = %d/%d, expected 0/0", snap.Score, snap.Moves)
	}

	idle(g, g.timing.notice)
	if g.notice != "" {
		t.Errorf("notice %q should have expired", g.notice)
	}
}

func TestInvalidPendingSwapIsRejected(t *testing.T) {
	g := newBoardGame(t, 3, enginetest.NewMockRandom(), "011", "120", "201")
	before := g.Board().String()

	g.pending = &pendingSwap{a: engine.C(0, 0), b: engine.C(2, 2), ticks: 1}
	idle(g, 1)

	if g.notice != noticeInvalid {
		t.Errorf("notice = %q, expected %q", g.notice, noticeInvalid)
	}
	if g.Board().String() != before {
		t.Error("invalid move changed the board")
	}
}

func TestSwapOffBoardShowsNotice(t *testing.T) {
	g := newBoardGame(t, 3, enginetest.NewMockRandom(), "011", "120", "201")

	step(g, core.ActionSelect)
	step(g, core.ActionLeft)

	if g.pending != nil {
		t.Error("swap toward the edge should not be scheduled")
	}
	if g.selecting {
		t.Error("selection should be dropped")
	}
	if g.notice != noticeInvalid {
		t.Errorf("notice = %q, expected %q", g.notice, noticeInvalid)
	}
}

func TestComboMessagesAreStaggered(t *testing.T) {
	// Swapping (1,2) and (1,3) completes a column and a row that share a cell.
	g := newBoardGame(t, 6, enginetest.NewMockRandom(),
		"102",
		"304",
		"050",
		"102",
	)

	g.cursor = engine.C(1, 2)
	step(g, core.ActionSelect)
	step(g, core.ActionDown)
	idle(g, g.timing.swapDelay)

	if len(g.messages) != 2 {
		t.Fatalf("queued %d messages, expected 2", len(g.messages))
	}
	if got := g.messages[1].showAt - g.messages[0].showAt; got != uint64(g.timing.comboStagger) {
		t.Errorf("stagger = %d ticks, expected %d", got, g.timing.comboStagger)
	}

	if msgs := g.Snapshot().Messages; len(msgs) != 1 {
		t.Errorf("visible messages = %v, expected only the first", msgs)
	}

	idle(g, g.timing.comboStagger)
	msgs := g.Snapshot().Messages
	if len(msgs) != 1 || !strings.HasSuffix(msgs[0], "combo: x3") {
		t.Errorf("visible messages after stagger = %v", msgs)
	}

	idle(g, g.timing.messageFade)
	if msgs := g.Snapshot().Messages; len(msgs) != 0 {
		t.Errorf("messages should have faded, got %v", msgs)
	}
}

func TestNoMovesLeftEndsGame(t *testing.T) {
	// The replacements leave [Deer, Duck, Deer, Duck], which has no winning swap.
	g := newBoardGame(t, 3, enginetest.NewMockRandom(2, 1, 2), "0100")

	step(g, core.ActionSelect)
	step(g, core.ActionRight)
	idle(g, g.timing.swapDelay)

	if g.Board().String() != "1212" {
		t.Fatalf("board = %s, expected 1212", g.Board())
	}
	state := g.State()
	if !state.GameOver {
		t.Error("game should end when no swap can match")
	}
	if state.Score != 2 {
		t.Errorf("Score = %d, expected 2", state.Score)
	}
	if g.Snapshot().Notice != noticeStuck {
		t.Errorf("Notice = %q, expected %q", g.Snapshot().Notice, noticeStuck)
	}
}

func TestEndRound(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	result := step(g, core.ActionEnd)
	if !result.State.GameOver {
		t.Error("E should end the round")
	}
	if !g.ended {
		t.Error("ended flag should be set")
	}

	// Input after game over is ignored.
	cursor := g.cursor
	step(g, core.ActionRight)
	if g.cursor != cursor {
		t.Error("cursor moved after game over")
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newBoardGame(t, 3, enginetest.NewMockRandom(), "011", "120", "201")

	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("P should pause")
	}
	step(g, core.ActionRight)
	if g.cursor != engine.C(0, 0) {
		t.Error("cursor moved while paused")
	}

	step(g, core.ActionPause)
	step(g, core.ActionRight)
	if g.cursor != engine.C(1, 0) {
		t.Errorf("cursor = %v after resume, expected (1,0)", g.cursor)
	}
}

func TestDifficultyChangesVariety(t *testing.T) {
	defer SetDifficultyPreset(config.DifficultyNormal)

	SetDifficultyPreset(config.DifficultyEasy)
	g := New()
	g.Reset(testConfig(5))
	if g.board.Variety != 4 {
		t.Errorf("easy variety = %d, expected 4", g.board.Variety)
	}

	g.SetDifficulty(config.DifficultyHard)
	g.Reset(testConfig(5))
	if g.board.Variety != 8 {
		t.Errorf("hard variety = %d, expected 8", g.board.Variety)
	}
	for _, cell := range g.Board().Cells() {
		if int(cell.Kind) >= 8 {
			t.Fatalf("cell %v has kind %d outside variety 8", cell.Coord, cell.Kind)
		}
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	cfg := testConfig(1)
	cfg.ScreenW, cfg.ScreenH = 20, 10
	g.Reset(cfg)

	if !g.State().Paused {
		t.Error("small screen should report paused")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screen should say so")
	}
}

func TestRender(t *testing.T) {
	g := newBoardGame(t, 3, enginetest.NewMockRandom(), "011", "120", "201")
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Match-3", "Score: 0", "Moves: 0", "[●]", "▲", "■"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	// A 3-wide board cannot hold both counters at its edges.
	if !strings.Contains(out, "Score: 0  Moves: 0") {
		t.Errorf("narrow HUD should center both counters together:\n%s", out)
	}

	step(g, core.ActionSelect)
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "<●>") {
		t.Errorf("selected tile not marked:\n%s", out)
	}
	if !strings.Contains(out, "·▲·") {
		t.Errorf("neighbour not marked:\n%s", out)
	}

	step(g, core.ActionPause)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestGlyphsAndColors(t *testing.T) {
	seen := make(map[rune]bool)
	for k := engine.TileKind(0); k < engine.NamedKinds; k++ {
		r := Glyph(k)
		if seen[r] {
			t.Errorf("Glyph(%s) = %c is not unique", k, r)
		}
		seen[r] = true
		if KindColor(k) == core.ColorDefault {
			t.Errorf("KindColor(%s) should not be the default color", k)
		}
	}
	if Glyph(engine.NamedKinds) != '?' {
		t.Errorf("Glyph past named kinds = %c, expected ?", Glyph(engine.NamedKinds))
	}
}

func TestResizeKeepsRound(t *testing.T) {
	g := newBoardGame(t, 3, enginetest.NewMockRandom(), "011", "120", "201")
	step(g, core.ActionRight)
	board := g.Board().String()

	g.Resize(20, 10)
	if !g.State().Paused {
		t.Error("shrinking below the minimum should pause")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("growing back should resume")
	}
	if g.Board().String() != board || g.cursor != engine.C(1, 0) {
		t.Error("resize should keep the board and cursor")
	}
}

func TestRenderWideHUD(t *testing.T) {
	g := newBoardGame(t, 3, enginetest.NewMockRandom(),
		"01201201",
		"12012012",
		"20120120",
	)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	row := screen.Row(1)
	score := strings.Index(row, "Score: 0")
	moves := strings.Index(row, "Moves: 0")
	if score < 0 || moves < 0 {
		t.Fatalf("counters missing from the HUD row: %q", row)
	}
	if moves <= score+len("Score: 0  ") {
		t.Errorf("wide HUD should pin counters to the board edges: %q", row)
	}
}
