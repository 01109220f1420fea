// Package match3 adapts the match-3 engine to the platform's fixed-tick game loop.
// It owns the cursor, the deferred swap and the combo message queue; all board
// rules live in the engine.
package match3

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

const (
	// reshuffleAttempts bounds how often Reset redraws a board with no possible swap.
	reshuffleAttempts = 10

	noticeMs = 1200
)

// Notices shown under the board.
const (
	noticeNoMatch = "No match - tiles swapped back"
	noticeInvalid = "Tiles must be neighbours"
	noticeStuck   = "No moves left"
	noticeEnded   = "Round ended"
)

// Package-level settings applied to games created afterwards.
var (
	settings   = config.DefaultMatch3Config()
	difficulty = config.DifficultyNormal
	logger     = log.New(io.Discard)
)

func init() {
	if cfg, err := config.LoadMatch3(""); err == nil {
		settings = cfg
	}
	registerPresets(settings.Presets)
}

// registerPresets registers one game per preset. A preset that is already
// known is replaced so its listed board follows the configuration.
func registerPresets(presets []config.PresetConfig) {
	for _, p := range presets {
		id := p.ID
		registry.Replace(registry.GameInfo{
			ID:      id,
			Title:   p.Title,
			Width:   p.Width,
			Height:  p.Height,
			Variety: p.Variety,
		}, func() registry.Game {
			return NewForPreset(id)
		})
	}
}

// Configure replaces the package configuration and registers any new presets.
func Configure(cfg config.Match3Config) {
	settings = cfg
	registerPresets(cfg.Presets)
}

// Settings returns the active configuration.
func Settings() config.Match3Config {
	return settings
}

// SetDifficultyPreset sets the difficulty of games created afterwards.
func SetDifficultyPreset(p config.DifficultyPreset) {
	difficulty = p
}

// SetLogger sets the logger for game events. Nil restores the silent default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// pendingSwap is a requested swap waiting for its evaluation delay.
type pendingSwap struct {
	a, b  engine.Coord
	ticks int
}

// comboMessage is one "<Kind> combo: xN" line with its display window.
type comboMessage struct {
	text   string
	kind   engine.TileKind
	showAt uint64
	hideAt uint64
}

// timing holds the configured delays converted to ticks.
type timing struct {
	swapDelay    int
	comboStagger int
	messageFade  int
	highlight    int
	notice       int
}

// Game implements the match-3 puzzle for one preset.
type Game struct {
	preset     config.PresetConfig
	difficulty config.DifficultyPreset
	board      config.BoardConfig
	timing     timing
	log        *log.Logger

	rng     *rand.Rand
	session *engine.Session
	tick    uint64
	err     error

	cursor    engine.Coord
	selected  engine.Coord
	selecting bool
	pending   *pendingSwap

	messages      []comboMessage
	lastMessageAt uint64
	flash         map[engine.Coord]int
	notice        string
	noticeTicks   int

	combos    int
	bestRun   int
	lastDelta int

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	ended    bool // Player ended the round rather than running out of moves
	paused   bool
	tooSmall bool
}

// New creates a game for the default preset.
func New() *Game {
	return NewForPreset("match3")
}

// NewForPreset creates a game for the named preset.
// Unknown ids fall back to the configured default board.
func NewForPreset(id string) *Game {
	p, ok := settings.Preset(id)
	if !ok {
		b := settings.Board
		p = config.PresetConfig{ID: id, Title: "Match-3", Width: b.Width, Height: b.Height, Variety: b.Variety}
	}
	return &Game{preset: p, difficulty: difficulty}
}

// SetDifficulty overrides the difficulty for this game from the next Reset on.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.difficulty = p
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.preset.Title
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.log = logger.With("game", g.preset.ID)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.err = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.board = g.preset.Board()
	config.ApplyMatch3Preset(&g.board, g.difficulty)

	g.timing = timing{
		swapDelay:    cfg.Ticks(settings.Timing.SwapDelayMs),
		comboStagger: cfg.Ticks(settings.Timing.ComboStaggerMs),
		messageFade:  cfg.Ticks(settings.Timing.MessageFadeMs),
		highlight:    cfg.Ticks(settings.Timing.HighlightMs),
		notice:       cfg.Ticks(noticeMs),
	}

	g.cursor = engine.C(g.board.Width/2, g.board.Height/2)
	g.selecting = false
	g.pending = nil
	g.messages = nil
	g.lastMessageAt = 0
	g.flash = make(map[engine.Coord]int)
	g.notice = ""
	g.noticeTicks = 0
	g.combos = 0
	g.bestRun = 0
	g.lastDelta = 0
	g.gameOver = false
	g.ended = false
	g.paused = false

	g.newSession()
	g.checkScreenSize()
}

// newSession builds a board, redrawing it while it offers no possible swap.
func (g *Game) newSession() {
	opts := engine.SessionOptions{
		Width:   g.board.Width,
		Height:  g.board.Height,
		Variety: g.board.Variety,
		Rng:     g.rng,
	}

	for attempt := range reshuffleAttempts {
		s, err := engine.NewSession(opts)
		if err != nil {
			g.err = err
			g.session = nil
			g.gameOver = true
			g.log.Error("cannot initialize board", "err", err)
			return
		}
		g.session = s
		if !s.Stuck() {
			break
		}
		g.log.Debug("initial board has no moves, redrawing", "attempt", attempt+1)
	}

	g.attach(g.session)
}

// attach subscribes the game to a session's events and makes it current.
func (g *Game) attach(s *engine.Session) {
	g.session = s
	s.OnCombo(g.queueCombo)
	s.OnScoreChanged(func(total int) {
		g.log.Debug("score changed", "total", total)
	})
	s.SetHighlight(g.flashCell)

	g.log.Debug("board ready",
		"width", s.Grid().Width(), "height", s.Grid().Height(), "variety", s.Variety(),
		"moves", len(s.PossibleSwaps()))

	if s.Stuck() {
		g.finish(noticeStuck)
	}
}

// checkScreenSize checks if the screen is large enough for board and HUD.
func (g *Game) checkScreenSize() {
	minW, minH := minScreenSize(g.board.Width, g.board.Height)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts the layout to a new screen size without restarting the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.advanceTimers()

	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		// Will be reset by platform
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// A requested swap blocks input until it is evaluated.
	if g.pending != nil {
		g.pending.ticks--
		if g.pending.ticks <= 0 {
			g.resolvePending()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionEnd) {
		g.ended = true
		g.finish(noticeEnded)
		return core.StepResult{State: g.State()}
	}

	if dir, ok := direction(in); ok {
		if g.selecting {
			g.requestSwap(g.selected, g.selected.Add(dir.X, dir.Y))
		} else {
			g.moveCursor(dir)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionSelect) {
		g.toggleSelection()
	}

	return core.StepResult{State: g.State()}
}

// direction reads a single cursor direction from the frame.
func direction(in core.InputFrame) (engine.Coord, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.C(0, -1), true
	case in.Has(core.ActionDown):
		return engine.C(0, 1), true
	case in.Has(core.ActionLeft):
		return engine.C(-1, 0), true
	case in.Has(core.ActionRight):
		return engine.C(1, 0), true
	}
	return engine.Coord{}, false
}

func (g *Game) moveCursor(dir engine.Coord) {
	next := g.cursor.Add(dir.X, dir.Y)
	g.cursor = engine.C(
		core.Clamp(next.X, 0, g.board.Width-1),
		core.Clamp(next.Y, 0, g.board.Height-1),
	)
}

func (g *Game) toggleSelection() {
	if g.selecting && g.selected == g.cursor {
		g.selecting = false
		return
	}
	g.selected = g.cursor
	g.selecting = true
}

// requestSwap shows the swap tentatively and schedules its evaluation.
func (g *Game) requestSwap(a, b engine.Coord) {
	g.selecting = false
	if !g.session.Grid().InBounds(b) {
		g.log.Debug("swap off the board", "a", a, "b", b)
		g.showNotice(noticeInvalid)
		return
	}

	g.log.Debug("swap requested", "a", a, "b", b)
	g.cursor = b
	g.pending = &pendingSwap{a: a, b: b, ticks: g.timing.swapDelay}
}

// resolvePending hands the waiting swap to the engine.
func (g *Game) resolvePending() {
	p := g.pending
	g.pending = nil

	outcome, err := g.session.Swap(p.a, p.b)
	switch {
	case errors.Is(err, engine.ErrInvalidMove), errors.Is(err, engine.ErrOutOfBounds):
		g.log.Debug("invalid move", "a", p.a, "b", p.b, "err", err)
		g.showNotice(noticeInvalid)
		return
	case err != nil:
		g.log.Error("swap failed", "err", err)
		g.showNotice(err.Error())
		return
	}

	if !outcome.Committed() {
		g.log.Debug("swap reverted", "a", p.a, "b", p.b, "reason", outcome.Reason)
		g.showNotice(noticeNoMatch)
		return
	}

	g.lastDelta = outcome.ScoreDelta
	g.combos += len(outcome.Matches)
	for _, m := range outcome.Matches {
		g.bestRun = max(g.bestRun, m.Len())
	}
	g.log.Debug("swap committed",
		"matches", len(outcome.Matches), "replaced", len(outcome.Replacements),
		"delta", outcome.ScoreDelta, "score", g.session.Score())

	if g.session.Stuck() {
		g.finish(noticeStuck)
	}
}

// finish ends the round.
func (g *Game) finish(reason string) {
	g.gameOver = true
	g.selecting = false
	g.showNotice(reason)
	snap := g.Snapshot()
	g.log.Info("game over", "reason", reason, "score", snap.Score, "moves", snap.Moves, "combos", snap.Combos)
	g.log.Debug("final board", "tick", snap.Tick, "board", "\n"+snap.Board)
}

// queueCombo schedules a combo message after the previous one.
func (g *Game) queueCombo(m engine.Match) {
	showAt := g.tick
	if len(g.messages) > 0 {
		showAt = max(showAt, g.lastMessageAt+uint64(g.timing.comboStagger))
	}
	g.lastMessageAt = showAt
	g.messages = append(g.messages, comboMessage{
		text:   m.String(),
		kind:   m.Kind,
		showAt: showAt,
		hideAt: showAt + uint64(g.timing.messageFade),
	})
}

// flashCell marks a matched cell for highlighting.
func (g *Game) flashCell(c engine.Coord, _ engine.Axis) {
	g.flash[c] = g.timing.highlight
}

func (g *Game) showNotice(text string) {
	g.notice = text
	g.noticeTicks = g.timing.notice
}

// advanceTimers expires flashes, notices and combo messages.
func (g *Game) advanceTimers() {
	for c, left := range g.flash {
		if left <= 1 {
			delete(g.flash, c)
			continue
		}
		g.flash[c] = left - 1
	}

	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 && !g.gameOver {
			g.notice = ""
		}
	}

	kept := g.messages[:0]
	for _, m := range g.messages {
		if m.hideAt > g.tick {
			kept = append(kept, m)
		}
	}
	g.messages = kept
}

// visibleMessages returns the combo messages on screen at the current tick.
func (g *Game) visibleMessages() []comboMessage {
	var out []comboMessage
	for _, m := range g.messages {
		if m.showAt <= g.tick && g.tick < m.hideAt {
			out = append(out, m)
		}
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
	if g.session != nil {
		state.Score = g.session.Score()
		state.Moves = g.session.Moves()
	}
	return state
}

// RoundStats returns the cleared matches and the longest run of the round.
func (g *Game) RoundStats() (combos, bestRun int) {
	return g.combos, g.bestRun
}

// Board returns the engine grid, nil before Reset.
func (g *Game) Board() *engine.Grid {
	if g.session == nil {
		return nil
	}
	return g.session.Grid()
}
