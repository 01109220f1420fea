package match3

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSelecting   GameStateType = "selecting"
	StateSwapping    GameStateType = "swapping"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Preset   string
	Variety  int
	Board    string // One digit per tile, rows separated by newlines
	Score    int
	Moves    int
	Combos   int
	BestRun  int
	CursorX  int
	CursorY  int
	Messages []string // Combo messages visible at this tick
	Notice   string
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.pending != nil:
		state = StateSwapping
	case g.selecting:
		state = StateSelecting
	}

	snap := Snapshot{
		Tick:    g.tick,
		Preset:  g.preset.ID,
		Variety: g.board.Variety,
		Combos:  g.combos,
		BestRun: g.bestRun,
		CursorX: g.cursor.X,
		CursorY: g.cursor.Y,
		Notice:  g.notice,
		State:   state,
	}
	if g.session != nil {
		snap.Board = g.session.Grid().String()
		snap.Score = g.session.Score()
		snap.Moves = g.session.Moves()
	}
	for _, m := range g.visibleMessages() {
		snap.Messages = append(snap.Messages, m.text)
	}
	return snap
}
