package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// Model runs one game: it turns keys into input frames, steps the game on
// every tick, and saves finished rounds to the store.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	tickGen    uint64 // Tick chain this model steps on
	quitting   bool
	goingBack  bool // Player asked to return to the menu
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		tickGen:    newTickGen(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// The state is read back on the first tick; Init cannot update m.
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey turns a key into an action for the next tick. Quit and Back end
// the program at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Game.Screenshot) {
		//nolint:errcheck // Best-effort, the round goes on regardless
		m.saveScreenshot(time.Now())
		return m, nil
	}

	switch action, isQuit := m.keyMapper.MapKey(msg); {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.goingBack = true
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.GameOver:
		// Restart only ends a finished round.
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize relays the new terminal size to the screen and the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	switch r, ok := m.game.(registry.Resizer); {
	case ok:
		r.Resize(msg.Width, msg.Height)
	case !m.gameState.GameOver:
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick steps the game once with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver && m.inputFrame.Has(core.ActionRestart) {
		m.restart()
	} else {
		m.gameState = m.game.Step(m.inputFrame).State
		if m.gameState.GameOver {
			m.saveRound()
		}
	}
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// restart deals a new round on a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
}

// saveRound records the finished round once. Scoreless rounds are skipped.
func (m *Model) saveRound() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	round := storage.RoundResult{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Moves:  m.gameState.Moves,
	}
	if r, ok := m.game.(registry.RoundReporter); ok {
		round.Combos, round.BestRun = r.RoundStats()
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRound(round)
}

// screenshotPath names the text dump of a board taken at t.
func screenshotPath(home, gameID string, t time.Time) string {
	name := fmt.Sprintf("%s_%s.txt", gameID, t.Format("20060102_150405"))
	return filepath.Join(home, ".match3", "screenshots", name)
}

// saveScreenshot writes the current frame as plain text under the user's home.
func (m *Model) saveScreenshot(t time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	m.game.Render(m.screen)

	path := screenshotPath(home, m.game.ID(), t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// GoingBack reports whether the player left the game for the menu.
func (m Model) GoingBack() bool {
	return m.goingBack
}

// Run starts the Bubble Tea program with the given model.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewModel(game, store, cfg)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	return ok && fm.GoingBack(), nil
}
