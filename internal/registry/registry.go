// Package registry provides a global registry of playable boards.
// Board presets register a factory together with their board metadata,
// allowing the platform to list and instantiate them without hardcoded
// dependencies on the game package.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
)

// Game is the interface the platform drives once per tick.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the preset identifier (e.g., "match3", "match3_mini").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Match-3 Mini").
	Title() string

	// Reset deals a fresh board.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the score, move count and game over/paused flags.
	State() core.GameState
}

// Resizer is implemented by games that can relayout without dealing a new board.
type Resizer interface {
	Resize(w, h int)
}

// RoundReporter is implemented by games that track per-round statistics.
type RoundReporter interface {
	RoundStats() (combos, bestRun int)
}

// DifficultySetter is implemented by games with a per-instance difficulty.
type DifficultySetter interface {
	SetDifficulty(p config.DifficultyPreset)
}

// GameInfo describes a registered board preset.
type GameInfo struct {
	ID      string
	Title   string
	Width   int
	Height  int
	Variety int
}

// Board returns a short description such as "8x8, 6 kinds".
func (i GameInfo) Board() string {
	if i.Width == 0 || i.Height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d, %d kinds", i.Width, i.Height, i.Variety)
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a board preset to the registry.
// Panics if the id is empty or already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// Replace registers a preset or overwrites an existing one, e.g. after a
// configuration file redefines its board.
func Replace(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered presets, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata of a registered preset.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
