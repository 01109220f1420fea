package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a game is reset with: the space it may draw on,
// how fast it is stepped, and the seed its board is dealt from.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Steps per second
	Seed     int64 // Zero lets the platform pick one from the clock
}

// DefaultConfig returns the configuration of a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// Ticks converts a duration in milliseconds to a whole number of steps.
// The result is never below one step.
func (c RuntimeConfig) Ticks(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return max(ms*rate/1000, 1)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Moves    int  // Committed moves so far
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
}
