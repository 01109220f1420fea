// Package tui provides the Bubble Tea integration for the match-3 platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick chain; a model steps only on ticks of its own chain.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickGens hands out chain ids. SSH sessions start games concurrently.
var tickGens atomic.Uint64

// newTickGen returns a fresh tick chain id.
func newTickGen() uint64 {
	return tickGens.Add(1)
}

// tickInterval converts a tick rate to the time between ticks.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next tick of chain gen.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
