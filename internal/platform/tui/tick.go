// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the model that scheduled it, so a stale tick from a
// finished game does not drive a new one.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh tick generation for a new game model.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	return tea.Tick(snake.IntervalForRate(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
