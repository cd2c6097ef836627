// Package tui provides the Bubble Tea integration for boa. It owns the
// terminal loop, the tick cadence, key mapping, and screen rendering; the
// game itself never touches the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step.
type TickMsg time.Time

// tickInterval converts a ticks-per-second rate into the wait between
// steps. Rates below one are clamped to one tick per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate < 1 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg after the given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
