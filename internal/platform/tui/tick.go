// Package tui provides the Bubble Tea integration for Pipe Bird.
// It handles the terminal UI loop, input mapping and rendering, both for a
// local terminal and for SSH sessions served through Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the configured rate is not positive.
const defaultTickRate = 60

// TickMsg is sent to trigger a game tick. It carries the wall-clock time the
// tick fired, which the model uses to measure frame duration.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
