package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pipe-bird/internal/core"
)

// KeyMap holds the key bindings for the game.
// Keeping them in one place makes them testable and lets the SSH server and
// the local terminal share the same controls.
type KeyMap struct {
	Play      key.Binding
	Quit      key.Binding
	Flap      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings: P plays, Q quits, Space flaps.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flap"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit immediately"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Play):
		return core.ActionPlay
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	}
	return core.ActionNone
}

// ShortHelp returns the bindings shown in compact help views.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Flap, k.Quit}
}

// FullHelp returns all bindings grouped for expanded help views.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Play, k.Flap}, {k.Quit, k.ForceQuit}}
}
