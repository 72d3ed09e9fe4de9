package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pipe-bird/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('p'), core.ActionPlay},
		{runeKey('P'), core.ActionPlay},
		{runeKey('q'), core.ActionQuit},
		{runeKey('Q'), core.ActionQuit},
		{spaceKey, core.ActionFlap},
		{runeKey('x'), core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 3 {
		t.Errorf("ShortHelp has %d bindings, expected 3", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 2 {
		t.Errorf("FullHelp has %d groups, expected 2", len(km.FullHelp()))
	}
}
