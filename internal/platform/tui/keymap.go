package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catch-zone/internal/core"
)

// KeyMap defines the key bindings for a session.
type KeyMap struct {
	Left       key.Binding
	Center     key.Binding
	Right      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Center, k.Right, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Center, k.Right},
		{k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h", "1"),
			key.WithHelp("←/a", "left"),
		),
		Center: key.NewBinding(
			key.WithKeys("down", "s", "j", "2"),
			key.WithHelp("↓/s", "center"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l", "3"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Lane returns the lane a key selects, if any.
func (k KeyMap) Lane(msg tea.KeyMsg) (core.Lane, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.LaneLeft, true
	case key.Matches(msg, k.Center):
		return core.LaneCenter, true
	case key.Matches(msg, k.Right):
		return core.LaneRight, true
	}
	return core.LaneCenter, false
}
