package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/marcus/showmore/internal/ui"
)

// KeyMap defines the program's keyboard shortcuts.
type KeyMap struct {
	View ui.ViewKeyMap

	Copy key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		View: ui.DefaultViewKeyMap(),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy text"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.View.Toggle, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.View.Toggle, k.View.Expand, k.View.Collapse},
		{k.Copy, k.Help, k.Quit},
	}
}
