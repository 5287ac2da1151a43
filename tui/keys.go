package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/zappabad/sentimentdash/tui/panels"
)

// keyMap combines the global bindings with the selector's for the help bar.
type keyMap struct {
	selector panels.SelectorKeyMap
	Scroll   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap(selector panels.SelectorKeyMap) keyMap {
	return keyMap{
		selector: selector,
		Scroll: key.NewBinding(
			key.WithKeys("up", "k", "down", "j"),
			key.WithHelp("↑↓", "scroll timeline"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.selector.Prev, k.selector.Next, k.selector.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.selector.Prev, k.selector.Next, k.selector.Jump},
		{k.selector.Refresh, k.Scroll},
		{k.Help, k.Quit},
	}
}
