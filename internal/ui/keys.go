package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Previous key.Binding
	Next     key.Binding
	Select   key.Binding
	Hide     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Previous: key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Next:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Select:   key.NewBinding(key.WithKeys("enter", "right"), key.WithHelp("enter", "select")),
		Hide:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Select, k.Hide, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
