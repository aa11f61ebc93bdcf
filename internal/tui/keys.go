package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the grid key bindings.
type KeyMap struct {
	Next          key.Binding
	Previous      key.Binding
	First         key.Binding
	Last          key.Binding
	Jump          key.Binding
	Focus         key.Binding
	FocusPrevious key.Binding
	Activate      key.Binding
	Append        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default grid key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next page"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "previous page"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last page"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to page"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus next button"),
		),
		FocusPrevious: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "focus previous button"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open focused page"),
		),
		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add rows"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Focus, k.Activate, k.Append, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.First, k.Last, k.Jump},
		{k.Focus, k.FocusPrevious, k.Activate},
		{k.Append, k.Help, k.Quit},
	}
}
