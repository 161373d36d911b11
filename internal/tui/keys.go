package tui

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap holds the application-wide bindings.
type KeyMap struct {
	Quit  key.Binding
	Help  key.Binding
	Jump  key.Binding
	Theme key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keys"),
		),
		Jump: key.NewBinding(
			key.WithKeys("/", "ctrl+p"),
			key.WithHelp("/", "go to page"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Jump, k.Theme}, {k.Help, k.Quit}}
}
