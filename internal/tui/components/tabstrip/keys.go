package tabstrip

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap are the strip's key bindings.
type KeyMap struct {
	PrevTab key.Binding
	NextTab key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTab, k.NextTab}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
