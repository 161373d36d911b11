package tui

import (
	"github.com/billie-coop/swipetabs/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// helpBar is a one-line summary of the most useful keys.
type helpBar struct {
	help  help.Model
	keys  []help.KeyMap
	width int
}

func newHelpBar(keys ...help.KeyMap) *helpBar {
	return &helpBar{help: help.New(), keys: keys}
}

func (h *helpBar) Init() tea.Cmd { return nil }
func (h *helpBar) Height() int   { return 1 }

func (h *helpBar) SetSize(width, _ int) tea.Cmd {
	h.width = width
	return nil
}

func (h *helpBar) View() string {
	s := styles.CurrentTheme().S()
	h.help.Styles.ShortKey = s.Key
	h.help.Styles.ShortDesc = s.Desc
	h.help.Styles.ShortSeparator = s.Subtle

	var bindings []key.Binding
	for _, km := range h.keys {
		bindings = append(bindings, km.ShortHelp()...)
	}
	return lipgloss.NewStyle().
		Width(h.width).
		MaxWidth(h.width).
		MaxHeight(1).
		Padding(0, 1).
		Render(h.help.ShortHelpView(bindings))
}
