package dialog

import (
	"github.com/billie-coop/swipetabs/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// HelpDialog lists the key bindings of every registered key map, one
// section per map.
type HelpDialog struct {
	*BaseDialog

	sections []helpSection
	help     help.Model
}

type helpSection struct {
	name string
	keys help.KeyMap
}

// NewHelpDialog creates a new help dialog
func NewHelpDialog() *HelpDialog {
	return &HelpDialog{
		BaseDialog: NewBaseDialog("Keys"),
		help:       help.New(),
	}
}

// AddSection appends a named key map.
func (d *HelpDialog) AddSection(name string, keys help.KeyMap) {
	d.sections = append(d.sections, helpSection{name: name, keys: keys})
}

// Init initializes the dialog
func (d *HelpDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *HelpDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc", "q", "?", "enter":
			return d, d.Close()
		}
	}
	return d, nil
}

// View renders the dialog
func (d *HelpDialog) View() string {
	if !d.isOpen {
		return ""
	}
	s := styles.CurrentTheme().S()
	d.help.Styles.FullKey = s.Key
	d.help.Styles.FullDesc = s.Desc
	d.help.Styles.FullSeparator = s.Subtle

	var blocks []string
	for i, sec := range d.sections {
		if i > 0 {
			blocks = append(blocks, "")
		}
		blocks = append(blocks, s.Title.Render(sec.name), d.help.FullHelpView(sec.keys.FullHelp()))
	}
	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// Bindings returns every binding shown, in display order.
func (d *HelpDialog) Bindings() []key.Binding {
	var out []key.Binding
	for _, sec := range d.sections {
		for _, group := range sec.keys.FullHelp() {
			out = append(out, group...)
		}
	}
	return out
}
