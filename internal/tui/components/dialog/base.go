package dialog

import (
	"github.com/billie-coop/swipetabs/internal/tui/components/core"
	"github.com/billie-coop/swipetabs/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// BaseDialog provides common dialog functionality
type BaseDialog struct {
	core.FocusableBase
	core.SizeableBase

	title     string
	isOpen    bool
	result    any
	cancelled bool
}

// NewBaseDialog creates a new base dialog
func NewBaseDialog(title string) *BaseDialog {
	return &BaseDialog{title: title}
}

// IsOpen returns whether the dialog is open
func (d *BaseDialog) IsOpen() bool {
	return d.isOpen
}

// Open opens the dialog
func (d *BaseDialog) Open() tea.Cmd {
	d.isOpen = true
	d.cancelled = false
	d.result = nil
	return d.Focus()
}

// Close closes the dialog
func (d *BaseDialog) Close() tea.Cmd {
	d.isOpen = false
	return d.Blur()
}

// Cancel closes the dialog as cancelled
func (d *BaseDialog) Cancel() tea.Cmd {
	d.cancelled = true
	return d.Close()
}

// Result returns the dialog result
func (d *BaseDialog) Result() any {
	return d.result
}

// IsCancelled returns whether the dialog was cancelled
func (d *BaseDialog) IsCancelled() bool {
	return d.cancelled
}

// SetResult sets the dialog result
func (d *BaseDialog) SetResult(result any) {
	d.result = result
}

// RenderDialog renders the dialog box centered on an overlay filling the
// dialog's size.
func (d *BaseDialog) RenderDialog(content string) string {
	if !d.isOpen {
		return ""
	}
	s := styles.CurrentTheme().S()

	body := content
	if d.title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, s.DialogTitle.Render(d.title), content)
	}
	box := s.DialogBorder.Render(body)

	if d.Width == 0 || d.Height == 0 {
		return box
	}
	return s.DialogOverlay.
		Width(d.Width).
		Height(d.Height).
		Render(lipgloss.Place(d.Width, d.Height, lipgloss.Center, lipgloss.Center, box))
}
