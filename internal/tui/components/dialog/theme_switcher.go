package dialog

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/billie-coop/swipetabs/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// ThemeSwitcherDialog previews and selects a chrome theme. Its result is the
// chosen theme name.
type ThemeSwitcherDialog struct {
	*BaseDialog

	manager  *styles.Manager
	logger   *slog.Logger
	themes   []string
	selected int
	original string
	err      error
}

// NewThemeSwitcher creates a new theme switcher over manager's themes.
func NewThemeSwitcher(manager *styles.Manager, logger *slog.Logger) *ThemeSwitcherDialog {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ThemeSwitcherDialog{
		BaseDialog: NewBaseDialog("Theme"),
		manager:    manager,
		logger:     logger,
	}
}

// Open remembers the current theme so cancelling can restore it.
func (d *ThemeSwitcherDialog) Open() tea.Cmd {
	d.themes = d.manager.List()
	d.original = d.manager.Current().Name
	d.selected = 0
	d.err = nil
	for i, name := range d.themes {
		if name == d.original {
			d.selected = i
			break
		}
	}
	return d.BaseDialog.Open()
}

// Init initializes the dialog
func (d *ThemeSwitcherDialog) Init() tea.Cmd {
	return nil
}

// Update handles input
func (d *ThemeSwitcherDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if d.selected > 0 {
				d.preview(d.selected - 1)
			}
		case "down", "j":
			if d.selected < len(d.themes)-1 {
				d.preview(d.selected + 1)
			}
		case "enter":
			d.SetResult(d.themes[d.selected])
			return d, d.Close()
		case "esc", "ctrl+c":
			if err := d.manager.SetTheme(d.original); err != nil {
				d.logger.Error("failed to restore theme", "theme", d.original, "error", err)
			}
			return d, d.Cancel()
		}
	}
	return d, nil
}

// preview switches to theme i. A theme that cannot be set keeps the current
// one selected and is reported in the dialog.
func (d *ThemeSwitcherDialog) preview(i int) {
	if err := d.manager.SetTheme(d.themes[i]); err != nil {
		d.logger.Error("failed to preview theme", "theme", d.themes[i], "error", err)
		d.err = err
		return
	}
	d.selected = i
	d.err = nil
}

// Err returns the error of the last failed preview, if any.
func (d *ThemeSwitcherDialog) Err() error {
	return d.err
}

// View renders the dialog
func (d *ThemeSwitcherDialog) View() string {
	if !d.isOpen {
		return ""
	}
	theme := styles.CurrentTheme()
	var lines []string

	lines = append(lines, theme.S().Subtle.Render("↑/↓ to preview, enter to keep"))
	lines = append(lines, "")

	for i, name := range d.themes {
		if i == d.selected {
			arrow := styles.RenderThemeGradient("→", false)
			lines = append(lines, fmt.Sprintf("%s %s", arrow, styles.RenderThemeGradient(name, true)))
			continue
		}
		line := "  " + name
		style := theme.S().Text
		if name == d.original {
			line += " (current)"
			style = theme.S().Muted
		}
		lines = append(lines, style.Render(line))
	}

	if d.err != nil {
		lines = append(lines, "", theme.S().Error.Render("  "+d.err.Error()))
	}

	lines = append(lines, "", "  "+strings.Join([]string{
		theme.S().Success.Render("Success"),
		theme.S().Warning.Render("Warning"),
		theme.S().Error.Render("Error"),
		theme.S().Info.Render("Info"),
	}, " "))

	return d.RenderDialog(strings.Join(lines, "\n"))
}
