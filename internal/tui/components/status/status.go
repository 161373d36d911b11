package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/billie-coop/swipetabs/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// StatusMessage represents a status bar message
type StatusMessage struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

// Component is a one-line status bar: the app name and the current page on
// the left, a temporary message on the right.
type Component struct {
	message *StatusMessage
	width   int

	page  int
	pages int
	title string

	// Timer for clearing messages
	clearAfter time.Duration
}

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 5 * time.Second,
	}
}

// SetPage sets the page shown on the left; index is zero-based.
func (c *Component) SetPage(index, count int, title string) {
	c.page, c.pages, c.title = index, count, title
}

// SetMessage sets a status message with the given type
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	stamp := time.Now()
	c.message = &StatusMessage{
		Content:   content,
		Type:      msgType,
		Timestamp: stamp,
	}
	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: stamp}
	})
}

func (c *Component) ShowInfo(message string) tea.Cmd    { return c.SetMessage(message, Info) }
func (c *Component) ShowWarning(message string) tea.Cmd { return c.SetMessage(message, Warning) }
func (c *Component) ShowError(message string) tea.Cmd   { return c.SetMessage(message, Error) }
func (c *Component) ShowSuccess(message string) tea.Cmd { return c.SetMessage(message, Success) }

// Message returns the message on display, if any.
func (c *Component) Message() *StatusMessage {
	return c.message
}

// SetSize implements core.Sizeable.
func (c *Component) SetSize(width, _ int) tea.Cmd {
	c.width = width
	return nil
}

// Height implements core.Fixed.
func (c *Component) Height() int {
	return 1
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	timestamp time.Time
}

// Init implements core.Component.
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update clears expired messages.
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	if msg, ok := msg.(clearMessageMsg); ok {
		// Only clear if this is for the current message
		if c.message != nil && msg.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	}
	return c, nil
}

// View renders the bar at its full width.
func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}
	theme := styles.CurrentTheme()
	bar := lipgloss.NewStyle().
		Width(c.width).
		MaxHeight(1).
		Background(theme.BgSubtle).
		Foreground(theme.FgBase).
		Padding(0, 1)
	available := c.width - 2

	left := styles.RenderThemeGradient("swipetabs", true)
	if c.pages > 0 {
		left += " " + theme.S().Muted.Render(fmt.Sprintf("%d/%d", c.page+1, c.pages))
		if c.title != "" {
			left += " " + c.title
		}
	}
	right := c.formatMessage()

	// The message wins space over the page title.
	if rw := ansi.StringWidth(right); rw > available/2 && rw > 40 {
		right = ansi.Truncate(right, max(available/2, 40), "…")
	}
	if room := available - ansi.StringWidth(right) - 1; ansi.StringWidth(left) > room {
		left = ansi.Truncate(left, max(room, 0), "…")
	}

	content := left
	if right != "" {
		gap := max(1, available-ansi.StringWidth(left)-ansi.StringWidth(right))
		content += strings.Repeat(" ", gap) + right
	}
	return bar.Render(content)
}

// formatMessage formats the status message with appropriate styling
func (c *Component) formatMessage() string {
	if c.message == nil {
		return ""
	}
	s := styles.CurrentTheme().S()
	switch c.message.Type {
	case Success:
		return s.Success.Render("✓ " + c.message.Content)
	case Warning:
		return s.Warning.Render("! " + c.message.Content)
	case Error:
		return s.Error.Render("✗ " + c.message.Content)
	default:
		return s.Info.Render(c.message.Content)
	}
}
