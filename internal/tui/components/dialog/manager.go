package dialog

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Kind identifies a dialog
type Kind string

const (
	HelpKind  Kind = "help"
	JumpKind  Kind = "jump"
	ThemeKind Kind = "theme"
)

// Manager owns the application's dialogs and routes input to the open one.
type Manager struct {
	dialogs map[Kind]Dialog
	active  Kind
	logger  *slog.Logger
	width   int
	height  int
}

// NewManager creates a manager with no dialogs registered.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		dialogs: make(map[Kind]Dialog),
		logger:  logger,
	}
}

// Register adds or replaces a dialog.
func (m *Manager) Register(kind Kind, d Dialog) {
	m.dialogs[kind] = d
	d.SetSize(m.width, m.height)
}

// Get returns the dialog registered under kind.
func (m *Manager) Get(kind Kind) Dialog {
	return m.dialogs[kind]
}

// Init initializes all dialogs
func (m *Manager) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, d := range m.dialogs {
		cmds = append(cmds, d.Init())
	}
	return tea.Batch(cmds...)
}

// Update forwards msg to the open dialog. When the dialog closes, a ClosedMsg
// carrying its result follows.
func (m *Manager) Update(msg tea.Msg) (*Manager, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		return m, m.SetSize(wsm.Width, wsm.Height)
	}
	if m.active == "" {
		return m, nil
	}
	d, ok := m.dialogs[m.active]
	if !ok {
		m.active = ""
		return m, nil
	}

	d, cmd := d.Update(msg)
	m.dialogs[m.active] = d
	if d.IsOpen() {
		return m, cmd
	}

	kind := m.active
	m.active = ""
	m.logger.Debug("dialog closed", "dialog", kind, "cancelled", d.IsCancelled())
	closed := ClosedMsg{Kind: kind, Result: d.Result(), Cancelled: d.IsCancelled()}
	return m, tea.Batch(cmd, func() tea.Msg { return closed })
}

// View renders the active dialog
func (m *Manager) View() string {
	if d, ok := m.dialogs[m.active]; ok {
		return d.View()
	}
	return ""
}

// SetSize sets the size for all dialogs
func (m *Manager) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	var cmds []tea.Cmd
	for _, d := range m.dialogs {
		cmds = append(cmds, d.SetSize(width, height))
	}
	return tea.Batch(cmds...)
}

// Open opens a dialog, closing any other one first.
func (m *Manager) Open(kind Kind) tea.Cmd {
	d, ok := m.dialogs[kind]
	if !ok {
		m.logger.Warn("unknown dialog", "dialog", kind)
		return nil
	}
	var cmds []tea.Cmd
	if m.active != "" && m.active != kind {
		cmds = append(cmds, m.CloseActive())
	}
	m.active = kind
	m.logger.Debug("dialog opened", "dialog", kind)
	cmds = append(cmds, d.Open())
	return tea.Batch(cmds...)
}

// CloseActive closes the open dialog without emitting a ClosedMsg.
func (m *Manager) CloseActive() tea.Cmd {
	d, ok := m.dialogs[m.active]
	m.active = ""
	if !ok {
		return nil
	}
	return d.Close()
}

// IsOpen returns whether any dialog is open
func (m *Manager) IsOpen() bool {
	return m.active != ""
}

// Active returns the open dialog's kind, or "" when none is open.
func (m *Manager) Active() Kind {
	return m.active
}
