package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/billie-coop/swipetabs/internal/config"
	"github.com/billie-coop/swipetabs/internal/pages"
	"github.com/billie-coop/swipetabs/internal/state"
	"github.com/billie-coop/swipetabs/internal/tui/components/core"
	"github.com/billie-coop/swipetabs/internal/tui/components/dialog"
	"github.com/billie-coop/swipetabs/internal/tui/components/pager"
	"github.com/billie-coop/swipetabs/internal/tui/components/status"
	"github.com/billie-coop/swipetabs/internal/tui/components/tabstrip"
	"github.com/billie-coop/swipetabs/internal/tui/events"
	"github.com/billie-coop/swipetabs/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Layout row ids.
const (
	rowStrip  = "strip"
	rowPages  = "pages"
	rowHelp   = "help"
	rowStatus = "status"
)

// Options wires a Model to its collaborators.
type Options struct {
	Config *config.Manager
	Pages  *pages.Directory
	// Store persists the strip between runs. Nil disables persistence.
	Store *state.StripStore
	// Broker delivers file and status events. Nil disables them.
	Broker *events.Broker
	Logger *slog.Logger
	// Page is the page to open, or -1 to use the saved position.
	Page int
}

// Model is the root bubbletea model: a tab strip over a pager of markdown
// pages, with a help line and a status bar below.
type Model struct {
	width  int
	height int

	// Components
	layout    *core.Stack
	strip     *tabstrip.Model
	pager     *pager.Model
	helpBar   *helpBar
	statusBar *status.Component
	dialogs   *dialog.Manager
	jump      *dialog.JumpDialog

	// Mouse events go to the row that received the press until release.
	mouseOwner string

	config *config.Manager
	pages  *pages.Directory
	store  *state.StripStore
	themes *styles.Manager
	keys   KeyMap
	logger *slog.Logger

	// Event system
	broker   *events.Broker
	eventSub <-chan events.Event
}

// New builds the model and binds the strip to the pages. The saved strip
// state, when there is one, restores the page and the strip style.
func New(opts Options) (*Model, error) {
	if opts.Config == nil || opts.Pages == nil {
		return nil, errors.New("tui: config and pages are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg := opts.Config.Get()

	themes := styles.NewManager(cfg.UI.Theme)
	styles.SetDefaultManager(themes)

	pg := pager.New(opts.Pages,
		pager.WithRenderer(styles.RenderMarkdown),
		pager.WithAnimation(cfg.Pager.AnimationFrames, cfg.Pager.FrameInterval()),
		pager.WithLogger(logger.With("component", "pager")),
	)
	strip, err := tabstrip.New(pg,
		tabstrip.WithConfig(cfg.Strip),
		tabstrip.WithLogger(logger.With("component", "tabstrip")),
	)
	if err != nil {
		return nil, err
	}

	m := &Model{
		layout:    core.NewStack(),
		strip:     strip,
		pager:     pg,
		statusBar: status.New(),
		dialogs:   dialog.NewManager(logger.With("component", "dialog")),
		jump:      dialog.NewJumpDialog(),
		config:    opts.Config,
		pages:     opts.Pages,
		store:     opts.Store,
		themes:    themes,
		keys:      DefaultKeyMap(),
		logger:    logger,
		broker:    opts.Broker,
	}
	m.helpBar = newHelpBar(m.keys, strip.KeyMap(), pg.KeyMap())

	m.layout.Add(rowStrip, strip)
	m.layout.Add(rowPages, pg)
	m.layout.Add(rowHelp, m.helpBar)
	m.layout.Add(rowStatus, m.statusBar)
	m.applyUI(cfg.UI)

	help := dialog.NewHelpDialog()
	help.AddSection("Application", m.keys)
	help.AddSection("Tabs", strip.KeyMap())
	help.AddSection("Pages", pg.KeyMap())
	m.dialogs.Register(dialog.HelpKind, help)
	m.dialogs.Register(dialog.JumpKind, m.jump)
	m.dialogs.Register(dialog.ThemeKind, dialog.NewThemeSwitcher(themes, logger.With("component", "theme")))

	if err := m.bind(opts.Page); err != nil {
		return nil, err
	}
	if m.broker != nil {
		m.eventSub = m.broker.Subscribe()
	}
	return m, nil
}

// bind attaches the strip to the pages and picks the first page shown.
func (m *Model) bind(page int) error {
	count := m.pages.Count()
	var saved *tabstrip.SavedState
	if m.store != nil {
		s := m.store.Get()
		s.Position = m.store.Position(count)
		saved = &s
	}

	initial := 0
	switch {
	case page >= 0:
		initial = max(0, min(page, count-1))
	case saved != nil:
		initial = saved.Position
	}

	m.pager.Jump(initial)
	if err := m.strip.Bind(m.pages, initial); err != nil {
		return fmt.Errorf("bind tab strip: %w", err)
	}
	if saved != nil {
		saved.Position = initial
		if err := m.strip.RestoreState(*saved); err != nil {
			m.logger.Warn("saved strip state not restored", "error", err)
		}
	}
	m.jump.SetTitles(m.pages.Titles())
	m.syncStatus()
	return nil
}

// Init initializes the TUI model and all components
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	cmds = append(cmds, m.layout.Init())
	cmds = append(cmds, m.dialogs.Init())
	cmds = append(cmds, m.listenForEvents())
	cmds = append(cmds, m.statusBar.ShowInfo(fmt.Sprintf("%d pages from %s", m.pages.Count(), m.pages.Root())))
	return tea.Batch(cmds...)
}

// Update handles all TUI updates and routes to components
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if event, ok := msg.(events.Event); ok {
		return m, tea.Batch(m.handleEvent(event), m.listenForEvents())
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.resize()

	case dialog.ClosedMsg:
		return m, m.handleDialogClosed(msg)

	case pager.ScrolledMsg, pager.SelectedMsg, pager.SettledMsg:
		var cmd tea.Cmd
		m.strip, cmd = m.strip.Update(msg)
		if _, ok := msg.(pager.ScrolledMsg); !ok {
			m.syncStatus()
		}
		return m, cmd

	case tea.KeyPressMsg:
		if m.dialogs.IsOpen() {
			var cmd tea.Cmd
			m.dialogs, cmd = m.dialogs.Update(msg)
			return m, cmd
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.dialogs.IsOpen() {
			return m, nil
		}
		return m, m.handleMouse(msg)
	}

	// Everything else: page requests, animation ticks and status timers.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	cmds = append(cmds, cmd)
	m.statusBar, cmd = m.statusBar.Update(msg)
	cmds = append(cmds, cmd)
	if m.dialogs.IsOpen() {
		m.dialogs, cmd = m.dialogs.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveState()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m.dialogs.Open(dialog.HelpKind)
	case key.Matches(msg, m.keys.Jump):
		return m.dialogs.Open(dialog.JumpKind)
	case key.Matches(msg, m.keys.Theme):
		return m.dialogs.Open(dialog.ThemeKind)
	}

	var cmd tea.Cmd
	m.strip, cmd = m.strip.Update(msg)
	if cmd != nil {
		return cmd
	}
	m.pager, cmd = m.pager.Update(msg)
	return cmd
}

func (m *Model) handleDialogClosed(msg dialog.ClosedMsg) tea.Cmd {
	if msg.Kind != dialog.ThemeKind {
		return nil
	}
	// Previews switch the theme even when cancelled.
	m.rerender()
	if msg.Cancelled {
		return nil
	}
	name, _ := msg.Result.(string)
	if name == "" || name == m.config.Get().UI.Theme {
		return nil
	}
	if err := m.config.Set("ui.theme", name); err != nil {
		m.logger.Error("failed to save theme", "theme", name, "error", err)
		return m.statusBar.ShowError("theme not saved: " + err.Error())
	}
	return m.statusBar.ShowSuccess("theme " + name)
}

// syncStatus shows the selected page in the status bar.
func (m *Model) syncStatus() {
	i := m.strip.Selected()
	m.statusBar.SetPage(i, m.pages.Count(), m.pages.TitleAt(i))
}

// saveState writes the strip state to the store, if there is one.
func (m *Model) saveState() {
	if m.store == nil || !m.strip.Bound() {
		return
	}
	if err := m.store.Set(m.strip.SaveState()); err != nil {
		m.logger.Error("failed to save strip state", "path", m.store.Path(), "error", err)
		return
	}
	m.logger.Debug("strip state saved", "position", m.strip.Selected())
}

// View renders the layout, or the open dialog over the whole screen.
func (m *Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("Loading...")
	}
	if m.dialogs.IsOpen() {
		if v := m.dialogs.View(); v != "" {
			return tea.NewView(v)
		}
	}
	return tea.NewView(m.layout.View())
}

// Strip exposes the tab strip.
func (m *Model) Strip() *tabstrip.Model { return m.strip }

// Pager exposes the pager.
func (m *Model) Pager() *pager.Model { return m.pager }

// Status exposes the status bar.
func (m *Model) Status() *status.Component { return m.statusBar }

// Dialogs exposes the dialog manager.
func (m *Model) Dialogs() *dialog.Manager { return m.dialogs }
