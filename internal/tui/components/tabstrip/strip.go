// Package tabstrip implements a horizontally scrolling strip of tabs that
// follows a pager. Every tab has three resting positions (for the previous,
// the selected and the next page) and is interpolated between them while the
// pager is dragged, so the strip slides along with the content instead of
// jumping when a new page is selected.
package tabstrip

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/billie-coop/swipetabs/internal/tui/components/pager"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// PageProvider is the page sequence the strip mirrors.
type PageProvider interface {
	Count() int
}

// TitleProvider is a PageProvider that can name its pages. Bind requires it.
type TitleProvider interface {
	PageProvider
	TitleAt(index int) string
}

// Host is the pager the strip follows.
type Host interface {
	// ScrollOffset is the live horizontal scroll offset in cells.
	ScrollOffset() int
	// ViewportWidth is the width of one page in cells.
	ViewportWidth() int
}

// Phase is the gesture state of the strip.
type Phase int

const (
	// Idle means every tab rests on its current target.
	Idle Phase = iota
	// Scrolling means tabs are being interpolated by a pager gesture.
	Scrolling
	// Selecting means a new page was selected and the tabs have not caught
	// up with their new targets yet.
	Selecting
)

func (p Phase) String() string {
	switch p {
	case Scrolling:
		return "scrolling"
	case Selecting:
		return "selecting"
	default:
		return "idle"
	}
}

// Model is the strip controller. It owns the tabs and the style; the host
// pager drives it through ScrolledMsg, SelectedMsg and SettledMsg.
type Model struct {
	cfg    StripConfig
	pal    palette
	keys   KeyMap
	logger *slog.Logger

	host     Host
	provider TitleProvider
	bound    bool

	tabs    []*Tab
	widths  []int
	targets []Targets

	selected int
	phase    Phase
	dir      Direction
	progress float64
	pressed  int
	width    int
}

// Option configures a Model.
type Option func(*Model)

// WithConfig sets the initial style.
func WithConfig(cfg StripConfig) Option {
	return func(m *Model) { m.cfg = cfg }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// New creates an unbound strip following host.
func New(host Host, opts ...Option) (*Model, error) {
	m := &Model{
		cfg:     DefaultStripConfig(),
		keys:    DefaultKeyMap(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		host:    host,
		pressed: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid strip config: %w", err)
	}
	pal, _ := m.cfg.palette()
	m.pal = pal
	return m, nil
}

// Bind creates one tab per page of provider and places them around initial
// without animation. Binding again discards the previous tabs.
func (m *Model) Bind(provider PageProvider, initial int) error {
	titles, ok := provider.(TitleProvider)
	if !ok {
		return fmt.Errorf("bind %T: page provider has no TitleAt: %w", provider, ErrContractViolation)
	}
	if m.phase == Scrolling {
		return fmt.Errorf("bind during a scroll gesture: %w", ErrPrecondition)
	}
	count := titles.Count()
	if count <= 0 {
		return fmt.Errorf("bind %T: no pages: %w", provider, ErrPrecondition)
	}
	if initial < 0 || initial >= count {
		return fmt.Errorf("bind: initial page %d out of range [0,%d): %w", initial, count, ErrPrecondition)
	}

	m.provider = titles
	m.tabs = make([]*Tab, count)
	for i := range m.tabs {
		m.tabs[i] = newTab(i, titles.TitleAt(i))
	}
	m.widths = make([]int, count)
	m.targets = make([]Targets, count)
	m.selected = initial
	m.pressed = -1
	m.bound = true
	m.settle()
	m.restyle()

	m.logger.Debug("tab strip bound", "pages", count, "selected", initial)
	return nil
}

// OnPageScroll interpolates every tab for the pager's current scroll state.
// It is called for every frame of a gesture and does not allocate.
func (m *Model) OnPageScroll(position int, fraction float64) error {
	if m.host == nil {
		return fmt.Errorf("page scroll: no host pager: %w", ErrPrecondition)
	}
	return m.OnPageScrollAt(m.host.ScrollOffset(), m.host.ViewportWidth(), position, fraction)
}

// OnPageScrollAt is OnPageScroll for a scroll offset and page width captured
// together with position and fraction.
func (m *Model) OnPageScrollAt(offset, viewportWidth, position int, fraction float64) error {
	if err := m.checkIndex(position); err != nil {
		return fmt.Errorf("page scroll: %w", err)
	}

	m.dir, m.progress = ResolveDirection(offset, m.selected, viewportWidth, fraction)
	if m.dir == Center {
		m.phase = Idle
	} else {
		m.phase = Scrolling
	}
	m.relayout()
	return nil
}

// OnPageSelected retargets the tabs around index. Layout positions are left
// alone; the scroll that follows carries the tabs to their new targets.
func (m *Model) OnPageSelected(index int) error {
	if err := m.checkIndex(index); err != nil {
		return fmt.Errorf("page selected: %w", err)
	}
	m.selected = index
	m.phase = Selecting
	m.dir, m.progress = Center, 0
	m.recompute()

	m.logger.Debug("page selected", "index", index)
	return nil
}

// OnScrollSettled ends a gesture and rests every tab on its current target.
func (m *Model) OnScrollSettled() error {
	if !m.bound {
		return fmt.Errorf("scroll settled: strip not bound: %w", ErrPrecondition)
	}
	m.settle()
	m.relayout()
	return nil
}

// RefreshTitles re-reads every label from the provider and snaps the strip to
// its new layout. The page count must not have changed; rebind for that.
func (m *Model) RefreshTitles() error {
	if !m.bound {
		return fmt.Errorf("refresh titles: strip not bound: %w", ErrPrecondition)
	}
	if n := m.provider.Count(); n != len(m.tabs) {
		return fmt.Errorf("refresh titles: page count changed from %d to %d, rebind instead: %w",
			len(m.tabs), n, ErrPrecondition)
	}
	for i, t := range m.tabs {
		t.label = m.provider.TitleAt(i)
	}
	m.settle()
	m.restyle()
	return nil
}

// ApplyConfig replaces the whole style at once, then re-measures and lays
// the strip out again.
func (m *Model) ApplyConfig(cfg StripConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid strip config: %w", err)
	}
	pal, _ := cfg.palette()
	m.cfg = cfg
	m.pal = pal
	if m.bound {
		m.restyle()
	}
	return nil
}

// Config returns a copy of the current style.
func (m *Model) Config() StripConfig {
	return m.cfg
}

// SetTabPaddingLeft sets the cells before each label.
func (m *Model) SetTabPaddingLeft(padding int) error {
	cfg := m.cfg
	cfg.TabPaddingLeft = padding
	return m.ApplyConfig(cfg)
}

// SetTabPaddingTop sets the blank rows above the labels.
func (m *Model) SetTabPaddingTop(padding int) error {
	cfg := m.cfg
	cfg.TabPaddingTop = padding
	return m.ApplyConfig(cfg)
}

// SetTabPaddingRight sets the cells after each label.
func (m *Model) SetTabPaddingRight(padding int) error {
	cfg := m.cfg
	cfg.TabPaddingRight = padding
	return m.ApplyConfig(cfg)
}

// SetTabPaddingBottom sets the blank rows below the labels.
func (m *Model) SetTabPaddingBottom(padding int) error {
	cfg := m.cfg
	cfg.TabPaddingBottom = padding
	return m.ApplyConfig(cfg)
}

// SetTabPadding sets all four paddings in one relayout.
func (m *Model) SetTabPadding(left, top, right, bottom int) error {
	cfg := m.cfg
	cfg.TabPaddingLeft = left
	cfg.TabPaddingTop = top
	cfg.TabPaddingRight = right
	cfg.TabPaddingBottom = bottom
	return m.ApplyConfig(cfg)
}

// SetBackgroundColor sets the strip background.
func (m *Model) SetBackgroundColor(color string) error {
	cfg := m.cfg
	cfg.BackgroundColor = color
	return m.ApplyConfig(cfg)
}

// SetBackgroundColorPressed sets the background of a pressed tab, blended over
// the strip background when it has an alpha channel.
func (m *Model) SetBackgroundColorPressed(color string) error {
	cfg := m.cfg
	cfg.BackgroundColorPressed = color
	return m.ApplyConfig(cfg)
}

// SetTextSize sets the label size; sizes from BoldTextSize up render bold.
func (m *Model) SetTextSize(size float64) error {
	cfg := m.cfg
	cfg.TextSize = size
	return m.ApplyConfig(cfg)
}

// SetTextColor sets the label color away from the center.
func (m *Model) SetTextColor(color string) error {
	cfg := m.cfg
	cfg.TextColor = color
	return m.ApplyConfig(cfg)
}

// SetTextColorCenter sets the label color of the centered tab.
func (m *Model) SetTextColorCenter(color string) error {
	cfg := m.cfg
	cfg.TextColorCenter = color
	return m.ApplyConfig(cfg)
}

// SetLineColor sets the underline color of the centered tab.
func (m *Model) SetLineColor(color string) error {
	cfg := m.cfg
	cfg.LineColor = color
	return m.ApplyConfig(cfg)
}

// SetLineHeight sets the underline height in rows.
func (m *Model) SetLineHeight(height int) error {
	cfg := m.cfg
	cfg.LineHeight = height
	return m.ApplyConfig(cfg)
}

// SetOutsideOffset sets how far off-screen tabs are parked; negative means
// the strip width.
func (m *Model) SetOutsideOffset(offset int) error {
	cfg := m.cfg
	cfg.OutsideOffset = offset
	return m.ApplyConfig(cfg)
}

// SetSize implements core.Sizeable. The strip's height follows its style, so
// only the width is used.
func (m *Model) SetSize(width, _ int) tea.Cmd {
	m.width = max(0, width)
	if m.bound {
		m.restyle()
	}
	return nil
}

// Height is the number of rows the strip renders.
func (m *Model) Height() int {
	return m.cfg.height()
}

func (m *Model) Width() int           { return m.width }
func (m *Model) Bound() bool          { return m.bound }
func (m *Model) Selected() int        { return m.selected }
func (m *Model) Phase() Phase         { return m.phase }
func (m *Model) Direction() Direction { return m.dir }
func (m *Model) Len() int             { return len(m.tabs) }
func (m *Model) KeyMap() KeyMap       { return m.keys }

// Tab returns the tab at index, or nil.
func (m *Model) Tab(index int) *Tab {
	if index < 0 || index >= len(m.tabs) {
		return nil
	}
	return m.tabs[index]
}

// Init implements core.Component.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles pager notifications, tab presses and tab keys. Mouse
// coordinates are relative to the strip's top-left corner.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var err error
	switch msg := msg.(type) {
	case pager.ScrolledMsg:
		if msg.Width > 0 {
			err = m.OnPageScrollAt(msg.Offset, msg.Width, msg.Position, msg.Fraction)
		} else {
			err = m.OnPageScroll(msg.Position, msg.Fraction)
		}
	case pager.SelectedMsg:
		err = m.OnPageSelected(msg.Index)
	case pager.SettledMsg:
		err = m.OnScrollSettled()
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			m.press(msg.X, msg.Y)
		}
	case tea.MouseReleaseMsg:
		return m, m.release(msg.X, msg.Y)
	case tea.KeyPressMsg:
		if !m.bound {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.PrevTab):
			return m, m.request(m.selected - 1)
		case key.Matches(msg, m.keys.NextTab):
			return m, m.request(m.selected + 1)
		}
	}
	if err != nil {
		m.logger.Error("tab strip callback rejected", "error", err)
	}
	return m, nil
}

// TabAt returns the index of the tab drawn at column x, or -1. Later tabs
// are painted over earlier ones, so they win.
func (m *Model) TabAt(x int) int {
	if x < 0 || x >= m.width {
		return -1
	}
	for i := len(m.tabs) - 1; i >= 0; i-- {
		t := m.tabs[i]
		if p := t.cell(); x >= p && x < p+t.width {
			return i
		}
	}
	return -1
}

func (m *Model) press(x, y int) {
	m.clearPressed()
	if y < 0 || y >= m.Height() {
		return
	}
	if i := m.TabAt(x); i >= 0 {
		m.pressed = i
		m.tabs[i].pressed = true
	}
}

func (m *Model) release(x, y int) tea.Cmd {
	pressed := m.pressed
	m.clearPressed()
	if pressed < 0 || y < 0 || y >= m.Height() || m.TabAt(x) != pressed {
		return nil
	}
	return m.request(pressed)
}

func (m *Model) clearPressed() {
	if m.pressed >= 0 && m.pressed < len(m.tabs) {
		m.tabs[m.pressed].pressed = false
	}
	m.pressed = -1
}

// request asks the host to show a page.
func (m *Model) request(index int) tea.Cmd {
	if index < 0 || index >= len(m.tabs) {
		return nil
	}
	return func() tea.Msg {
		return pager.RequestPageMsg{Index: index}
	}
}

func (m *Model) checkIndex(index int) error {
	if !m.bound {
		return fmt.Errorf("strip not bound: %w", ErrPrecondition)
	}
	if index < 0 || index >= len(m.tabs) {
		return fmt.Errorf("index %d out of range [0,%d): %w", index, len(m.tabs), ErrPrecondition)
	}
	return nil
}

func (m *Model) geometry() Geometry {
	outside := m.cfg.OutsideOffset
	if outside < 0 {
		outside = m.width
	}
	return Geometry{
		StripWidth:    m.width,
		OutsideOffset: outside,
		PaddingLeft:   m.cfg.TabPaddingLeft,
		PaddingRight:  m.cfg.TabPaddingRight,
	}
}

// restyle re-measures every tab, recomputes targets and lays out again.
func (m *Model) restyle() {
	for _, t := range m.tabs {
		t.measure(m.cfg)
	}
	m.recompute()
	m.relayout()
}

func (m *Model) recompute() {
	for i, t := range m.tabs {
		m.widths[i] = t.width
	}
	computeTargets(m.targets, m.selected, m.widths, m.geometry())
	for i, t := range m.tabs {
		t.targets = m.targets[i]
	}
}

// relayout places every tab for the current gesture state and updates its
// highlight. With no gesture, tabs rest on their current targets.
func (m *Model) relayout() {
	for _, t := range m.tabs {
		t.layoutPos = Step(t.targets, m.progress, m.dir)
		t.highlight = Highlight(t.cell(), t.width, m.width)
	}
}

func (m *Model) settle() {
	m.phase = Idle
	m.dir = Center
	m.progress = 0
}

func roundPos(f float64) int {
	return int(math.Round(f))
}
