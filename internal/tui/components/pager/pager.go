// Package pager shows one page at a time in a row of pages that scrolls
// horizontally. Page turns are animated and pages can be dragged with the
// mouse; every change of the horizontal offset is reported as a ScrolledMsg
// so that a tab strip can follow it.
package pager

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/billie-coop/swipetabs/internal/tui/components/core"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	timerID = "pager"

	DefaultFrames        = 8
	DefaultFrameInterval = 16 * time.Millisecond
)

// Source supplies page bodies.
type Source interface {
	Count() int
	Body(index int) string
}

// RenderFunc turns a page body into the text shown for it at width.
type RenderFunc func(body string, width int) string

// Model is a horizontal pager.
type Model struct {
	source Source
	render RenderFunc
	keys   KeyMap
	logger *slog.Logger

	pages    []viewport.Model
	rendered []bool

	width  int
	height int

	offset  int
	current int

	frames int
	timer  *core.Timer
	anim   animation
	drag   drag
}

type animation struct {
	active   bool
	from, to int
}

type drag struct {
	active      bool
	startX      int
	startOffset int
}

// Option configures a Model.
type Option func(*Model)

// WithRenderer sets how page bodies are rendered. The default shows them
// as plain text.
func WithRenderer(render RenderFunc) Option {
	return func(m *Model) { m.render = render }
}

func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithAnimation sets the number of frames of a page turn and the delay
// between them. Zero frames turns pages without animation.
func WithAnimation(frames int, interval time.Duration) Option {
	return func(m *Model) {
		m.frames = max(0, frames)
		m.timer.SetInterval(interval)
	}
}

// New creates a pager over source showing the first page.
func New(source Source, opts ...Option) *Model {
	m := &Model{
		source: source,
		render: func(body string, _ int) string { return body },
		keys:   DefaultKeyMap(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		frames: DefaultFrames,
		timer:  core.NewTimer(timerID, DefaultFrameInterval),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Reload()
	return m
}

// Init implements core.Component.
func (m *Model) Init() tea.Cmd {
	return nil
}

// ScrollOffset is the horizontal offset of the row of pages in cells.
func (m *Model) ScrollOffset() int {
	return m.offset
}

// ViewportWidth is the width of one page in cells.
func (m *Model) ViewportWidth() int {
	return m.width
}

func (m *Model) Current() int    { return m.current }
func (m *Model) Count() int      { return len(m.pages) }
func (m *Model) Animating() bool { return m.anim.active }
func (m *Model) Dragging() bool  { return m.drag.active }
func (m *Model) KeyMap() KeyMap  { return m.keys }

// SetAnimation changes the page turn animation from the next turn on.
func (m *Model) SetAnimation(frames int, interval time.Duration) {
	m.frames = max(0, frames)
	m.timer.SetInterval(interval)
}

// Reload re-reads the page count from the source and drops every rendered
// page. The current page is kept if it still exists.
func (m *Model) Reload() {
	n := max(0, m.source.Count())
	m.pages = make([]viewport.Model, n)
	m.rendered = make([]bool, n)
	for i := range m.pages {
		m.pages[i] = m.newViewport()
	}
	m.stop()
	m.current = min(m.current, max(0, n-1))
	m.offset = m.current * m.width
}

// Jump shows page index at once, cancelling any turn or drag. Nothing is
// reported; the caller brings listeners up to date itself.
func (m *Model) Jump(index int) {
	m.stop()
	m.current = max(0, min(index, len(m.pages)-1))
	m.offset = m.current * m.width
}

// SetSize implements core.Sizeable. A turn in progress is finished at once.
func (m *Model) SetSize(width, height int) tea.Cmd {
	width, height = max(0, width), max(0, height)
	if width == m.width && height == m.height {
		return nil
	}
	m.width, m.height = width, height
	for i := range m.pages {
		m.pages[i] = m.newViewport()
		m.rendered[i] = false
	}

	wasMoving := m.anim.active || m.drag.active
	m.stop()
	m.offset = m.current * m.width
	if wasMoving {
		return m.emit(SettledMsg{Index: m.current})
	}
	return nil
}

func (m *Model) newViewport() viewport.Model {
	vp := viewport.New(
		viewport.WithWidth(m.width),
		viewport.WithHeight(m.height),
	)
	vp.MouseWheelEnabled = true
	return vp
}

// SetPage scrolls to page index. It reports SelectedMsg right away when
// the page changes and animates the scroll toward it.
func (m *Model) SetPage(index int) tea.Cmd {
	if len(m.pages) == 0 {
		return nil
	}
	index = max(0, min(index, len(m.pages)-1))
	m.drag.active = false

	var cmds []tea.Cmd
	if index != m.current {
		m.current = index
		m.logger.Debug("page selected", "index", index)
		cmds = append(cmds, m.emit(SelectedMsg{Index: index}))
	}
	cmds = append(cmds, m.animateTo(index*m.width))
	return tea.Batch(cmds...)
}

// animateTo starts a page turn from the current offset.
func (m *Model) animateTo(target int) tea.Cmd {
	if m.offset == target {
		if m.anim.active {
			m.stop()
			return m.emit(SettledMsg{Index: m.current})
		}
		return nil
	}
	if m.frames == 0 || m.width == 0 {
		m.stop()
		m.offset = target
		return tea.Batch(m.scrolled(), m.emit(SettledMsg{Index: m.current}))
	}
	m.anim = animation{active: true, from: m.offset, to: target}
	return m.timer.Start()
}

func (m *Model) stop() {
	m.anim = animation{}
	m.drag = drag{}
	m.timer.Stop()
}

// frame advances the animation by one tick.
func (m *Model) frame(n int) tea.Cmd {
	if n >= m.frames {
		m.offset = m.anim.to
		m.stop()
		return tea.Batch(m.scrolled(), m.emit(SettledMsg{Index: m.current}))
	}
	t := easeOut(float64(n) / float64(m.frames))
	m.offset = m.anim.from + int(math.Round(float64(m.anim.to-m.anim.from)*t))
	return tea.Batch(m.scrolled(), m.timer.Next())
}

// easeOut is a cubic ease-out curve on [0,1].
func easeOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// scrolled reports the current offset as a page index and the fraction of
// the following page that has slid in.
func (m *Model) scrolled() tea.Cmd {
	msg := ScrolledMsg{Offset: m.offset, Width: m.width}
	if m.width > 0 {
		msg.Position = m.offset / m.width
		msg.Fraction = float64(m.offset%m.width) / float64(m.width)
	}
	return m.emit(msg)
}

func (m *Model) emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *Model) maxOffset() int {
	return max(0, len(m.pages)-1) * m.width
}

// Update handles page requests, animation ticks, drags and keys. Mouse
// coordinates are relative to the pager's top-left corner.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if tick, ok := m.timer.Owns(msg); ok {
		if !m.anim.active {
			return m, nil
		}
		return m, m.frame(tick.Frame)
	}

	switch msg := msg.(type) {
	case RequestPageMsg:
		return m, m.SetPage(msg.Index)

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft || len(m.pages) == 0 {
			return m, nil
		}
		m.anim = animation{}
		m.timer.Stop()
		m.drag = drag{active: true, startX: msg.X, startOffset: m.offset}
		return m, nil

	case tea.MouseMotionMsg:
		if !m.drag.active {
			return m, nil
		}
		offset := m.drag.startOffset + m.drag.startX - msg.X
		offset = max(0, min(offset, m.maxOffset()))
		if offset == m.offset {
			return m, nil
		}
		m.offset = offset
		return m, m.scrolled()

	case tea.MouseReleaseMsg:
		if !m.drag.active {
			return m, nil
		}
		m.drag.active = false
		return m, m.SetPage(m.dragTarget())

	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelLeft:
			return m, m.SetPage(m.current - 1)
		case tea.MouseWheelRight:
			return m, m.SetPage(m.current + 1)
		}
		return m, m.forward(msg)

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.PrevPage):
			return m, m.SetPage(m.current - 1)
		case key.Matches(msg, m.keys.NextPage):
			return m, m.SetPage(m.current + 1)
		case key.Matches(msg, m.keys.FirstPage):
			return m, m.SetPage(0)
		case key.Matches(msg, m.keys.LastPage):
			return m, m.SetPage(len(m.pages) - 1)
		}
		return m, m.forward(msg)
	}
	return m, nil
}

// dragTarget picks the page a released drag settles on. A third of a page
// is enough to turn it.
func (m *Model) dragTarget() int {
	if m.width == 0 {
		return m.current
	}
	delta := m.offset - m.current*m.width
	switch {
	case delta > m.width/3:
		return m.current + 1 + (delta-m.width/3)/m.width
	case delta < -m.width/3:
		return m.current - 1 + (delta+m.width/3)/m.width
	}
	return m.current
}

// forward hands a message to the current page's viewport.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if len(m.pages) == 0 || m.anim.active {
		return nil
	}
	m.ensureRendered(m.current)
	var cmd tea.Cmd
	m.pages[m.current], cmd = m.pages[m.current].Update(msg)
	return cmd
}

func (m *Model) ensureRendered(i int) {
	if m.rendered[i] {
		return
	}
	m.pages[i].SetContent(m.render(m.source.Body(i), m.width))
	m.rendered[i] = true
}

// View draws the visible part of the row of pages. Mid-scroll the right
// edge of one page and the left edge of the next are shown side by side.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if len(m.pages) == 0 {
		return blank(m.width, m.height)
	}

	pos := min(m.offset/m.width, len(m.pages)-1)
	shift := m.offset - pos*m.width
	m.ensureRendered(pos)
	left := lines(m.pages[pos].View(), m.width, m.height)
	if shift == 0 || pos+1 >= len(m.pages) {
		return strings.Join(left, "\n")
	}

	m.ensureRendered(pos + 1)
	right := lines(m.pages[pos+1].View(), m.width, m.height)
	out := make([]string, m.height)
	for i := range out {
		out[i] = ansi.TruncateLeft(left[i], shift, "") + ansi.Truncate(right[i], shift, "")
	}
	return strings.Join(out, "\n")
}

// lines splits a page view into exactly height lines of exactly width cells.
func lines(view string, width, height int) []string {
	src := strings.Split(view, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(src) {
			line = ansi.Truncate(src[i], width, "")
		}
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return out
}

func blank(width, height int) string {
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
