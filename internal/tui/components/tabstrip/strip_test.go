package tabstrip

import (
	"errors"
	"strings"
	"testing"

	"github.com/billie-coop/swipetabs/internal/tui/components/pager"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/require"
)

type titles []string

func (t titles) Count() int           { return len(t) }
func (t titles) TitleAt(i int) string { return t[i] }

type countOnly int

func (c countOnly) Count() int { return int(c) }

type fakeHost struct {
	offset int
	width  int
}

func (h *fakeHost) ScrollOffset() int  { return h.offset }
func (h *fakeHost) ViewportWidth() int { return h.width }

// labelOfWidth returns a label whose tab is width cells wide with the
// default padding.
func labelOfWidth(width int) string {
	return strings.Repeat("x", width-DefaultTabPaddingLeft-DefaultTabPaddingRight)
}

func newStrip(t *testing.T, host *fakeHost, width int) *Model {
	t.Helper()
	m, err := New(host)
	require.NoError(t, err)
	m.SetSize(width, 0)
	return m
}

func uniformTitles(n, width int) titles {
	out := make(titles, n)
	for i := range out {
		out[i] = labelOfWidth(width)
	}
	return out
}

func TestBind_RequiresTitles(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 100}, 100)

	err := m.Bind(countOnly(3), 0)
	require.ErrorIs(t, err, ErrContractViolation)
	require.Zero(t, m.Len())
	require.False(t, m.Bound())
}

func TestBind_InitialIndex(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		pages   int
		wantErr error
	}{
		{"first", 0, 3, nil},
		{"last", 2, 3, nil},
		{"negative", -1, 3, ErrPrecondition},
		{"past end", 3, 3, ErrPrecondition},
		{"no pages", 0, 0, ErrPrecondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newStrip(t, &fakeHost{width: 100}, 100)
			err := m.Bind(uniformTitles(tt.pages, 10), tt.initial)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.False(t, m.Bound())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.initial, m.Selected())
			require.Equal(t, tt.pages, m.Len())
		})
	}
}

func TestBind_SnapsToCurrent(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 300}, 300)
	require.NoError(t, m.Bind(uniformTitles(5, 60), 2))

	require.Equal(t, Idle, m.Phase())
	for i := 0; i < m.Len(); i++ {
		tab := m.Tab(i)
		require.Equal(t, float64(tab.CurrentPos()), tab.LayoutPos(), "tab %d", i)
		require.Equal(t, 60, tab.Width())
	}
	require.Equal(t, 120, m.Tab(2).CurrentPos())
	require.Equal(t, -DefaultTabPaddingLeft, m.Tab(1).CurrentPos())
	require.Equal(t, 300-60+DefaultTabPaddingRight, m.Tab(3).CurrentPos())
	require.Equal(t, 100, m.Tab(2).Highlight())
	require.Zero(t, m.Tab(1).Highlight())
}

func TestBind_Rebind(t *testing.T) {
	host := &fakeHost{width: 100}
	m := newStrip(t, host, 100)
	require.NoError(t, m.Bind(uniformTitles(5, 10), 3))
	require.NoError(t, m.Bind(titles{"a", "b"}, 1))

	require.Equal(t, 2, m.Len())
	require.Equal(t, "b", m.Tab(1).Label())
	require.Nil(t, m.Tab(2))
}

func TestBind_RejectedWhileScrolling(t *testing.T) {
	host := &fakeHost{width: 100}
	m := newStrip(t, host, 100)
	require.NoError(t, m.Bind(uniformTitles(3, 10), 1))

	host.offset = 130
	require.NoError(t, m.OnPageScroll(1, 0.3))
	require.Equal(t, Scrolling, m.Phase())

	err := m.Bind(uniformTitles(4, 10), 0)
	require.ErrorIs(t, err, ErrPrecondition)
	require.Equal(t, 3, m.Len())
}

func TestCallbacks_BeforeBind(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 100}, 100)

	require.ErrorIs(t, m.OnPageScroll(0, 0.5), ErrPrecondition)
	require.ErrorIs(t, m.OnPageSelected(0), ErrPrecondition)
	require.ErrorIs(t, m.OnScrollSettled(), ErrPrecondition)
	require.ErrorIs(t, m.RefreshTitles(), ErrPrecondition)
	require.Equal(t, Idle, m.Phase())
}

func TestCallbacks_OutOfRange(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 100}, 100)
	require.NoError(t, m.Bind(uniformTitles(3, 10), 1))

	require.ErrorIs(t, m.OnPageSelected(3), ErrPrecondition)
	require.ErrorIs(t, m.OnPageSelected(-1), ErrPrecondition)
	require.ErrorIs(t, m.OnPageScroll(7, 0), ErrPrecondition)
	require.Equal(t, 1, m.Selected())
}

func TestOnPageScroll_NoHost(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)
	m.SetSize(100, 0)
	require.NoError(t, m.Bind(uniformTitles(3, 10), 0))

	require.ErrorIs(t, m.OnPageScroll(0, 0.5), ErrPrecondition)
}

func TestSelectThenScrollLeft_Midpoint(t *testing.T) {
	host := &fakeHost{width: 100}
	m := newStrip(t, host, 300)
	require.NoError(t, m.Bind(titles{"alpha", "beta", "gamma", "delta", "epsilon"}, 0))

	// The pager is halfway from page 0 to page 1 when page 1 is selected.
	require.NoError(t, m.OnPageSelected(1))
	require.Equal(t, Selecting, m.Phase())
	host.offset = 50
	require.NoError(t, m.OnPageScroll(0, 0.5))

	require.Equal(t, Left, m.Direction())
	require.Equal(t, Scrolling, m.Phase())
	for i := 0; i < m.Len(); i++ {
		tab := m.Tab(i)
		mid := float64(tab.CurrentPos()+tab.NextPos()) / 2
		require.InDelta(t, mid, tab.LayoutPos(), 1e-9, "tab %d", i)
	}
}

func TestOnPageSelected_LeavesLayout(t *testing.T) {
	host := &fakeHost{width: 100}
	m := newStrip(t, host, 300)
	require.NoError(t, m.Bind(uniformTitles(5, 40), 2))

	before := make([]float64, m.Len())
	for i := range before {
		before[i] = m.Tab(i).LayoutPos()
	}
	require.NoError(t, m.OnPageSelected(3))
	for i := range before {
		require.Equal(t, before[i], m.Tab(i).LayoutPos(), "tab %d", i)
	}
	require.Equal(t, 130, m.Tab(3).CurrentPos())

	require.NoError(t, m.OnScrollSettled())
	require.Equal(t, Idle, m.Phase())
	require.Equal(t, 130.0, m.Tab(3).LayoutPos())
}

func TestOnPageScroll_Right(t *testing.T) {
	host := &fakeHost{width: 100}
	m := newStrip(t, host, 300)
	require.NoError(t, m.Bind(uniformTitles(5, 40), 2))

	host.offset = 200 + 100
	require.NoError(t, m.OnPageScroll(2, 1))
	require.Equal(t, Right, m.Direction())
	for i := 0; i < m.Len(); i++ {
		tab := m.Tab(i)
		require.Equal(t, float64(tab.PrevPos()), tab.LayoutPos(), "tab %d", i)
	}
	// The next tab reached the center.
	require.Equal(t, 100, m.Tab(3).Highlight())

	host.offset = 200
	require.NoError(t, m.OnPageScroll(2, 0))
	require.Equal(t, Idle, m.Phase())
	require.Equal(t, float64(m.Tab(3).CurrentPos()), m.Tab(3).LayoutPos())
}

func TestFewTabs(t *testing.T) {
	for n := 1; n < 5; n++ {
		host := &fakeHost{width: 80}
		m := newStrip(t, host, 80)
		require.NoError(t, m.Bind(uniformTitles(n, 12), n-1))

		for _, f := range []float64{0.25, 0.5, 1} {
			host.offset = (n-1)*80 - int(80*f)
			require.NoError(t, m.OnPageScroll(max(0, n-2), 1-f))
		}
		require.NoError(t, m.OnScrollSettled())
		require.Equal(t, 100, m.Tab(n-1).Highlight(), "n=%d", n)
	}
}

func TestZeroWidthStrip(t *testing.T) {
	host := &fakeHost{}
	m := newStrip(t, host, 0)
	require.NoError(t, m.Bind(uniformTitles(3, 10), 1))
	require.NoError(t, m.OnPageScroll(1, 0.5))

	for i := 0; i < m.Len(); i++ {
		require.Zero(t, m.Tab(i).Highlight())
		require.Equal(t, float64(m.Tab(i).CurrentPos()), m.Tab(i).LayoutPos())
	}
	require.NotPanics(t, func() { _ = m.View() })
}

func TestRefreshTitles(t *testing.T) {
	provider := titles{"one", "two", "three", "four"}
	m := newStrip(t, &fakeHost{width: 100}, 100)
	require.NoError(t, m.Bind(provider, 1))

	targets := func() []Targets {
		out := make([]Targets, m.Len())
		for i := range out {
			out[i] = m.Tab(i).Targets()
		}
		return out
	}

	require.NoError(t, m.RefreshTitles())
	first := targets()
	require.NoError(t, m.RefreshTitles())
	require.Equal(t, first, targets())

	provider[1] = "a much longer title"
	require.NoError(t, m.RefreshTitles())
	require.Equal(t, "a much longer title", m.Tab(1).Label())
	require.Equal(t, 4+len("a much longer title"), m.Tab(1).Width())
	require.Equal(t, float64(m.Tab(1).CurrentPos()), m.Tab(1).LayoutPos())
}

func TestRefreshTitles_CountChanged(t *testing.T) {
	provider := titles{"one", "two"}
	m := newStrip(t, &fakeHost{width: 100}, 100)
	require.NoError(t, m.Bind(provider, 0))

	m.provider = append(provider, "three")
	require.ErrorIs(t, m.RefreshTitles(), ErrPrecondition)
}

func TestSetters(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 100}, 100)
	require.NoError(t, m.Bind(titles{"abc", "defg", "hi"}, 1))

	require.NoError(t, m.SetTabPaddingLeft(5))
	require.Equal(t, 5+4+2, m.Tab(1).Width())
	require.NoError(t, m.SetTabPaddingRight(0))
	require.Equal(t, 5+4, m.Tab(1).Width())
	require.NoError(t, m.SetTabPadding(1, 1, 1, 1))
	require.Equal(t, 6, m.Tab(1).Width())
	require.Equal(t, 1+1+1+DefaultLineHeight, m.Height())
	require.NoError(t, m.SetTabPaddingTop(0))
	require.NoError(t, m.SetTabPaddingBottom(2))
	require.NoError(t, m.SetLineHeight(2))
	require.Equal(t, 0+1+2+2, m.Height())

	require.Equal(t, 50-3, m.Tab(1).CurrentPos())
	require.Equal(t, float64(m.Tab(1).CurrentPos()), m.Tab(1).LayoutPos())

	require.NoError(t, m.SetBackgroundColor("#101010"))
	require.NoError(t, m.SetBackgroundColorPressed("#20202080"))
	require.NoError(t, m.SetTextColor("#303030"))
	require.NoError(t, m.SetTextColorCenter("#404040"))
	require.NoError(t, m.SetLineColor("#505050"))
	require.NoError(t, m.SetTextSize(18))
	require.NoError(t, m.SetOutsideOffset(7))

	cfg := m.Config()
	require.Equal(t, "#101010", cfg.BackgroundColor)
	require.Equal(t, "#20202080", cfg.BackgroundColorPressed)
	require.Equal(t, "#303030", cfg.TextColor)
	require.Equal(t, "#404040", cfg.TextColorCenter)
	require.Equal(t, "#505050", cfg.LineColor)
	require.Equal(t, 18.0, cfg.TextSize)
	require.Equal(t, 7, cfg.OutsideOffset)
}

func TestSetters_Invalid(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 100}, 100)
	require.NoError(t, m.Bind(titles{"a", "b"}, 0))
	before := m.Config()

	require.Error(t, m.SetTextColor("green"))
	require.Error(t, m.SetLineHeight(-1))
	require.Error(t, m.SetTextSize(0))
	require.Error(t, m.SetTabPadding(-1, 0, 0, 0))
	require.Equal(t, before, m.Config())
}

func TestOutsideOffset_FollowsWidth(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 100}, 100)
	require.NoError(t, m.Bind(uniformTitles(7, 10), 3))
	require.Equal(t, 100+100, m.Tab(5).CurrentPos())

	m.SetSize(60, 0)
	require.Equal(t, 60+60, m.Tab(5).CurrentPos())

	require.NoError(t, m.SetOutsideOffset(5))
	require.Equal(t, 60+5, m.Tab(5).CurrentPos())
}

func TestMaxLabelWidth(t *testing.T) {
	cfg := DefaultStripConfig()
	cfg.MaxLabelWidth = 5
	m, err := New(&fakeHost{width: 100}, WithConfig(cfg))
	require.NoError(t, err)
	m.SetSize(100, 0)
	require.NoError(t, m.Bind(titles{"abcdefghij", "abc"}, 0))

	require.Equal(t, 4+5, m.Tab(0).Width())
	require.Equal(t, "abcdefghij", m.Tab(0).Label())
	require.Equal(t, 4+3, m.Tab(1).Width())
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultStripConfig()
	cfg.LineColor = "#12"
	_, err := New(nil, WithConfig(cfg))
	require.Error(t, err)
}

func TestUpdate_PagerMessages(t *testing.T) {
	host := &fakeHost{width: 100}
	m := newStrip(t, host, 300)
	require.NoError(t, m.Bind(uniformTitles(5, 40), 0))

	m, _ = m.Update(pager.SelectedMsg{Index: 1})
	require.Equal(t, 1, m.Selected())

	host.offset = 60
	m, _ = m.Update(pager.ScrolledMsg{Position: 0, Fraction: 0.6})
	require.Equal(t, Scrolling, m.Phase())

	host.offset = 100
	m, _ = m.Update(pager.SettledMsg{Index: 1})
	require.Equal(t, Idle, m.Phase())
	require.Equal(t, float64(m.Tab(1).CurrentPos()), m.Tab(1).LayoutPos())

	// Messages for pages that do not exist are logged and ignored.
	m, _ = m.Update(pager.SelectedMsg{Index: 9})
	require.Equal(t, 1, m.Selected())
}

func TestUpdate_LateScrolledMsg(t *testing.T) {
	host := &fakeHost{width: 100}
	m := newStrip(t, host, 300)
	require.NoError(t, m.Bind(uniformTitles(5, 40), 1))

	// The drag has moved on to 95 by the time the message sent at 105
	// is handled.
	host.offset = 95
	m, _ = m.Update(pager.ScrolledMsg{Position: 1, Fraction: 0.05, Offset: 105, Width: 100})

	require.Equal(t, Scrolling, m.Phase())
	for i := range m.Len() {
		tab := m.Tab(i)
		want := Step(tab.Targets(), 0.05, Right)
		require.InDelta(t, want, tab.LayoutPos(), 1e-9, "tab %d", i)
	}

	host.offset = 100
	m, _ = m.Update(pager.ScrolledMsg{Position: 1, Offset: 100, Width: 100})
	require.Equal(t, Idle, m.Phase())
	require.Equal(t, float64(m.Tab(1).CurrentPos()), m.Tab(1).LayoutPos())
}

func requestedPage(t *testing.T, cmd tea.Cmd) int {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(pager.RequestPageMsg)
	require.True(t, ok)
	return msg.Index
}

func TestUpdate_TapRequestsPage(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 100}, 300)
	require.NoError(t, m.Bind(uniformTitles(5, 40), 2))

	right := m.Tab(3).CurrentPos() + 1
	m, cmd := m.Update(tea.MouseClickMsg{X: right, Y: 0, Button: tea.MouseLeft})
	require.Nil(t, cmd)
	require.True(t, m.Tab(3).Pressed())

	m, cmd = m.Update(tea.MouseReleaseMsg{X: right + 2, Y: 0, Button: tea.MouseLeft})
	require.Equal(t, 3, requestedPage(t, cmd))
	require.False(t, m.Tab(3).Pressed())
}

func TestUpdate_TapReleasedElsewhere(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 100}, 300)
	require.NoError(t, m.Bind(uniformTitles(5, 40), 2))

	m, _ = m.Update(tea.MouseClickMsg{X: m.Tab(3).CurrentPos() + 1, Y: 0, Button: tea.MouseLeft})
	m, cmd := m.Update(tea.MouseReleaseMsg{X: m.Tab(2).CurrentPos() + 1, Y: 0, Button: tea.MouseLeft})
	require.Nil(t, cmd)
	require.False(t, m.Tab(3).Pressed())

	// Below the strip nothing is pressed.
	m, _ = m.Update(tea.MouseClickMsg{X: m.Tab(2).CurrentPos() + 1, Y: m.Height(), Button: tea.MouseLeft})
	require.False(t, m.Tab(2).Pressed())
}

func TestUpdate_Keys(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 100}, 300)
	require.NoError(t, m.Bind(uniformTitles(3, 10), 0))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Equal(t, 1, requestedPage(t, cmd))

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	require.Nil(t, cmd, "no page before the first")
}

func TestTabAt(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 100}, 300)
	require.NoError(t, m.Bind(uniformTitles(5, 40), 2))

	require.Equal(t, 2, m.TabAt(m.Tab(2).CurrentPos()))
	require.Equal(t, 2, m.TabAt(m.Tab(2).CurrentPos()+39))
	require.Equal(t, 1, m.TabAt(0))
	require.Equal(t, -1, m.TabAt(-1))
	require.Equal(t, -1, m.TabAt(300))
	require.Equal(t, -1, m.TabAt(80))
}

func TestErrorsWrap(t *testing.T) {
	m := newStrip(t, &fakeHost{width: 100}, 100)
	err := m.OnPageSelected(0)
	require.True(t, errors.Is(err, ErrPrecondition))
	require.False(t, errors.Is(err, ErrContractViolation))
}
