package pager

import (
	"fmt"
	"testing"
	"time"

	"github.com/billie-coop/swipetabs/internal/tui/components/core"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/require"
)

type bodies []string

func (b bodies) Count() int        { return len(b) }
func (b bodies) Body(i int) string { return b[i] }

// drain runs cmd and everything it leads to, feeding animation ticks back
// into the pager, and returns the other messages in order.
func drain(t *testing.T, m *Model, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(append([]tea.Cmd{}, msg...), queue...)
		case core.TickMsg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		case nil:
		default:
			out = append(out, msg)
		}
	}
	return out
}

func newPager(t *testing.T, frames, width int) *Model {
	t.Helper()
	m := New(bodies{"AAAA", "BBBB", "CCCC"}, WithAnimation(frames, time.Millisecond))
	m.SetSize(width, 1)
	return m
}

func TestSetPage_Animated(t *testing.T) {
	m := newPager(t, 3, 10)

	msgs := drain(t, m, m.SetPage(1))
	require.Equal(t, SelectedMsg{Index: 1}, msgs[0])
	require.Equal(t, SettledMsg{Index: 1}, msgs[len(msgs)-1])

	last := -1
	var frames int
	for _, msg := range msgs[1 : len(msgs)-1] {
		s, ok := msg.(ScrolledMsg)
		require.True(t, ok, "%T", msg)
		offset := s.Position*10 + int(s.Fraction*10+0.5)
		require.GreaterOrEqual(t, offset, last)
		last = offset
		frames++
	}
	require.Equal(t, 3, frames)
	require.Equal(t, ScrolledMsg{Position: 0, Fraction: 0.7, Offset: 7, Width: 10}, msgs[1])
	require.Equal(t, 10, m.ScrollOffset())
	require.Equal(t, 1, m.Current())
	require.False(t, m.Animating())
}

func TestSetPage_NoAnimation(t *testing.T) {
	m := newPager(t, 0, 10)

	msgs := drain(t, m, m.SetPage(2))
	require.Equal(t, []tea.Msg{
		SelectedMsg{Index: 2},
		ScrolledMsg{Position: 2, Offset: 20, Width: 10},
		SettledMsg{Index: 2},
	}, msgs)
	require.Equal(t, 20, m.ScrollOffset())
}

func TestSetPage_Clamps(t *testing.T) {
	m := newPager(t, 0, 10)

	drain(t, m, m.SetPage(99))
	require.Equal(t, 2, m.Current())

	require.Nil(t, m.SetPage(2))
	drain(t, m, m.SetPage(-5))
	require.Equal(t, 0, m.Current())
}

func TestSetPage_Restart(t *testing.T) {
	m := newPager(t, 4, 10)

	// A second request before any frame ran replaces the first turn.
	first := m.SetPage(1)
	msgs := drain(t, m, m.SetPage(2))
	require.Equal(t, SelectedMsg{Index: 2}, msgs[0])
	require.Equal(t, SettledMsg{Index: 2}, msgs[len(msgs)-1])
	require.Equal(t, 20, m.ScrollOffset())

	// Ticks of the replaced turn are ignored.
	stale := drain(t, m, first)
	require.Equal(t, []tea.Msg{SelectedMsg{Index: 1}}, stale)
	require.Equal(t, 20, m.ScrollOffset())
}

func TestDrag(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     int
		selected bool
	}{
		{"past a third", 20, 5, 1, true},
		{"short drag springs back", 20, 15, 0, false},
		{"clamped at first page", 5, 25, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPager(t, 0, 30)

			_, cmd := m.Update(tea.MouseClickMsg{X: tt.from, Button: tea.MouseLeft})
			require.Nil(t, cmd)
			require.True(t, m.Dragging())

			_, cmd = m.Update(tea.MouseMotionMsg{X: tt.to, Button: tea.MouseLeft})
			if offset := tt.from - tt.to; offset > 0 {
				msgs := drain(t, m, cmd)
				require.Equal(t, []tea.Msg{ScrolledMsg{Position: 0, Fraction: float64(offset) / 30, Offset: offset, Width: 30}}, msgs)
			} else {
				require.Nil(t, cmd)
			}

			_, cmd = m.Update(tea.MouseReleaseMsg{X: tt.to, Button: tea.MouseLeft})
			msgs := drain(t, m, cmd)
			require.False(t, m.Dragging())
			require.Equal(t, tt.want, m.Current())
			require.Equal(t, tt.want*30, m.ScrollOffset())
			if tt.selected {
				require.Equal(t, SelectedMsg{Index: tt.want}, msgs[0])
				return
			}
			for _, msg := range msgs {
				require.NotEqual(t, "pager.SelectedMsg", fmt.Sprintf("%T", msg))
			}
		})
	}
}

func TestKeysAndWheel(t *testing.T) {
	m := newPager(t, 0, 10)
	send := func(msg tea.Msg) {
		_, cmd := m.Update(msg)
		drain(t, m, cmd)
	}

	send(tea.KeyPressMsg{Code: tea.KeyRight})
	require.Equal(t, 1, m.Current())

	send(tea.KeyPressMsg{Code: tea.KeyEnd})
	require.Equal(t, 2, m.Current())

	send(tea.MouseWheelMsg{Button: tea.MouseWheelLeft})
	require.Equal(t, 1, m.Current())

	send(tea.KeyPressMsg{Code: tea.KeyHome})
	require.Equal(t, 0, m.Current())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	require.Nil(t, cmd)
}

func TestRequestPageMsg(t *testing.T) {
	m := newPager(t, 0, 10)

	_, cmd := m.Update(RequestPageMsg{Index: 2})
	msgs := drain(t, m, cmd)
	require.Contains(t, msgs, SelectedMsg{Index: 2})
	require.Equal(t, 2, m.Current())
}

func TestView(t *testing.T) {
	m := newPager(t, 0, 4)
	require.Equal(t, "AAAA", m.View())

	m.Update(tea.MouseClickMsg{X: 3, Button: tea.MouseLeft})
	m.Update(tea.MouseMotionMsg{X: 1, Button: tea.MouseLeft})
	require.Equal(t, 2, m.ScrollOffset())
	require.Equal(t, "AABB", m.View())
}

func TestView_Empty(t *testing.T) {
	m := New(bodies{})
	require.Equal(t, "", m.View())
	m.SetSize(3, 2)
	require.Equal(t, "   \n   ", m.View())
	require.Nil(t, m.SetPage(1))
}

func TestSetSize_FinishesTurn(t *testing.T) {
	m := newPager(t, 5, 10)
	m.SetPage(1)
	require.True(t, m.Animating())

	msgs := drain(t, m, m.SetSize(20, 1))
	require.Equal(t, []tea.Msg{SettledMsg{Index: 1}}, msgs)
	require.False(t, m.Animating())
	require.Equal(t, 20, m.ScrollOffset())
	require.Equal(t, 20, m.ViewportWidth())
}

func TestReload(t *testing.T) {
	src := bodies{"a", "b", "c"}
	m := New(src, WithAnimation(0, 0))
	m.SetSize(10, 1)
	drain(t, m, m.SetPage(2))

	m.source = src[:2]
	m.Reload()
	require.Equal(t, 2, m.Count())
	require.Equal(t, 1, m.Current())
	require.Equal(t, 10, m.ScrollOffset())
}

func TestRenderer(t *testing.T) {
	m := New(bodies{"x"}, WithRenderer(func(body string, width int) string {
		return body + "!"
	}))
	m.SetSize(5, 1)
	require.Equal(t, "x!   ", m.View())
}

func TestJump(t *testing.T) {
	m := newPager(t, 3, 10)
	m.SetPage(2)
	require.True(t, m.Animating())

	m.Jump(1)
	require.False(t, m.Animating())
	require.Equal(t, 1, m.Current())
	require.Equal(t, 10, m.ScrollOffset())

	m.Jump(9)
	require.Equal(t, 2, m.Current())
}
