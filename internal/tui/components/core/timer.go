package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// TickMsg is one frame of a Timer.
type TickMsg struct {
	Time  time.Time
	Frame int
	ID    string
	seq   int
}

// Timer emits a TickMsg every interval while running. Restarting a timer
// invalidates ticks already in flight, so only one chain is ever live.
type Timer struct {
	id       string
	interval time.Duration
	running  bool
	frame    int
	seq      int
}

// NewTimer creates a stopped timer.
func NewTimer(id string, interval time.Duration) *Timer {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &Timer{
		id:       id,
		interval: interval,
	}
}

// Start (re)starts the timer from frame zero.
func (t *Timer) Start() tea.Cmd {
	t.seq++
	t.frame = 0
	t.running = true
	return t.tick()
}

// Stop halts the timer; ticks in flight are dropped.
func (t *Timer) Stop() {
	t.running = false
	t.seq++
}

func (t *Timer) IsRunning() bool         { return t.running }
func (t *Timer) Interval() time.Duration { return t.interval }

// SetInterval changes the interval from the next tick on.
func (t *Timer) SetInterval(interval time.Duration) {
	if interval > 0 {
		t.interval = interval
	}
}

// Owns reports whether msg is a live tick of this timer.
func (t *Timer) Owns(msg tea.Msg) (TickMsg, bool) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != t.id || tick.seq != t.seq || !t.running {
		return TickMsg{}, false
	}
	return tick, true
}

// Next schedules the following tick.
func (t *Timer) Next() tea.Cmd {
	if !t.running {
		return nil
	}
	return t.tick()
}

func (t *Timer) tick() tea.Cmd {
	t.frame++
	frame, seq := t.frame, t.seq
	return tea.Tick(t.interval, func(tm time.Time) tea.Msg {
		return TickMsg{
			Time:  tm,
			Frame: frame,
			ID:    t.id,
			seq:   seq,
		}
	})
}
