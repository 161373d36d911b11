package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Stack is a vertical layout. Rows whose component implements Fixed keep
// their own height; the remaining rows share what is left.
type Stack struct {
	rows   []row
	width  int
	height int
}

type row struct {
	id        string
	component Component
	hidden    bool
	top       int
	height    int
}

// NewStack creates an empty vertical layout.
func NewStack() *Stack {
	return &Stack{}
}

// Add appends a component below the existing ones.
func (l *Stack) Add(id string, component Component) {
	l.rows = append(l.rows, row{id: id, component: component})
}

// SetHidden hides or shows a row. Hidden rows take no space.
func (l *Stack) SetHidden(id string, hidden bool) tea.Cmd {
	for i := range l.rows {
		if l.rows[i].id == id {
			l.rows[i].hidden = hidden
		}
	}
	return l.SetSize(l.width, l.height)
}

// SetSize implements Sizeable and lays the rows out again.
func (l *Stack) SetSize(width, height int) tea.Cmd {
	l.width = max(0, width)
	l.height = max(0, height)

	fixed, flex := 0, 0
	for _, r := range l.rows {
		if r.hidden {
			continue
		}
		if f, ok := r.component.(Fixed); ok {
			fixed += f.Height()
		} else {
			flex++
		}
	}
	spare := max(0, l.height-fixed)

	var cmds []tea.Cmd
	top := 0
	for i := range l.rows {
		r := &l.rows[i]
		r.top = top
		r.height = 0
		if r.hidden {
			continue
		}
		if f, ok := r.component.(Fixed); ok {
			r.height = f.Height()
		} else {
			r.height = spare / flex
			if flex == 1 {
				r.height = spare
			}
			spare -= r.height
			flex--
		}
		if s, ok := r.component.(Sizeable); ok {
			cmds = append(cmds, s.SetSize(l.width, r.height))
		}
		top += r.height
	}
	return tea.Batch(cmds...)
}

// Bounds returns the first row and the height of a component, or false when
// it is unknown or hidden.
func (l *Stack) Bounds(id string) (top, height int, ok bool) {
	for _, r := range l.rows {
		if r.id == id && !r.hidden {
			return r.top, r.height, true
		}
	}
	return 0, 0, false
}

// RowAt returns the id of the component drawn on row y.
func (l *Stack) RowAt(y int) string {
	for _, r := range l.rows {
		if !r.hidden && y >= r.top && y < r.top+r.height {
			return r.id
		}
	}
	return ""
}

// Init implements Component.
func (l *Stack) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range l.rows {
		cmds = append(cmds, r.component.Init())
	}
	return tea.Batch(cmds...)
}

// View renders the visible rows top to bottom.
func (l *Stack) View() string {
	views := make([]string, 0, len(l.rows))
	for _, r := range l.rows {
		if r.hidden || r.height == 0 {
			continue
		}
		views = append(views, r.component.View())
	}
	return strings.Join(views, "\n")
}
