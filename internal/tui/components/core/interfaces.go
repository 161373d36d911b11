package core

import tea "github.com/charmbracelet/bubbletea/v2"

// Component is anything the app shell can initialize and draw. Update is not
// part of it: each component's Update returns its own concrete type.
type Component interface {
	Init() tea.Cmd
	View() string
}

// Sizeable components can be resized
type Sizeable interface {
	SetSize(width, height int) tea.Cmd
}

// Fixed components know how many rows they need.
type Fixed interface {
	Height() int
}

// Focusable components can receive keyboard focus
type Focusable interface {
	Focus() tea.Cmd
	Blur() tea.Cmd
	Focused() bool
}
