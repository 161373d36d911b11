package dialog

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Dialog represents a modal dialog component
type Dialog interface {
	// Core component methods
	Init() tea.Cmd
	Update(tea.Msg) (Dialog, tea.Cmd)
	View() string

	// Dialog-specific methods
	SetSize(width, height int) tea.Cmd
	IsOpen() bool
	Open() tea.Cmd
	Close() tea.Cmd

	// Result handling
	Result() any
	IsCancelled() bool
}

// ClosedMsg is emitted when a dialog closes, carrying its result.
type ClosedMsg struct {
	Kind      Kind
	Result    any
	Cancelled bool
}
