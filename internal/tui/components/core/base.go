package core

import tea "github.com/charmbracelet/bubbletea/v2"

// SizeableBase provides basic size management
type SizeableBase struct {
	Width  int
	Height int
}

// SetSize records the component size.
func (s *SizeableBase) SetSize(width, height int) tea.Cmd {
	s.Width = max(0, width)
	s.Height = max(0, height)
	return nil
}

// Size returns the component size.
func (s *SizeableBase) Size() (width, height int) {
	return s.Width, s.Height
}

// FocusableBase provides basic focus management
type FocusableBase struct {
	focused bool
}

func (f *FocusableBase) Focused() bool { return f.focused }

func (f *FocusableBase) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *FocusableBase) Blur() tea.Cmd {
	f.focused = false
	return nil
}
