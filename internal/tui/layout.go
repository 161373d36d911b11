package tui

import (
	"github.com/billie-coop/swipetabs/internal/config"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// resize lays the rows out for the current window size.
func (m *Model) resize() tea.Cmd {
	return tea.Batch(
		m.layout.SetSize(m.width, m.height),
		m.dialogs.SetSize(m.width, m.height),
	)
}

// applyUI shows or hides the optional rows.
func (m *Model) applyUI(ui config.UIConfig) tea.Cmd {
	return tea.Batch(
		m.layout.SetHidden(rowHelp, !ui.ShowHelp),
		m.layout.SetHidden(rowStatus, !ui.ShowStatus),
	)
}

// handleMouse sends a mouse event to the row under it, in that row's
// coordinates. A press claims the mouse for its row until the release, so
// a drag that leaves the pager keeps driving it.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	mouse := msg.Mouse()

	target := m.mouseOwner
	switch msg.(type) {
	case tea.MouseClickMsg:
		target = m.layout.RowAt(mouse.Y)
		m.mouseOwner = target
	case tea.MouseReleaseMsg:
		if target == "" {
			target = m.layout.RowAt(mouse.Y)
		}
		m.mouseOwner = ""
	case tea.MouseWheelMsg:
		target = m.layout.RowAt(mouse.Y)
	case tea.MouseMotionMsg:
		if target == "" {
			return nil
		}
	}

	top, _, ok := m.layout.Bounds(target)
	if !ok {
		return nil
	}
	local := translate(msg, top)

	var cmd tea.Cmd
	switch target {
	case rowStrip:
		m.strip, cmd = m.strip.Update(local)
	case rowPages:
		m.pager, cmd = m.pager.Update(local)
	}
	return cmd
}

// translate moves a mouse event up by dy rows.
func translate(msg tea.MouseMsg, dy int) tea.Msg {
	mouse := msg.Mouse()
	mouse.Y -= dy
	switch msg.(type) {
	case tea.MouseClickMsg:
		return tea.MouseClickMsg(mouse)
	case tea.MouseReleaseMsg:
		return tea.MouseReleaseMsg(mouse)
	case tea.MouseMotionMsg:
		return tea.MouseMotionMsg(mouse)
	case tea.MouseWheelMsg:
		return tea.MouseWheelMsg(mouse)
	}
	return msg
}
