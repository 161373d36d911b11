package tui

import (
	"github.com/billie-coop/swipetabs/internal/files"
	"github.com/billie-coop/swipetabs/internal/pages"
	"github.com/billie-coop/swipetabs/internal/tui/components/status"
	"github.com/billie-coop/swipetabs/internal/tui/components/tabstrip"
	"github.com/billie-coop/swipetabs/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// listenForEvents waits for the next broker event. It returns nil when
// there is no broker, and stops once the broker is closed.
func (m *Model) listenForEvents() tea.Cmd {
	if m.eventSub == nil {
		return nil
	}
	sub := m.eventSub
	return func() tea.Msg {
		event, ok := <-sub
		if !ok {
			return nil
		}
		return event
	}
}

// handleEvent processes events from the event broker
func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.FilesChangedEvent:
		if payload, ok := event.Payload.(events.FilesChangedPayload); ok {
			return m.filesChanged(payload.Paths)
		}

	case events.WatchErrorEvent:
		if payload, ok := event.Payload.(events.ErrorPayload); ok && payload.Err != nil {
			m.logger.Warn("file watcher error", "error", payload.Err)
			return m.statusBar.ShowWarning("watcher: " + payload.Err.Error())
		}

	case events.StatusMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			return m.statusBar.SetMessage(payload.Message, messageType(payload.Type))
		}
	}
	return nil
}

func messageType(s string) status.MessageType {
	switch s {
	case "warning":
		return status.Warning
	case "error":
		return status.Error
	case "success":
		return status.Success
	default:
		return status.Info
	}
}

// filesChanged reloads the configuration and the pages as the changed
// paths require.
func (m *Model) filesChanged(paths []string) tea.Cmd {
	var configChanged, pagesChanged bool
	for _, p := range paths {
		switch files.Classify(p, m.pages.Root(), m.config.Path()) {
		case files.Config:
			configChanged = true
		case files.Page:
			pagesChanged = true
		}
	}

	var cmds []tea.Cmd
	if configChanged {
		cmds = append(cmds, m.reloadConfig())
	}
	if pagesChanged {
		cmds = append(cmds, m.reloadPages())
	}
	return tea.Batch(cmds...)
}

// reloadConfig applies config.toml again. A bad file is reported and the
// running configuration stays in effect.
func (m *Model) reloadConfig() tea.Cmd {
	if err := m.config.Load(); err != nil {
		m.logger.Error("config reload failed", "path", m.config.Path(), "error", err)
		return m.statusBar.ShowError(err.Error())
	}
	cfg := m.config.Get()

	if err := m.strip.ApplyConfig(cfg.Strip); err != nil {
		m.logger.Error("strip config rejected", "error", err)
		return m.statusBar.ShowError(err.Error())
	}
	m.pager.SetAnimation(cfg.Pager.AnimationFrames, cfg.Pager.FrameInterval())

	layout := m.applyUI(cfg.UI)
	m.logger.Info("config reloaded", "path", m.config.Path())

	if m.themes.Current().Name != cfg.UI.Theme {
		if err := m.themes.SetTheme(cfg.UI.Theme); err != nil {
			return tea.Batch(layout, m.statusBar.ShowWarning(err.Error()))
		}
		m.rerender()
	}
	return tea.Batch(layout, m.statusBar.ShowInfo("config reloaded"))
}

// reloadPages reads the page directory again. The page on screen stays
// selected when it still exists.
func (m *Model) reloadPages() tea.Cmd {
	current := m.pages.Name(m.pager.Current())
	change, err := m.pages.Reload()
	if err != nil {
		m.logger.Error("page reload failed", "root", m.pages.Root(), "error", err)
		return m.statusBar.ShowError(err.Error())
	}
	m.logger.Info("pages reloaded", "change", change, "count", m.pages.Count())

	switch change {
	case pages.ChangeNone:
		return nil

	case pages.ChangeSet:
		index := m.pages.Index(current)
		if index < 0 {
			index = min(m.pager.Current(), m.pages.Count()-1)
		}
		m.pager.Reload()
		m.pager.Jump(index)
		m.settleStrip()
		if err := m.strip.Bind(m.pages, index); err != nil {
			m.logger.Error("rebind failed", "error", err)
			return m.statusBar.ShowError(err.Error())
		}
		m.jump.SetTitles(m.pages.Titles())

	case pages.ChangeTitles:
		m.rerender()
		if err := m.strip.RefreshTitles(); err != nil {
			m.logger.Error("title refresh failed", "error", err)
			return m.statusBar.ShowError(err.Error())
		}
		m.jump.SetTitles(m.pages.Titles())

	case pages.ChangeBodies:
		m.rerender()
	}
	m.syncStatus()
	return m.statusBar.ShowInfo("pages " + change.String())
}

// rerender drops every rendered page so the next frame renders them again.
func (m *Model) rerender() {
	m.pager.Reload()
	m.settleStrip()
}

// settleStrip ends a strip scroll whose pager animation was cut short.
func (m *Model) settleStrip() {
	if m.strip.Bound() && m.strip.Phase() != tabstrip.Idle {
		if err := m.strip.OnScrollSettled(); err != nil {
			m.logger.Error("strip settle failed", "error", err)
		}
	}
}
