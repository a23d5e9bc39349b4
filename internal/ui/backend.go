package ui

import (
	"fmt"

	"github.com/atomicstack/training-mod-tui/internal/backend"
	"github.com/atomicstack/training-mod-tui/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(s *backend.Service) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-s.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.backendLastErr = fmt.Sprintf("%s %s: %v", evt.Kind, evt.Path, evt.Err)
		logging.Error(evt.Err)
		return
	}
	m.backendLastErr = ""
	res := m.dispatcher.Handle(evt)
	switch {
	case res.Published:
		if m.verbose {
			m.setInfo(fmt.Sprintf("Published %d selections.", res.Entries))
		}
	case res.Applied > 0:
		m.setInfo(fmt.Sprintf("Applied %d selections from %s.", res.Applied, evt.Path))
	case res.Entries > 0:
		m.setInfo(fmt.Sprintf("Ignored %d unknown selections from %s.", res.Ignored, evt.Path))
	}
}
