package ui

import (
	"fmt"

	"github.com/atomicstack/training-mod-tui/internal/logging/events"
	"github.com/atomicstack/training-mod-tui/internal/menu"
	"github.com/atomicstack/training-mod-tui/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.quitting {
		return nil
	}
	if m.mode == ModeSearch {
		return m.handleSearchKey(keyMsg)
	}
	if m.app.Page() == menu.PageConfirmation {
		return m.handleConfirmationKey(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(keyMsg, m.keys.Search):
		if m.app.Page() != menu.PageSubmenu {
			return nil
		}
		m.openSearch()
		return nil
	case key.Matches(keyMsg, m.keys.SaveDefaults):
		return m.saveDefaults()
	case key.Matches(keyMsg, m.keys.Reset):
		sub := m.app.SelectedSubMenu()
		m.app.ResetCurrentSubMenu()
		m.errMsg = ""
		m.setInfo(fmt.Sprintf("Reset %s to defaults.", sub.Title))
		return nil
	case key.Matches(keyMsg, m.keys.ResetAll):
		if m.app.RequestConfirmation() {
			m.forceClearInfo()
		}
		return nil
	}

	button, ok := m.keys.Button(keyMsg)
	if !ok {
		return nil
	}
	m.errMsg = ""
	m.clearInfo()
	m.app.Handle(button)
	if m.app.Closed() {
		return m.quit()
	}
	return nil
}

// handleConfirmationKey resolves the reset-all prompt. Accepting resets
// every submenu; both answers leave the page through the cancel button.
func (m *Model) handleConfirmationKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.A), key.Matches(msg, m.keys.Y):
		n := m.app.ResetAllSubMenus()
		m.app.Handle(menu.ButtonB)
		m.setInfo(fmt.Sprintf("Reset %d submenus to defaults.", n))
	case key.Matches(msg, m.keys.B), msg.String() == "n":
		m.app.Handle(menu.ButtonB)
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return nil
}

func (m *Model) saveDefaults() tea.Cmd {
	sel := m.app.SaveDefaults()
	store := m.defaults
	return m.bus.Execute(command.Request{
		ID:    "defaults:save",
		Label: "Save defaults",
		Run: func() (string, error) {
			if err := store.Save(sel); err != nil {
				return "", err
			}
			if path := store.Path(); path != "" {
				return fmt.Sprintf("Saved %d defaults to %s.", len(sel), path), nil
			}
			return fmt.Sprintf("Saved %d defaults.", len(sel)), nil
		},
	})
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	events.App.Exit(m.app.Page().String(), len(m.app.Selections()))
	return tea.Quit
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.search != nil {
		m.search.EnsureCursorVisible(m.maxVisibleResults())
	}
	return nil
}
