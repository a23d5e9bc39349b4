package ui

import (
	"fmt"

	"github.com/atomicstack/training-mod-tui/internal/logging/events"
	uistate "github.com/atomicstack/training-mod-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openSearch() {
	m.search = uistate.NewSearch(m.app.Entries())
	if idx := m.search.IndexOf(m.app.SelectedSubMenu().ID); idx >= 0 {
		m.search.Cursor = idx
	}
	m.mode = ModeSearch
	m.filterCursorDirty = true
	m.forceClearInfo()
	m.errMsg = ""
	events.Search.Open()
}

func (m *Model) closeSearch() {
	m.search = nil
	m.mode = ModeMenu
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	if m.search == nil {
		m.closeSearch()
		return nil
	}
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		events.Search.Cancel(m.search.Filter)
		m.closeSearch()
		return nil
	case tea.KeyEnter:
		m.submitSearch()
		return nil
	case tea.KeyUp, tea.KeyCtrlP:
		m.search.MoveCursorUp()
		m.search.EnsureCursorVisible(m.maxVisibleResults())
		return nil
	case tea.KeyDown, tea.KeyCtrlN:
		m.search.MoveCursorDown()
		m.search.EnsureCursorVisible(m.maxVisibleResults())
		return nil
	case tea.KeyHome:
		m.search.MoveCursorHome()
		m.search.EnsureCursorVisible(m.maxVisibleResults())
		return nil
	case tea.KeyEnd:
		m.search.MoveCursorEnd()
		m.search.EnsureCursorVisible(m.maxVisibleResults())
		return nil
	case tea.KeyPgUp:
		m.search.MoveCursorPageUp(m.maxVisibleResults())
		m.search.EnsureCursorVisible(m.maxVisibleResults())
		return nil
	case tea.KeyPgDown:
		m.search.MoveCursorPageDown(m.maxVisibleResults())
		m.search.EnsureCursorVisible(m.maxVisibleResults())
		return nil
	}
	if handled := m.handleTextInput(msg); handled {
		events.Search.Query(m.search.Filter, len(m.search.Items))
		m.search.EnsureCursorVisible(m.maxVisibleResults())
	}
	return nil
}

func (m *Model) submitSearch() {
	entry, ok := m.search.Current()
	query := m.search.Filter
	m.closeSearch()
	if !ok {
		m.setInfo(fmt.Sprintf("No submenu matches %q.", query))
		return
	}
	events.Search.Submit(query, entry.ID)
	if !m.app.FocusSubMenu(entry.ID) {
		m.errMsg = fmt.Sprintf("submenu %s is no longer available", entry.ID)
		return
	}
	m.setInfo(fmt.Sprintf("Jumped to %s.", uistate.Label(entry)))
}

// maxVisibleResults is the number of search rows that fit under the menu.
func (m *Model) maxVisibleResults() int {
	if m.height <= 0 {
		return -1
	}
	remain := m.height - len(m.menuLines()) - 2
	if m.showFooter {
		remain -= 2
	}
	if remain < 1 {
		return 1
	}
	return remain
}
