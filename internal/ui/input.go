package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// edit applies fn to the search query and marks the cursor for a redraw when
// it moved.
func (m *Model) edit(fn func() bool) bool {
	before := m.search.FilterCursorPos()
	if !fn() {
		return false
	}
	if before != m.search.FilterCursorPos() {
		m.filterCursorDirty = true
	}
	m.errMsg = ""
	return true
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	s := m.search
	switch msg.String() {
	case "ctrl+u":
		if s.Filter == "" {
			return false
		}
		return m.edit(func() bool { s.SetFilter("", 0); return true })
	case "ctrl+w":
		return m.edit(s.DeleteFilterWordBackward)
	case "ctrl+a":
		return m.edit(s.MoveFilterCursorStart)
	case "ctrl+e":
		return m.edit(s.MoveFilterCursorEnd)
	case "alt+b":
		return m.edit(s.MoveFilterCursorWordBackward)
	case "alt+f":
		return m.edit(s.MoveFilterCursorWordForward)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.edit(s.DeleteFilterRuneBackward)
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		text := string(msg.Runes)
		return m.edit(func() bool { return s.InsertFilterText(text) })
	case tea.KeySpace:
		return m.edit(func() bool { return s.InsertFilterText(" ") })
	case tea.KeyLeft:
		return m.edit(s.MoveFilterCursorRuneBackward)
	case tea.KeyRight:
		return m.edit(s.MoveFilterCursorRuneForward)
	}
	return false
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "/ "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.search.Filter
	if text == "" {
		placeholder := []rune("(type to search submenus)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(placeholder[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	runes := []rune(text)
	pos := m.search.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
