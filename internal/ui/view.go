package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/training-mod-tui/internal/format/table"
	"github.com/atomicstack/training-mod-tui/internal/grid"
	"github.com/atomicstack/training-mod-tui/internal/menu"
	uistate "github.com/atomicstack/training-mod-tui/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	menuHeaderSeparator = "→"
	cellIndicator       = "▌"
	sliderMaxTrack      = 40
	confirmPrompt       = "Reset every submenu to its default? (enter/y = yes, esc/n = no)"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := m.menuLines()
	if m.mode == ModeSearch && m.search != nil {
		lines = append(lines, styledLine{})
		lines = append(lines, m.searchLines()...)
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.View(m.keys), raw: true})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var status styledLine
	switch {
	case m.errMsg != "":
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.backendLastErr != "":
		status = styledLine{text: fmt.Sprintf("Backend: %s", m.backendLastErr), style: styles.Error}
	}
	bottom := []styledLine{status}
	if m.mode == ModeSearch && m.search != nil {
		bottom = append(bottom, styledLine{text: m.filterPrompt(), raw: true})
	}
	lines = append(lines, applyWidth(bottom, m.width)...)
	return renderLines(lines)
}

// menuLines renders everything above the status bar except search results:
// tab bar, breadcrumb, submenu grid and the panel for the current page.
func (m *Model) menuLines() []styledLine {
	lines := make([]styledLine, 0, 24)
	lines = append(lines, styledLine{text: m.tabBar(), raw: true})
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	lines = append(lines, styledLine{})

	tab := m.app.SelectedTab()
	focused := m.app.Page() == menu.PageSubmenu
	lines = append(lines, gridLines(tab.SubMenus, focused, func(s *menu.SubMenu) (string, *lipgloss.Style) {
		return s.Title, styles.Item
	})...)

	sub := m.app.SelectedSubMenu()
	switch m.app.Page() {
	case menu.PageToggle:
		lines = append(lines, styledLine{})
		lines = append(lines, gridLines(sub.Toggles, true, toggleCell)...)
	case menu.PageSlider:
		lines = append(lines, styledLine{})
		lines = append(lines, m.sliderLines(sub.Slider)...)
	case menu.PageConfirmation:
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: confirmPrompt, style: styles.Confirm})
	}
	if help := strings.TrimSpace(sub.HelpText); help != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: help, style: styles.HelpText})
	}
	return lines
}

func (m *Model) tabBar() string {
	tabs := m.app.Tabs.Flatten()
	cursor := m.app.Tabs.Cursor()
	parts := make([]string, 0, len(tabs))
	for i, t := range tabs {
		style := styles.Tab
		if i == cursor.Col {
			style = styles.ActiveTab
		}
		parts = append(parts, style.Render(t.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) menuHeader() string {
	segments := []string{m.app.SelectedTab().Title}
	switch m.app.Page() {
	case menu.PageToggle, menu.PageSlider:
		segments = append(segments, m.app.SelectedSubMenu().Title)
	case menu.PageConfirmation:
		segments = append(segments, "reset all")
	}
	return strings.Join(segments, menuHeaderSeparator)
}

// gridLines renders g one line per occupied row, aligning columns on the
// widest label and highlighting the cursor cell when focused.
func gridLines[T any](g *grid.Grid[T], focused bool, cell func(T) (string, *lipgloss.Style)) []styledLine {
	if g == nil {
		return nil
	}
	labels := make([][]string, g.Rows())
	cellStyles := make([][]*lipgloss.Style, g.Rows())
	g.Each(func(pos grid.Position, item T, ok bool) {
		if !ok {
			return
		}
		label, style := cell(item)
		labels[pos.Row] = append(labels[pos.Row], label)
		cellStyles[pos.Row] = append(cellStyles[pos.Row], style)
	})
	widths := table.Widths(labels)
	cursor := g.Cursor()
	lines := make([]styledLine, 0, g.Rows())
	for r, row := range labels {
		if len(row) == 0 {
			continue
		}
		var b strings.Builder
		for c, label := range row {
			if c > 0 {
				b.WriteString(table.Separator)
			}
			text := table.Pad(label, widths[c], table.AlignLeft)
			indicator, style := styles.ItemIndicator, cellStyles[r][c]
			if focused && cursor == (grid.Position{Row: r, Col: c}) {
				indicator, style = styles.SelectedItem, styles.SelectedItem
			}
			b.WriteString(indicator.Render(cellIndicator))
			b.WriteString(style.Render(" " + text))
		}
		lines = append(lines, styledLine{text: b.String(), raw: true})
	}
	return lines
}

func toggleCell(t menu.Toggle) (string, *lipgloss.Style) {
	style := styles.ToggleOff
	if t.Value > 0 {
		style = styles.ToggleOn
	}
	return toggleMark(t) + " " + t.Title, style
}

func toggleMark(t menu.Toggle) string {
	if t.Max <= 1 {
		if t.Value > 0 {
			return "[x]"
		}
		return "[ ]"
	}
	return fmt.Sprintf("[%d/%d]", t.Value, t.Max)
}

// sliderLines draws the track with the selected range and both handles,
// followed by the numeric values.
func (m *Model) sliderLines(s *menu.Slider) []styledLine {
	if s == nil {
		return nil
	}
	width := sliderMaxTrack
	if m.width > 0 && m.width-20 < width {
		width = m.width - 20
	}
	if width < 4 {
		width = 4
	}
	lo := sliderPos(s.SelectedMin, s, width)
	hi := sliderPos(s.SelectedMax, s, width)

	handleStyle := func(h menu.Handle) *lipgloss.Style {
		if s.Hover != h {
			return styles.SliderRange
		}
		if s.Selected {
			return styles.SliderGrabbed
		}
		return styles.SliderHandle
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d ", s.AbsMin))
	for i := 0; i < width; i++ {
		switch {
		case i == lo && i == hi:
			b.WriteString(handleStyle(s.Hover).Render("◆"))
		case i == lo:
			b.WriteString(handleStyle(menu.HandleMin).Render("◀"))
		case i == hi:
			b.WriteString(handleStyle(menu.HandleMax).Render("▶"))
		case i > lo && i < hi:
			b.WriteString(styles.SliderRange.Render("="))
		default:
			b.WriteString(styles.SliderTrack.Render("-"))
		}
	}
	b.WriteString(fmt.Sprintf(" %d", s.AbsMax))

	state := "hovering"
	if s.Selected {
		state = "adjusting"
	}
	values := fmt.Sprintf("min %d  max %d  (%s %s)", s.SelectedMin, s.SelectedMax, state, s.Hover)
	return []styledLine{
		{text: b.String(), raw: true},
		{text: values, style: styles.Info},
	}
}

func sliderPos(v uint32, s *menu.Slider, width int) int {
	span := s.AbsMax - s.AbsMin
	if span == 0 {
		return 0
	}
	return int(uint64(v-s.AbsMin) * uint64(width-1) / uint64(span))
}

func (m *Model) searchLines() []styledLine {
	s := m.search
	if len(s.Items) == 0 {
		msg := "(no submenus)"
		if s.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", s.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	start, items := 0, s.Items
	if limit := m.maxVisibleResults(); limit > 0 && len(items) > limit {
		s.EnsureCursorVisible(limit)
		start = s.ViewportOffset
		items = items[start : start+limit]
	}
	lines := make([]styledLine, 0, len(items))
	for i, e := range items {
		indicator, style := styles.ItemIndicator, styles.Item
		if start+i == s.Cursor {
			indicator, style = styles.SelectedItem, styles.SelectedItem
		}
		text := indicator.Render(cellIndicator) + style.Render(" "+uistate.Label(e))
		lines = append(lines, styledLine{text: text, raw: true})
	}
	return lines
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

// truncateText cuts text to width display cells, ending in an ellipsis.
func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}
