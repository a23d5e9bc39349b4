package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/training-mod-tui/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the query and its cursor, refilters and highlights the
// best match. Clearing the query restores the row highlighted before typing.
func (s *Search) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(s.Filter)
	restore := -1
	s.Filter = query
	runes := []rune(s.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	s.FilterCursor = cursor
	if trimmed != "" {
		if prevTrimmed == "" {
			s.LastCursor = s.Cursor
		}
		s.Cursor = 0
	} else if prevTrimmed != "" {
		restore = s.LastCursor
	}
	s.applyFilter()
	if trimmed != "" && len(s.Items) > 0 {
		if idx := BestMatchIndex(s.Items, trimmed); idx >= 0 {
			s.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(s.Items) {
			s.Cursor = restore
		} else if len(s.Items) > 0 {
			s.Cursor = 0
		}
		s.LastCursor = -1
	}
}

func (s *Search) applyFilter() {
	s.Items = FilterEntries(s.Full, s.Filter)
	if len(s.Items) == 0 {
		s.Cursor = 0
		s.ViewportOffset = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = 0
		return
	}
	if s.Cursor >= len(s.Items) {
		s.Cursor = len(s.Items) - 1
	}
	if s.ViewportOffset > len(s.Items)-1 {
		s.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the query cursor.
func (s *Search) FilterCursorPos() int {
	runes := []rune(s.Filter)
	if s.FilterCursor < 0 {
		return 0
	}
	if s.FilterCursor > len(runes) {
		return len(runes)
	}
	return s.FilterCursor
}

// InsertFilterText inserts text at the query cursor.
func (s *Search) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	s.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the query cursor.
func (s *Search) DeleteFilterRuneBackward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	s.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the query cursor.
func (s *Search) DeleteFilterWordBackward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	s.SetFilter(string(updated), i)
	return true
}

// MoveFilterCursorStart moves the query cursor to the start.
func (s *Search) MoveFilterCursorStart() bool {
	if s.FilterCursorPos() == 0 {
		return false
	}
	s.FilterCursor = 0
	return true
}

// MoveFilterCursorEnd moves the query cursor to the end.
func (s *Search) MoveFilterCursorEnd() bool {
	end := len([]rune(s.Filter))
	if s.FilterCursorPos() == end {
		return false
	}
	s.FilterCursor = end
	return true
}

// MoveFilterCursorWordBackward moves the query cursor one word backward.
func (s *Search) MoveFilterCursorWordBackward() bool {
	pos := s.FilterCursorPos()
	if pos == 0 {
		return false
	}
	i := wordStart([]rune(s.Filter), pos)
	if i == pos {
		return false
	}
	s.FilterCursor = i
	return true
}

// MoveFilterCursorWordForward moves the query cursor one word forward.
func (s *Search) MoveFilterCursorWordForward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	s.FilterCursor = i
	return true
}

// MoveFilterCursorRuneBackward moves the query cursor one rune backward.
func (s *Search) MoveFilterCursorRuneBackward() bool {
	if s.FilterCursorPos() == 0 {
		return false
	}
	s.FilterCursor = s.FilterCursorPos() - 1
	return true
}

// MoveFilterCursorRuneForward moves the query cursor one rune forward.
func (s *Search) MoveFilterCursorRuneForward() bool {
	pos := s.FilterCursorPos()
	if pos >= len([]rune(s.Filter)) {
		return false
	}
	s.FilterCursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// Label is the text an entry is matched and displayed by.
func Label(e menu.Entry) string {
	if e.TabTitle == "" {
		return e.Title
	}
	return e.TabTitle + " / " + e.Title
}

// FilterEntries returns the entries matching query. Fuzzy matches on the
// label win; when there are none, a substring match on label or id is used.
func FilterEntries(entries []menu.Entry, query string) []menu.Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneEntries(entries)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(entries))
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]menu.Entry, 0, len(matches))
		for idx, e := range entries {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, e)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]menu.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(Label(e)), lower) || strings.Contains(strings.ToLower(e.ID), lower) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// BestMatchIndex picks the entry the query most likely names: exact title
// or id, then title prefix, id prefix, id substring, title substring and
// finally the closest fuzzy rank.
func BestMatchIndex(entries []menu.Entry, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(entries) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	tests := []func(menu.Entry) bool{
		func(e menu.Entry) bool {
			return strings.EqualFold(e.Title, trimmed) || strings.EqualFold(e.ID, trimmed)
		},
		func(e menu.Entry) bool { return strings.HasPrefix(strings.ToLower(e.Title), lower) },
		func(e menu.Entry) bool { return strings.HasPrefix(strings.ToLower(e.ID), lower) },
		func(e menu.Entry) bool { return strings.Contains(strings.ToLower(e.ID), lower) },
		func(e menu.Entry) bool { return strings.Contains(strings.ToLower(e.Title), lower) },
	}
	for _, test := range tests {
		for i, e := range entries {
			if test(e) {
				return i
			}
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(entries))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(entries) {
		return 0
	}
	return best.OriginalIndex
}

func labels(entries []menu.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = Label(e)
	}
	return out
}
