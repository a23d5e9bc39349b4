package state

import "github.com/atomicstack/training-mod-tui/internal/menu"

// Search tracks the submenu search overlay: the query being typed, the
// entries it matches and the highlighted row.
type Search struct {
	Full           []menu.Entry
	Items          []menu.Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewSearch lists every entry with the cursor on the first one.
func NewSearch(entries []menu.Entry) *Search {
	s := &Search{LastCursor: -1}
	s.UpdateEntries(entries)
	return s
}

// UpdateEntries replaces the searchable entries, keeping the query and, when
// it is still listed, the highlighted entry.
func (s *Search) UpdateEntries(entries []menu.Entry) {
	prevOffset := s.ViewportOffset
	current, hadCurrent := s.Current()
	s.Full = CloneEntries(entries)
	s.applyFilter()
	if hadCurrent {
		if idx := s.IndexOf(current.ID); idx >= 0 {
			s.Cursor = idx
		}
	}
	if len(s.Items) == 0 || prevOffset < 0 || prevOffset > len(s.Items)-1 {
		s.ViewportOffset = 0
		return
	}
	s.ViewportOffset = prevOffset
}

// Current returns the highlighted entry.
func (s *Search) Current() (menu.Entry, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return menu.Entry{}, false
	}
	return s.Items[s.Cursor], true
}

// IndexOf returns the position of id among the filtered entries, or -1.
func (s *Search) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, e := range s.Items {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// CloneEntries produces a shallow copy of entries.
func CloneEntries(entries []menu.Entry) []menu.Entry {
	dup := make([]menu.Entry, len(entries))
	copy(dup, entries)
	return dup
}
