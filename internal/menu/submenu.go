package menu

import (
	"fmt"

	"github.com/atomicstack/training-mod-tui/internal/grid"
	"github.com/atomicstack/training-mod-tui/internal/logging"
	"github.com/atomicstack/training-mod-tui/internal/logging/events"
)

// Kind selects which control a submenu drives.
type Kind int

const (
	KindToggleSingle Kind = iota
	KindToggleMultiple
	KindSlider
	KindNone
)

var kindNames = map[Kind]string{
	KindToggleSingle:   "toggle_single",
	KindToggleMultiple: "toggle_multiple",
	KindSlider:         "slider",
	KindNone:           "none",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps the layout spelling of a kind back to its value.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown submenu kind %q", s)
}

// IsToggle reports whether the kind is backed by a toggle grid.
func (k Kind) IsToggle() bool {
	return k == KindToggleSingle || k == KindToggleMultiple
}

var _ Handler = (*SubMenu)(nil)

// SubMenu wraps either a grid of toggles or a slider, picked by its kind.
type SubMenu struct {
	Title    string
	ID       string
	HelpText string
	Toggles  *grid.Grid[Toggle]
	Slider   *Slider

	kind Kind
}

// NewToggleSubMenu builds a toggle-backed submenu laid out as rows x cols.
func NewToggleSubMenu(id, title, help string, kind Kind, rows, cols int, toggles []Toggle) (*SubMenu, error) {
	if !kind.IsToggle() {
		return nil, fmt.Errorf("submenu %s: %s is not a toggle kind", id, kind)
	}
	g, err := grid.New(rows, cols, toggles)
	if err != nil {
		return nil, fmt.Errorf("submenu %s: %w", id, err)
	}
	return &SubMenu{ID: id, Title: title, HelpText: help, Toggles: g, kind: kind}, nil
}

// NewSliderSubMenu builds a slider-backed submenu.
func NewSliderSubMenu(id, title, help string, slider *Slider) *SubMenu {
	return &SubMenu{ID: id, Title: title, HelpText: help, Slider: slider, kind: KindSlider}
}

// NewLabelSubMenu builds a submenu that ignores every input.
func NewLabelSubMenu(id, title, help string) *SubMenu {
	return &SubMenu{ID: id, Title: title, HelpText: help, kind: KindNone}
}

// Kind returns the control type fixed at construction.
func (s *SubMenu) Kind() Kind { return s.kind }

// SelectedToggle returns the toggle under the cursor. It panics when the
// toggle grid has no item there.
func (s *SubMenu) SelectedToggle() *Toggle {
	if s.Toggles == nil {
		panic(fmt.Errorf("%w: submenu %s has no toggles", ErrInvariant, s.ID))
	}
	t := s.Toggles.SelectedPtr()
	if t == nil {
		panic(fmt.Errorf("%w: submenu %s has no toggle at %+v", ErrInvariant, s.ID, s.Toggles.Cursor()))
	}
	return t
}

// Handle routes b according to the submenu kind.
func (s *SubMenu) Handle(b Button) {
	switch s.kind {
	case KindToggleSingle, KindToggleMultiple:
		s.handleToggle(b)
	case KindSlider:
		s.handleSlider(b)
	}
}

func (s *SubMenu) handleToggle(b Button) {
	switch b {
	case ButtonA:
		if s.kind == KindToggleSingle {
			s.clearToggles()
		}
		s.SelectedToggle().Increment()
		events.Menu.Toggle(s.ID, s.Values())
	case ButtonUp:
		s.navigate(s.Toggles.PrevRowChecked())
	case ButtonDown:
		s.navigate(s.Toggles.NextRowChecked())
	case ButtonLeft:
		s.navigate(s.Toggles.PrevColChecked())
	case ButtonRight:
		s.Toggles.NextColChecked()
		s.navigate(nil)
	}
}

func (s *SubMenu) handleSlider(b Button) {
	sl := s.Slider
	switch b {
	case ButtonA:
		sl.SelectDeselect()
	case ButtonB:
		if sl.IsHandleSelected() {
			sl.Deselect()
		}
	case ButtonLeft:
		if sl.IsHandleSelected() {
			sl.DecrementSelectedSlow()
		} else {
			sl.SwitchHover()
		}
	case ButtonRight:
		if sl.IsHandleSelected() {
			sl.IncrementSelectedSlow()
		} else {
			sl.SwitchHover()
		}
	default:
		return
	}
	events.Menu.Slider(s.ID, sl.SelectedMin, sl.SelectedMax, sl.Selected)
}

func (s *SubMenu) navigate(err error) {
	if err != nil {
		logging.Error(fmt.Errorf("submenu %s: %w", s.ID, err))
		return
	}
	pos := s.Toggles.Cursor()
	events.Menu.Cursor("toggle", s.ID, pos.Row, pos.Col)
}

func (s *SubMenu) clearToggles() {
	for i := 0; i < s.Toggles.Len(); i++ {
		s.Toggles.AtPtr(i).Reset()
	}
}

// Values returns the toggle values in row-major order, or nil for non-toggle
// kinds.
func (s *SubMenu) Values() []uint8 {
	if !s.kind.IsToggle() {
		return nil
	}
	out := make([]uint8, 0, s.Toggles.Len())
	for _, t := range s.Toggles.Flatten() {
		out = append(out, t.Value)
	}
	return out
}

// Reset returns the submenu to its zero state: every toggle cleared, or the
// slider spanning its full range.
func (s *SubMenu) Reset() {
	switch s.kind {
	case KindToggleSingle, KindToggleMultiple:
		s.clearToggles()
	case KindSlider:
		s.Slider.Deselect()
		s.Slider.SetRange(s.Slider.AbsMin, s.Slider.AbsMax)
	}
}
