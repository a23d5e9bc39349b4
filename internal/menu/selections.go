package menu

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/atomicstack/training-mod-tui/internal/logging"
	"github.com/atomicstack/training-mod-tui/internal/logging/events"
)

// SliderRange is the serialized form of a slider.
type SliderRange struct {
	SelectedMin uint32 `json:"selected_min"`
	SelectedMax uint32 `json:"selected_max"`
	AbsMin      uint32 `json:"abs_min"`
	AbsMax      uint32 `json:"abs_max"`
}

// Value is the serialized state of one submenu: a toggle value list or a
// slider range, never both.
type Value struct {
	Toggles []uint8
	Slider  *SliderRange
}

// ToggleValue wraps toggle values.
func ToggleValue(values ...uint8) Value {
	if values == nil {
		values = []uint8{}
	}
	return Value{Toggles: values}
}

// RangeValue wraps a slider range.
func RangeValue(r SliderRange) Value {
	return Value{Slider: &r}
}

// MarshalJSON encodes toggles as a number array and sliders as an object.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Slider != nil {
		return json.Marshal(v.Slider)
	}
	ints := make([]int, len(v.Toggles))
	for i, t := range v.Toggles {
		ints[i] = int(t)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON accepts either form produced by MarshalJSON. A JSON null
// decodes to the empty Value, which UpdateByID ignores.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*v = Value{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var r SliderRange
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return err
		}
		*v = RangeValue(r)
		return nil
	}
	var ints []int
	if err := json.Unmarshal(trimmed, &ints); err != nil {
		return err
	}
	values := make([]uint8, len(ints))
	for i, n := range ints {
		if n < 0 || n > 255 {
			return fmt.Errorf("toggle value %d out of range", n)
		}
		values[i] = uint8(n)
	}
	*v = ToggleValue(values...)
	return nil
}

func (v Value) clone() Value {
	if v.Slider != nil {
		return RangeValue(*v.Slider)
	}
	return ToggleValue(append([]uint8{}, v.Toggles...)...)
}

// Selections maps submenu ids to their serialized state. It is the flat
// wire format shared with the host process and the defaults store.
type Selections map[string]Value

// Clone returns a deep copy.
func (s Selections) Clone() Selections {
	out := make(Selections, len(s))
	for id, v := range s {
		out[id] = v.clone()
	}
	return out
}

// Selections snapshots every toggle and slider submenu. Submenus of kind
// None carry no state and are omitted.
func (a *App) Selections() Selections {
	out := make(Selections)
	a.eachSubMenu(func(_ *Tab, s *SubMenu) {
		switch s.Kind() {
		case KindToggleSingle, KindToggleMultiple:
			out[s.ID] = ToggleValue(s.Values()...)
		case KindSlider:
			out[s.ID] = RangeValue(s.Slider.Range())
		}
	})
	return out
}

// JSON renders the current selections as a JSON object with sorted keys.
func (a *App) JSON() string {
	data, err := json.Marshal(a.Selections())
	if err != nil {
		logging.Error(fmt.Errorf("encode selections: %w", err))
		return "{}"
	}
	return string(data)
}

// UpdateByID applies v to the submenu with the given id. Unknown ids, empty
// values and values of the wrong shape are ignored and reported as false. Toggle values
// are clamped to each toggle's max; a single-choice submenu keeps only the
// first nonzero value. Slider ranges are clamped into the slider's bounds.
func (a *App) UpdateByID(id string, v Value) bool {
	if v.Toggles == nil && v.Slider == nil {
		return false
	}
	s, ok := a.SubMenu(id)
	if !ok {
		return false
	}
	switch s.Kind() {
	case KindToggleSingle, KindToggleMultiple:
		if v.Slider != nil {
			return false
		}
		seen := false
		n := s.Toggles.Len()
		for i := 0; i < n; i++ {
			t := s.Toggles.AtPtr(i)
			var next uint8
			if i < len(v.Toggles) {
				next = v.Toggles[i]
			}
			if s.Kind() == KindToggleSingle && seen {
				next = 0
			}
			t.Set(next)
			if t.Value != 0 {
				seen = true
			}
		}
		events.Menu.Toggle(s.ID, s.Values())
	case KindSlider:
		if v.Slider == nil {
			return false
		}
		s.Slider.SetRange(v.Slider.SelectedMin, v.Slider.SelectedMax)
		events.Menu.Slider(s.ID, s.Slider.SelectedMin, s.Slider.SelectedMax, s.Slider.Selected)
	default:
		return false
	}
	return true
}

// Apply runs UpdateByID for every entry and returns how many were applied.
func (a *App) Apply(sel Selections) int {
	applied := 0
	for id, v := range sel {
		if a.UpdateByID(id, v) {
			applied++
		}
	}
	return applied
}

// Defaults returns a copy of the defaults snapshot.
func (a *App) Defaults() Selections {
	return a.defaults.Clone()
}

// SaveDefaults makes the current selections the new defaults and returns them.
func (a *App) SaveDefaults() Selections {
	a.defaults = a.Selections()
	return a.defaults.Clone()
}

// SetDefaults replaces the defaults snapshot, for example with one loaded
// from disk. Entries for unknown ids are kept but never applied.
func (a *App) SetDefaults(sel Selections) {
	a.defaults = sel.Clone()
}

// ResetCurrentSubMenu restores the selected submenu to its default, or to its
// zero state when no default is recorded.
func (a *App) ResetCurrentSubMenu() {
	s := a.SelectedSubMenu()
	a.reset(s)
	events.Menu.Reset(s.ID, 1)
}

// ResetAllSubMenus restores every submenu and returns how many were reset.
func (a *App) ResetAllSubMenus() int {
	n := 0
	a.eachSubMenu(func(_ *Tab, s *SubMenu) {
		if s.Kind() == KindNone {
			return
		}
		a.reset(s)
		n++
	})
	events.Menu.Reset("all", n)
	return n
}

func (a *App) reset(s *SubMenu) {
	if s.Kind() == KindSlider {
		s.Slider.Deselect()
	}
	if v, ok := a.defaults[s.ID]; ok && a.UpdateByID(s.ID, v) {
		return
	}
	s.Reset()
}
