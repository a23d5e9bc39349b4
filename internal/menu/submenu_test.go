package menu

import (
	"errors"
	"testing"
)

func TestToggleSingleKeepsOneNonzero(t *testing.T) {
	s := mustToggleSubMenu(t, "single", KindToggleSingle, 2, 3, []Toggle{
		NewToggle("a", 0, 2), NewToggle("b", 0, 2), NewToggle("c", 1, 2),
		NewToggle("d", 2, 2), NewToggle("e", 0, 2),
	})
	moves := []Button{ButtonRight, ButtonDown, ButtonLeft, ButtonUp}
	seed := uint32(11)
	for i := 0; i < 400; i++ {
		seed = seed*1664525 + 1013904223
		if (seed>>20)%3 == 0 {
			s.Handle(ButtonA)
			nonzero := 0
			for _, v := range s.Values() {
				if v != 0 {
					nonzero++
				}
			}
			if nonzero > 1 {
				t.Fatalf("step %d: expected at most one nonzero toggle, got %v", i, s.Values())
			}
			continue
		}
		s.Handle(moves[(seed>>16)%4])
		if _, ok := s.Toggles.Selected(); !ok {
			t.Fatalf("step %d: cursor on empty toggle cell %+v", i, s.Toggles.Cursor())
		}
	}
}

func TestToggleSingleConfirmMovesChoice(t *testing.T) {
	s := mustToggleSubMenu(t, "single", KindToggleSingle, 1, 3, newToggles(1, 0, 0))
	s.Handle(ButtonA)
	expectValues(t, s, 1, 0, 0)
	s.Handle(ButtonRight)
	s.Handle(ButtonA)
	expectValues(t, s, 0, 1, 0)
}

func TestToggleMultipleIncrementsOnlySelected(t *testing.T) {
	s := mustToggleSubMenu(t, "multi", KindToggleMultiple, 2, 2, newToggles(0, 0, 0))
	s.Handle(ButtonA)
	s.Handle(ButtonDown)
	s.Handle(ButtonA)
	expectValues(t, s, 1, 0, 1)
	// (1, 1) is empty so the checked move falls back to (1, 0)
	s.Handle(ButtonRight)
	s.Handle(ButtonA)
	expectValues(t, s, 1, 0, 0)
}

func TestSliderSubMenuDispatch(t *testing.T) {
	s := NewSliderSubMenu("range", "Range", "", NewSlider(0, 10, 2, 8))
	s.Handle(ButtonUp)
	s.Handle(ButtonDown)
	s.Handle(ButtonLeft)
	if s.Slider.Hover != HandleMax {
		t.Fatalf("expected left to switch hover while unselected")
	}
	s.Handle(ButtonA)
	s.Handle(ButtonRight)
	s.Handle(ButtonRight)
	s.Handle(ButtonRight)
	if s.Slider.SelectedMax != 10 {
		t.Fatalf("expected max clamped to 10, got %d", s.Slider.SelectedMax)
	}
	s.Handle(ButtonLeft)
	if s.Slider.SelectedMax != 9 {
		t.Fatalf("expected max 9, got %d", s.Slider.SelectedMax)
	}
	s.Handle(ButtonB)
	if s.Slider.IsHandleSelected() {
		t.Fatalf("expected cancel to deselect handle")
	}
	s.Handle(ButtonB)
	if s.Slider.IsHandleSelected() || s.Slider.SelectedMin != 2 {
		t.Fatalf("expected second cancel to be a no-op, got %+v", *s.Slider)
	}
}

func TestLabelSubMenuIgnoresInput(t *testing.T) {
	s := NewLabelSubMenu("label", "Label", "")
	for _, b := range Buttons {
		s.Handle(b)
	}
	if s.Values() != nil {
		t.Fatalf("expected no values for label submenu")
	}
}

func TestNewToggleSubMenuRejectsBadInput(t *testing.T) {
	if _, err := NewToggleSubMenu("x", "x", "", KindSlider, 1, 1, nil); err == nil {
		t.Fatalf("expected error for non-toggle kind")
	}
	if _, err := NewToggleSubMenu("x", "x", "", KindToggleSingle, 1, 1, newToggles(0, 0)); err == nil {
		t.Fatalf("expected capacity error")
	}
}

func TestSelectedToggleOnHolePanics(t *testing.T) {
	s := mustToggleSubMenu(t, "multi", KindToggleMultiple, 1, 2, newToggles(0))
	_ = s.Toggles.Select(0, 1)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvariant) {
			t.Fatalf("expected ErrInvariant panic, got %v", r)
		}
	}()
	s.Handle(ButtonA)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindToggleSingle, KindToggleMultiple, KindSlider, KindNone} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("expected %s, got %s (%v)", k, got, err)
		}
	}
	if _, err := ParseKind("dropdown"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
