package menu

import "testing"

func checkSliderBounds(t *testing.T, s *Slider) {
	t.Helper()
	if !(s.AbsMin <= s.SelectedMin && s.SelectedMin <= s.SelectedMax && s.SelectedMax <= s.AbsMax) {
		t.Fatalf("slider bounds violated: %+v", *s)
	}
}

func TestSliderSwitchHoverBlockedWhileSelected(t *testing.T) {
	s := NewSlider(0, 10, 0, 10)
	s.SwitchHover()
	if s.Hover != HandleMax {
		t.Fatalf("expected max handle hovered, got %s", s.Hover)
	}
	s.SelectDeselect()
	s.SwitchHover()
	if s.Hover != HandleMax {
		t.Fatalf("expected hover unchanged while selected, got %s", s.Hover)
	}
	s.Deselect()
	if s.IsHandleSelected() {
		t.Fatalf("expected handle deselected")
	}
	s.SwitchHover()
	if s.Hover != HandleMin {
		t.Fatalf("expected min handle hovered, got %s", s.Hover)
	}
}

func TestSliderHandlesDoNotCross(t *testing.T) {
	s := NewSlider(0, 5, 2, 3)
	for i := 0; i < 4; i++ {
		s.IncrementSelectedSlow()
	}
	if s.SelectedMin != 3 {
		t.Fatalf("expected min handle stopped at max handle, got %d", s.SelectedMin)
	}
	for i := 0; i < 10; i++ {
		s.DecrementSelectedSlow()
	}
	if s.SelectedMin != 0 {
		t.Fatalf("expected min handle at abs min, got %d", s.SelectedMin)
	}

	s.Hover = HandleMax
	for i := 0; i < 10; i++ {
		s.IncrementSelectedSlow()
	}
	if s.SelectedMax != 5 {
		t.Fatalf("expected max handle at abs max, got %d", s.SelectedMax)
	}
	s.SetRange(4, 4)
	s.DecrementSelectedSlow()
	if s.SelectedMax != 4 {
		t.Fatalf("expected max handle stopped at min handle, got %d", s.SelectedMax)
	}
	checkSliderBounds(t, s)
}

func TestSliderZeroFloorDoesNotUnderflow(t *testing.T) {
	s := NewSlider(0, 3, 0, 0)
	s.DecrementSelectedSlow()
	s.Hover = HandleMax
	s.DecrementSelectedSlow()
	if s.SelectedMin != 0 || s.SelectedMax != 0 {
		t.Fatalf("expected range to stay at zero, got %+v", *s)
	}
}

func TestSliderBoundsHoldUnderRandomInput(t *testing.T) {
	s := NewSlider(3, 40, 10, 20)
	seed := uint32(7)
	for i := 0; i < 2000; i++ {
		seed = seed*1103515245 + 12345
		switch (seed >> 16) % 4 {
		case 0:
			s.IncrementSelectedSlow()
		case 1:
			s.DecrementSelectedSlow()
		case 2:
			s.Hover = HandleMin
		case 3:
			s.Hover = HandleMax
		}
		checkSliderBounds(t, s)
	}
}

func TestSliderSetRangeClamps(t *testing.T) {
	s := NewSlider(10, 20, 0, 100)
	if s.SelectedMin != 10 || s.SelectedMax != 20 {
		t.Fatalf("expected clamp to [10, 20], got [%d, %d]", s.SelectedMin, s.SelectedMax)
	}
	s.SetRange(18, 12)
	if s.SelectedMin != 18 || s.SelectedMax != 18 {
		t.Fatalf("expected reversed range to collapse onto 18, got [%d, %d]", s.SelectedMin, s.SelectedMax)
	}
	inverted := NewSlider(9, 1, 0, 0)
	checkSliderBounds(t, inverted)
}
