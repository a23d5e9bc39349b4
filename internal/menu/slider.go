package menu

// Handle names one end of a slider range.
type Handle int

const (
	HandleMin Handle = iota
	HandleMax
)

func (h Handle) String() string {
	if h == HandleMax {
		return "max"
	}
	return "min"
}

// Slider is a bounded range with two handles. The hovered handle becomes the
// selected one on confirm; while selected, left and right move its value.
//
// AbsMin <= SelectedMin <= SelectedMax <= AbsMax holds after every method.
type Slider struct {
	AbsMin      uint32
	AbsMax      uint32
	SelectedMin uint32
	SelectedMax uint32
	Hover       Handle
	Selected    bool
}

// NewSlider builds a slider over [absMin, absMax] selecting [min, max], with
// every value clamped into a valid ordering.
func NewSlider(absMin, absMax, min, max uint32) *Slider {
	if absMax < absMin {
		absMax = absMin
	}
	s := &Slider{AbsMin: absMin, AbsMax: absMax, SelectedMin: absMin, SelectedMax: absMax}
	s.SetRange(min, max)
	return s
}

// SwitchHover flips the hovered handle. It does nothing while a handle is
// selected.
func (s *Slider) SwitchHover() {
	if s.Selected {
		return
	}
	if s.Hover == HandleMin {
		s.Hover = HandleMax
	} else {
		s.Hover = HandleMin
	}
}

// SelectDeselect toggles selection of the hovered handle.
func (s *Slider) SelectDeselect() {
	s.Selected = !s.Selected
}

// Deselect releases the handle.
func (s *Slider) Deselect() {
	s.Selected = false
}

// IsHandleSelected reports whether a handle is engaged.
func (s *Slider) IsHandleSelected() bool {
	return s.Selected
}

// IncrementSelectedSlow moves the hovered handle up by one, clamped to AbsMax
// for the max handle and to SelectedMax for the min handle.
func (s *Slider) IncrementSelectedSlow() {
	switch s.Hover {
	case HandleMin:
		if s.SelectedMin < s.SelectedMax {
			s.SelectedMin++
		}
	case HandleMax:
		if s.SelectedMax < s.AbsMax {
			s.SelectedMax++
		}
	}
}

// DecrementSelectedSlow moves the hovered handle down by one, clamped to
// AbsMin for the min handle and to SelectedMin for the max handle.
func (s *Slider) DecrementSelectedSlow() {
	switch s.Hover {
	case HandleMin:
		if s.SelectedMin > s.AbsMin {
			s.SelectedMin--
		}
	case HandleMax:
		if s.SelectedMax > s.SelectedMin {
			s.SelectedMax--
		}
	}
}

// SetRange replaces the selected range, clamping both ends into the absolute
// bounds. A reversed range collapses onto min.
func (s *Slider) SetRange(min, max uint32) {
	min = clamp(min, s.AbsMin, s.AbsMax)
	max = clamp(max, s.AbsMin, s.AbsMax)
	if max < min {
		max = min
	}
	s.SelectedMin = min
	s.SelectedMax = max
}

// Range returns the serializable form of the slider.
func (s *Slider) Range() SliderRange {
	return SliderRange{
		SelectedMin: s.SelectedMin,
		SelectedMax: s.SelectedMax,
		AbsMin:      s.AbsMin,
		AbsMax:      s.AbsMax,
	}
}

func clamp(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
