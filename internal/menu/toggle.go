package menu

import "encoding/json"

// Toggle is a bounded counter that wraps back to zero after Max.
type Toggle struct {
	Title string
	Value uint8
	Max   uint8
}

// NewToggle returns a toggle with value clamped into [0, max].
func NewToggle(title string, value, max uint8) Toggle {
	if value > max {
		value = max
	}
	return Toggle{Title: title, Value: value, Max: max}
}

// Increment advances the value, wrapping to zero once Max is exceeded.
func (t *Toggle) Increment() {
	if t.Value >= t.Max {
		t.Value = 0
		return
	}
	t.Value++
}

// Reset sets the value back to zero.
func (t *Toggle) Reset() {
	t.Value = 0
}

// Set stores v, clamped to Max.
func (t *Toggle) Set(v uint8) {
	if v > t.Max {
		v = t.Max
	}
	t.Value = v
}

// MarshalJSON encodes the toggle as its bare value.
func (t Toggle) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(t.Value))
}
