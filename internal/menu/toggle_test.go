package menu

import (
	"encoding/json"
	"testing"
)

func TestToggleIncrementWraps(t *testing.T) {
	tg := NewToggle("speed", 0, 2)
	for _, want := range []uint8{1, 2, 0, 1} {
		tg.Increment()
		if tg.Value != want {
			t.Fatalf("expected %d, got %d", want, tg.Value)
		}
	}
	tg.Reset()
	if tg.Value != 0 {
		t.Fatalf("expected reset to 0, got %d", tg.Value)
	}
}

func TestToggleMaxByteWraps(t *testing.T) {
	tg := NewToggle("wide", 255, 255)
	tg.Increment()
	if tg.Value != 0 {
		t.Fatalf("expected wrap from 255, got %d", tg.Value)
	}
	zero := NewToggle("fixed", 0, 0)
	zero.Increment()
	if zero.Value != 0 {
		t.Fatalf("expected max 0 toggle to stay 0, got %d", zero.Value)
	}
}

func TestToggleClampsValue(t *testing.T) {
	if tg := NewToggle("x", 9, 3); tg.Value != 3 {
		t.Fatalf("expected clamp to 3, got %d", tg.Value)
	}
	tg := NewToggle("x", 0, 3)
	tg.Set(7)
	if tg.Value != 3 {
		t.Fatalf("expected Set to clamp to 3, got %d", tg.Value)
	}
}

func TestToggleMarshalsBareValue(t *testing.T) {
	data, err := json.Marshal([]Toggle{NewToggle("a", 0, 1), NewToggle("b", 1, 1)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[0,1]" {
		t.Fatalf("expected [0,1], got %s", data)
	}
}
