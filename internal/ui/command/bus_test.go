package command

import (
	"errors"
	"testing"
)

func TestExecuteRunsRequest(t *testing.T) {
	bus := New()
	ran := false
	cmd := bus.Execute(Request{ID: "save", Label: "Save", Run: func() (string, error) {
		ran = true
		return "saved", nil
	}})
	if ran {
		t.Fatalf("expected request to run lazily")
	}
	msg := cmd()
	res, ok := msg.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", msg)
	}
	if !ran || res.ID != "save" || res.Info != "saved" || res.Err != nil {
		t.Fatalf("unexpected result %#v", res)
	}
}

func TestExecuteReportsErrors(t *testing.T) {
	boom := errors.New("boom")
	msg := New().Execute(Request{ID: "save", Run: func() (string, error) { return "", boom }})()
	res := msg.(Result)
	if !errors.Is(res.Err, boom) {
		t.Fatalf("expected boom, got %v", res.Err)
	}
}

func TestExecuteWithoutRunIsNoOp(t *testing.T) {
	if msg := New().Execute(Request{ID: "noop"})(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
