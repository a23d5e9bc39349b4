package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/training-mod-tui/internal/backend"
	"github.com/atomicstack/training-mod-tui/internal/menu"
)

type recordingTarget struct {
	calls int
	known map[string]bool
}

func (r *recordingTarget) Apply(sel menu.Selections) int {
	r.calls++
	n := 0
	for id := range sel {
		if r.known[id] {
			n++
		}
	}
	return n
}

func TestIncomingSelectionsAreApplied(t *testing.T) {
	target := &recordingTarget{known: map[string]bool{"a": true}}
	d := New(target)
	res := d.Handle(backend.Event{
		Kind:       backend.KindIncoming,
		Selections: menu.Selections{"a": menu.ToggleValue(1), "b": menu.ToggleValue(0)},
	})
	if res.Applied != 1 || res.Ignored != 1 || res.Entries != 2 || res.Published {
		t.Fatalf("unexpected result %+v", res)
	}
	if target.calls != 1 {
		t.Fatalf("expected one apply call, got %d", target.calls)
	}
}

func TestErroredEventsChangeNothing(t *testing.T) {
	target := &recordingTarget{}
	d := New(target)
	res := d.Handle(backend.Event{Kind: backend.KindIncoming, Err: errors.New("boom"), Selections: menu.Selections{"a": {}}})
	if res != (Result{}) || target.calls != 0 {
		t.Fatalf("expected no-op, got %+v (%d calls)", res, target.calls)
	}
}

func TestPublishedEventsAreReported(t *testing.T) {
	d := New(nil)
	res := d.Handle(backend.Event{Kind: backend.KindPublished, Selections: menu.Selections{"a": {}}})
	if !res.Published || res.Entries != 1 || res.Applied != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}
