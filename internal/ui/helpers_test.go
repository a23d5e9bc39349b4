package ui

import (
	"testing"

	"github.com/atomicstack/training-mod-tui/internal/menu"
	"github.com/charmbracelet/bubbles/cursor"
)

func toggles(values ...uint8) []menu.Toggle {
	titles := []string{"Airdodge", "Jump", "Shield", "Spotdodge"}
	out := make([]menu.Toggle, len(values))
	for i, v := range values {
		out[i] = menu.NewToggle(titles[i%len(titles)], v, 1)
	}
	return out
}

// newTestApp returns an app with two tabs:
//
//	Defensive: [ Mash Single, Mash Multi ]
//	           [ SDI Range,   About      ]
//	Save State: [ Save State ]
func newTestApp(t *testing.T) *menu.App {
	t.Helper()
	single, err := menu.NewToggleSubMenu("mash_single", "Mash Single", "Pick one option", menu.KindToggleSingle, 1, 3, toggles(1, 0, 0))
	if err != nil {
		t.Fatalf("single: %v", err)
	}
	multi, err := menu.NewToggleSubMenu("mash_multi", "Mash Multi", "Pick any options", menu.KindToggleMultiple, 2, 2, toggles(0, 0, 0))
	if err != nil {
		t.Fatalf("multi: %v", err)
	}
	rng := menu.NewSliderSubMenu("sdi_range", "SDI Range", "Drag the handles", menu.NewSlider(0, 10, 2, 8))
	about := menu.NewLabelSubMenu("about", "About", "Informational entry")
	save, err := menu.NewToggleSubMenu("save_state_save", "Save State", "", menu.KindToggleMultiple, 1, 2, toggles(0, 1))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	defensive, err := menu.NewTab("defensive", "Defensive", 2, 2, []*menu.SubMenu{single, multi, rng, about})
	if err != nil {
		t.Fatalf("defensive: %v", err)
	}
	saveTab, err := menu.NewTab("save_state", "Save State", 1, 1, []*menu.SubMenu{save})
	if err != nil {
		t.Fatalf("save tab: %v", err)
	}
	app, err := menu.New([]*menu.Tab{defensive, saveTab})
	if err != nil {
		t.Fatalf("app: %v", err)
	}
	return app
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m := NewModel(newTestApp(t), opts)
	m.filterCursor.SetMode(cursor.CursorStatic)
	return m
}

func newTestHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	return NewHarness(newTestModel(t, opts))
}

func expectPage(t *testing.T, h *Harness, want menu.Page) {
	t.Helper()
	if got := h.Model().App().Page(); got != want {
		t.Fatalf("expected page %s, got %s", want, got)
	}
}

func expectValues(t *testing.T, h *Harness, id string, want ...uint8) {
	t.Helper()
	sub, ok := h.Model().App().SubMenu(id)
	if !ok {
		t.Fatalf("submenu %s not found", id)
	}
	got := sub.Values()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %v, got %v", id, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: expected %v, got %v", id, want, got)
		}
	}
}
