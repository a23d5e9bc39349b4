package menu

import "testing"

func newToggles(values ...uint8) []Toggle {
	out := make([]Toggle, len(values))
	for i, v := range values {
		out[i] = NewToggle("t", v, 1)
	}
	return out
}

func mustToggleSubMenu(t *testing.T, id string, kind Kind, rows, cols int, toggles []Toggle) *SubMenu {
	t.Helper()
	s, err := NewToggleSubMenu(id, id, "", kind, rows, cols, toggles)
	if err != nil {
		t.Fatalf("submenu %s: %v", id, err)
	}
	return s
}

func mustTab(t *testing.T, id string, rows, cols int, submenus ...*SubMenu) *Tab {
	t.Helper()
	tab, err := NewTab(id, id, rows, cols, submenus)
	if err != nil {
		t.Fatalf("tab %s: %v", id, err)
	}
	return tab
}

func mustApp(t *testing.T, tabs ...*Tab) *App {
	t.Helper()
	app, err := New(tabs)
	if err != nil {
		t.Fatalf("app: %v", err)
	}
	return app
}

// newTestApp returns an app with two tabs:
//
//	mod:  [ single, multi ]
//	      [ range,  label ]
//	save: [ save_state_save ]
func newTestApp(t *testing.T) *App {
	t.Helper()
	single := mustToggleSubMenu(t, "single", KindToggleSingle, 1, 3, newToggles(1, 0, 0))
	multi := mustToggleSubMenu(t, "multi", KindToggleMultiple, 2, 2, newToggles(0, 0, 0))
	rng := NewSliderSubMenu("range", "Range", "", NewSlider(0, 10, 2, 8))
	label := NewLabelSubMenu("label", "Label", "informational")
	save := mustToggleSubMenu(t, "save_state_save", KindToggleMultiple, 1, 2, newToggles(0, 1))
	return mustApp(t,
		mustTab(t, "mod", 2, 2, single, multi, rng, label),
		mustTab(t, "save", 1, 1, save),
	)
}

func press(a *App, buttons ...Button) {
	for _, b := range buttons {
		a.Handle(b)
	}
}

func expectPage(t *testing.T, a *App, want Page) {
	t.Helper()
	if a.Page() != want {
		t.Fatalf("expected page %s, got %s", want, a.Page())
	}
}

func expectValues(t *testing.T, s *SubMenu, want ...uint8) {
	t.Helper()
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %v, got %v", s.ID, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: expected %v, got %v", s.ID, want, got)
		}
	}
}
