package ui

import (
	"github.com/atomicstack/training-mod-tui/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds terminal keys to controller buttons plus the UI-only actions.
type KeyMap struct {
	A     key.Binding
	B     key.Binding
	X     key.Binding
	Y     key.Binding
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	L     key.Binding
	R     key.Binding
	ZL    key.Binding
	ZR    key.Binding

	Search       key.Binding
	SaveDefaults key.Binding
	Reset        key.Binding
	ResetAll     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		A: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		B: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		X:     key.NewBinding(key.WithKeys("x")),
		Y:     key.NewBinding(key.WithKeys("y")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓←→", "move")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		Left:  key.NewBinding(key.WithKeys("left", "h")),
		Right: key.NewBinding(key.WithKeys("right", "l")),
		Start: key.NewBinding(key.WithKeys("s")),
		L:     key.NewBinding(key.WithKeys("[")),
		R:     key.NewBinding(key.WithKeys("]")),
		ZL: key.NewBinding(
			key.WithKeys("shift+tab", "pgup"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		ZR: key.NewBinding(
			key.WithKeys("tab", "pgdown"),
			key.WithHelp("tab", "next tab"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		SaveDefaults: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save defaults"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		ResetAll: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Button maps a key press to the controller button it stands for.
func (k KeyMap) Button(msg tea.KeyMsg) (menu.Button, bool) {
	buttons := []struct {
		binding key.Binding
		button  menu.Button
	}{
		{k.A, menu.ButtonA},
		{k.B, menu.ButtonB},
		{k.X, menu.ButtonX},
		{k.Y, menu.ButtonY},
		{k.Up, menu.ButtonUp},
		{k.Down, menu.ButtonDown},
		{k.Left, menu.ButtonLeft},
		{k.Right, menu.ButtonRight},
		{k.Start, menu.ButtonStart},
		{k.L, menu.ButtonL},
		{k.R, menu.ButtonR},
		{k.ZL, menu.ButtonZL},
		{k.ZR, menu.ButtonZR},
	}
	for _, b := range buttons {
		if key.Matches(msg, b.binding) {
			return b.button, true
		}
	}
	return 0, false
}

// ShortHelp returns the key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.A, k.B, k.ZR, k.Search, k.Help, k.Quit}
}

// FullHelp returns the key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.A, k.B, k.Up},
		{k.ZL, k.ZR, k.Search},
		{k.SaveDefaults, k.Reset, k.ResetAll},
		{k.Help, k.Quit},
	}
}
