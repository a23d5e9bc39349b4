package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/training-mod-tui/internal/backend"
	"github.com/atomicstack/training-mod-tui/internal/layout"
	"github.com/atomicstack/training-mod-tui/internal/logging/events"
	"github.com/atomicstack/training-mod-tui/internal/menu"
	"github.com/atomicstack/training-mod-tui/internal/state"
	"github.com/atomicstack/training-mod-tui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	LayoutPath      string
	DefaultsPath    string
	InputPath       string
	OutputPath      string
	PollInterval    time.Duration
	PublishInterval time.Duration
	Width           int
	Height          int
	ShowFooter      bool
	Verbose         bool
}

// Run bootstraps and executes the Bubble Tea program. It returns the final
// selections serialized as JSON.
func Run(cfg Config) (string, error) {
	menuApp, store, err := Prepare(cfg)
	if err != nil {
		return "", err
	}
	svc := backend.NewService(backend.Options{
		InputPath:       cfg.InputPath,
		OutputPath:      cfg.OutputPath,
		PollInterval:    cfg.PollInterval,
		PublishInterval: cfg.PublishInterval,
	})
	model := ui.NewModel(menuApp, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Defaults:   store,
		Backend:    svc,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if stopErr := svc.Stop(); stopErr != nil {
		err = errors.Join(err, fmt.Errorf("publish selections: %w", stopErr))
	}
	return menuApp.JSON(), err
}

// LayoutSource names where the menu layout is read from.
func LayoutSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// Prepare builds the menu from the configured layout and applies the saved
// defaults. Defaults on disk override the layout's initial values for the ids
// they name.
func Prepare(cfg Config) (*menu.App, state.DefaultsStore, error) {
	menuApp, err := layout.Load(cfg.LayoutPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load layout: %w", err)
	}
	store := state.NewDefaultsStore(cfg.DefaultsPath)
	saved, err := store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load defaults: %w", err)
	}
	if len(saved) > 0 {
		merged := menuApp.Defaults()
		for id, v := range saved {
			merged[id] = v
		}
		menuApp.SetDefaults(merged)
		menuApp.Apply(saved)
	}
	events.App.Ready(LayoutSource(cfg.LayoutPath), menuApp.Tabs.Len(), len(menuApp.Entries()), len(saved))
	return menuApp, store, nil
}
