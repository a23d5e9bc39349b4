package state

import (
	"strings"
	"sync"

	"github.com/atomicstack/training-mod-tui/internal/logging/events"
	"github.com/atomicstack/training-mod-tui/internal/menu"
)

// DefaultsStore persists the defaults snapshot between sessions.
type DefaultsStore interface {
	Load() (menu.Selections, error)
	Save(menu.Selections) error
	Path() string
}

type fileDefaults struct {
	path string
}

// NewDefaultsStore returns a store backed by path. An empty path keeps the
// defaults in memory only.
func NewDefaultsStore(path string) DefaultsStore {
	if strings.TrimSpace(path) == "" {
		return &memoryDefaults{}
	}
	return &fileDefaults{path: path}
}

func (s *fileDefaults) Load() (menu.Selections, error) {
	sel, err := ReadSelections(s.path)
	if err != nil {
		return nil, err
	}
	events.Store.Load(s.path, len(sel))
	return sel, nil
}

func (s *fileDefaults) Save(sel menu.Selections) error {
	if err := WriteSelections(s.path, sel); err != nil {
		return err
	}
	events.Store.Save(s.path, len(sel))
	return nil
}

func (s *fileDefaults) Path() string { return s.path }

type memoryDefaults struct {
	mu  sync.Mutex
	sel menu.Selections
}

func (s *memoryDefaults) Load() (menu.Selections, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sel == nil {
		return menu.Selections{}, nil
	}
	return s.sel.Clone(), nil
}

func (s *memoryDefaults) Save(sel menu.Selections) error {
	s.mu.Lock()
	s.sel = sel.Clone()
	s.mu.Unlock()
	return nil
}

func (s *memoryDefaults) Path() string { return "" }
