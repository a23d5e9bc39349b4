package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/training-mod-tui/internal/menu"
)

// ReadSelections decodes a selections file. A missing file yields an empty
// map and no error.
func ReadSelections(path string) (menu.Selections, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return menu.Selections{}, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeSelections(data)
}

// DecodeSelections parses the flat JSON map. Blank input decodes to an empty
// map.
func DecodeSelections(data []byte) (menu.Selections, error) {
	sel := menu.Selections{}
	if len(data) == 0 {
		return sel, nil
	}
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("decode selections: %w", err)
	}
	return sel, nil
}

// WriteSelections replaces path with the JSON encoding of sel. The data is
// written to a sibling temporary file first and renamed into place so
// readers never observe a partial document.
func WriteSelections(path string, sel menu.Selections) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("encode selections: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
