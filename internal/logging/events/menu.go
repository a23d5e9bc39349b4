package events

import "github.com/atomicstack/training-mod-tui/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) Input(page, button string) {
	logging.Trace("menu.input", map[string]interface{}{"page": page, "button": button})
}

func (MenuTracer) Page(from, to, button string) {
	logging.Trace("menu.page", map[string]interface{}{"from": from, "to": to, "button": button})
}

func (MenuTracer) Cursor(scope, id string, row, col int) {
	logging.Trace("menu.cursor", map[string]interface{}{
		"scope": scope,
		"id":    id,
		"row":   row,
		"col":   col,
	})
}

func (MenuTracer) Toggle(id string, values []uint8) {
	ints := make([]int, len(values))
	for i, v := range values {
		ints[i] = int(v)
	}
	logging.Trace("menu.toggle", map[string]interface{}{"id": id, "values": ints})
}

func (MenuTracer) Slider(id string, min, max uint32, selected bool) {
	logging.Trace("menu.slider", map[string]interface{}{
		"id":       id,
		"min":      min,
		"max":      max,
		"selected": selected,
	})
}

func (MenuTracer) Focus(id string, ok bool) {
	logging.Trace("menu.focus", map[string]interface{}{"id": id, "found": ok})
}

func (MenuTracer) Reset(scope string, applied int) {
	logging.Trace("menu.reset", map[string]interface{}{"scope": scope, "applied": applied})
}
