package events

import "github.com/atomicstack/training-mod-tui/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

// Ready records the menu that was built and where its state came from.
func (AppTracer) Ready(layout string, tabs, submenus, defaults int) {
	logging.Trace("app.ready", map[string]interface{}{
		"layout":   layout,
		"tabs":     tabs,
		"submenus": submenus,
		"defaults": defaults,
	})
}

func (AppTracer) Exit(page string, selections int) {
	logging.Trace("app.exit", map[string]interface{}{"page": page, "selections": selections})
}
