package dispatcher

import (
	"github.com/atomicstack/training-mod-tui/internal/backend"
	"github.com/atomicstack/training-mod-tui/internal/menu"
)

// Target receives selections pushed by the host process.
type Target interface {
	Apply(menu.Selections) int
}

// Result summarises what an event changed.
type Result struct {
	Applied   int
	Ignored   int
	Published bool
	Entries   int
}

type Dispatcher struct {
	target Target
}

func New(target Target) *Dispatcher {
	return &Dispatcher{target: target}
}

// Handle applies incoming selections to the target and reports published
// snapshots. Events carrying an error change nothing.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	res.Entries = len(evt.Selections)
	switch evt.Kind {
	case backend.KindIncoming:
		if d.target == nil || len(evt.Selections) == 0 {
			return res
		}
		res.Applied = d.target.Apply(evt.Selections)
		res.Ignored = res.Entries - res.Applied
	case backend.KindPublished:
		res.Published = true
	}
	return res
}
