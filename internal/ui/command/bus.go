package command

import (
	"fmt"

	"github.com/atomicstack/training-mod-tui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Result is delivered back to the model once a request has run.
type Result struct {
	ID   string
	Info string
	Err  error
}

// Request encapsulates an action invocation. Run executes off the update
// loop, so it must not touch model state.
type Request struct {
	ID    string
	Label string
	Run   func() (string, error)
}

// Bus coordinates the execution of side-effecting actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		info, err := req.Run()
		res := Result{ID: req.ID, Info: info, Err: err}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", res))
		return res
	}
}
