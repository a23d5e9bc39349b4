package backend

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/training-mod-tui/internal/menu"
	"github.com/atomicstack/training-mod-tui/internal/state"
)

// Kind represents the type of event emitted by the service.
type Kind int

const (
	// KindIncoming carries selections written by the host process.
	KindIncoming Kind = iota
	// KindPublished reports a snapshot written to the output file.
	KindPublished
)

func (k Kind) String() string {
	if k == KindPublished {
		return "published"
	}
	return "incoming"
}

// Event conveys selections read from or written to disk, or the error that
// prevented it.
type Event struct {
	Kind       Kind
	Path       string
	Selections menu.Selections
	Err        error
}

// Options configures a Service. Empty paths disable the matching half.
type Options struct {
	InputPath       string
	OutputPath      string
	PollInterval    time.Duration
	PublishInterval time.Duration
}

// Service exchanges selections with the host process: it polls InputPath for
// updates and writes published snapshots to OutputPath.
type Service struct {
	opts Options

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	mu         sync.Mutex
	pending    menu.Selections
	hasPending bool
	signal     chan struct{}
	stopOnce   sync.Once
}

// NewService starts the input poller and the publisher.
func NewService(opts Options) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
		signal: make(chan struct{}, 1),
	}

	if opts.InputPath != "" {
		s.startInputPoller()
	}
	if opts.OutputPath != "" {
		s.startPublisher()
	}

	go func() {
		s.wg.Wait()
		close(s.events)
	}()

	return s
}

// Events returns a channel of service events. It is closed after Stop once
// every goroutine has exited.
func (s *Service) Events() <-chan Event {
	return s.events
}

// Stop cancels the service, waits for its goroutines and writes any snapshot
// still waiting for the throttle.
func (s *Service) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		s.cancel()
		s.wg.Wait()
		if sel, ok := s.takePending(); ok {
			err = s.write(sel)
		}
	})
	return err
}

func (s *Service) startInputPoller() {
	interval := s.opts.PollInterval
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	var (
		last    []byte
		lastMod time.Time
	)
	s.wg.Add(1)
	go s.poll(interval, func() (Event, bool) {
		info, err := os.Stat(s.opts.InputPath)
		if errors.Is(err, os.ErrNotExist) {
			last, lastMod = nil, time.Time{}
			return Event{}, false
		}
		evt := Event{Kind: KindIncoming, Path: s.opts.InputPath}
		if err != nil {
			evt.Err = err
			return evt, true
		}
		data, err := os.ReadFile(s.opts.InputPath)
		if err != nil {
			evt.Err = err
			return evt, true
		}
		// identical bytes with a new mtime count as a fresh push
		if last != nil && bytes.Equal(data, last) && info.ModTime().Equal(lastMod) {
			return Event{}, false
		}
		last, lastMod = data, info.ModTime()
		evt.Selections, evt.Err = state.DecodeSelections(bytes.TrimSpace(data))
		return evt, true
	})
}

func (s *Service) poll(interval time.Duration, fetch func() (Event, bool)) {
	defer s.wg.Done()

	emit := func() bool {
		evt, ok := fetch()
		if !ok {
			return true
		}
		return s.emit(evt)
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}

func (s *Service) emit(evt Event) bool {
	select {
	case <-s.ctx.Done():
		return false
	case s.events <- evt:
		return true
	}
}
