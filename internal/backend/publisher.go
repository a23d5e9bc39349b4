package backend

import (
	"github.com/atomicstack/training-mod-tui/internal/logging/events"
	"github.com/atomicstack/training-mod-tui/internal/menu"
	"github.com/atomicstack/training-mod-tui/internal/state"
)

// Publish queues sel for writing. Only the most recent snapshot is kept, so
// bursts of input collapse into one write per publish interval. It never
// blocks and is a no-op without an output path.
func (s *Service) Publish(sel menu.Selections) {
	if s.opts.OutputPath == "" {
		return
	}
	s.mu.Lock()
	s.pending = sel.Clone()
	s.hasPending = true
	s.mu.Unlock()
	events.Publish.Queue(len(sel))

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *Service) startPublisher() {
	th := newThrottle(s.opts.PublishInterval)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-s.ctx.Done():
				return
			case <-s.signal:
			}
			if !th.wait(s.ctx) {
				return
			}
			sel, ok := s.takePending()
			if !ok {
				continue
			}
			err := s.write(sel)
			if !s.emit(Event{Kind: KindPublished, Path: s.opts.OutputPath, Selections: sel, Err: err}) {
				return
			}
		}
	}()
}

func (s *Service) takePending() (menu.Selections, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPending {
		return nil, false
	}
	sel := s.pending
	s.pending = nil
	s.hasPending = false
	return sel, true
}

func (s *Service) write(sel menu.Selections) error {
	if err := state.WriteSelections(s.opts.OutputPath, sel); err != nil {
		events.Publish.Error(err)
		return err
	}
	events.Publish.Write(s.opts.OutputPath, len(sel))
	return nil
}
