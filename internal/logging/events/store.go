package events

import "github.com/atomicstack/training-mod-tui/internal/logging"

type StoreTracer struct{}

type PublishTracer struct{}

var (
	Store   = StoreTracer{}
	Publish = PublishTracer{}
)

func (StoreTracer) Load(path string, entries int) {
	logging.Trace("store.load", map[string]interface{}{"path": path, "entries": entries})
}

func (StoreTracer) Save(path string, entries int) {
	logging.Trace("store.save", map[string]interface{}{"path": path, "entries": entries})
}

func (PublishTracer) Queue(entries int) {
	logging.Trace("publish.queue", map[string]interface{}{"entries": entries})
}

func (PublishTracer) Write(path string, entries int) {
	logging.Trace("publish.write", map[string]interface{}{"path": path, "entries": entries})
}

func (PublishTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("publish.error", map[string]interface{}{"error": err.Error()})
}
