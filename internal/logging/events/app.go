package events

import "github.com/atomicstack/lcd-menu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(value string, selected bool) {
	logging.Trace("app.finish", map[string]interface{}{"value": value, "selected": selected})
}
