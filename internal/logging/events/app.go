package events

import "github.com/atomicstack/dirprompt/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(result string, err error) {
	payload := map[string]interface{}{"result": result}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.finish", payload)
}
