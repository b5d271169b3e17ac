package events

import "github.com/atomicstack/dirprompt/internal/logging"

type UITracer struct{}

type SearchTracer struct{}

type NavTracer struct{}

var (
	UI     = UITracer{}
	Search = SearchTracer{}
	Nav    = NavTracer{}
)

func (UITracer) Key(name, action, mode string) {
	logging.Trace("ui.key", map[string]interface{}{"key": name, "action": action, "mode": mode})
}

func (UITracer) Cursor(depth, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"depth": depth, "cursor": cursor})
}

func (SearchTracer) Start() {
	logging.Trace("search.start", nil)
}

func (SearchTracer) Append(term string) {
	logging.Trace("search.append", map[string]interface{}{"term": term})
}

func (SearchTracer) Backspace(term string) {
	logging.Trace("search.backspace", map[string]interface{}{"term": term})
}

func (SearchTracer) Match(term string, index int) {
	logging.Trace("search.match", map[string]interface{}{"term": term, "index": index})
}

func (SearchTracer) End(reason string) {
	logging.Trace("search.end", map[string]interface{}{"reason": reason})
}

func (NavTracer) Commit(label, path, kind string) {
	logging.Trace("nav.commit", map[string]interface{}{"choice": label, "path": path, "kind": kind})
}

func (NavTracer) Traverse(path string, depth, choices int) {
	logging.Trace("nav.traverse", map[string]interface{}{"path": path, "depth": depth, "choices": choices})
}

func (NavTracer) Done(relative string) {
	logging.Trace("nav.done", map[string]interface{}{"relative": relative})
}

func (NavTracer) Ignored(label string) {
	logging.Trace("nav.ignored", map[string]interface{}{"choice": label})
}
