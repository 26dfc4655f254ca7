package events

import "github.com/atomicstack/lcd-menu/internal/logging"

type MenuTracer struct{}

type DisplayTracer struct{}

type KeyTracer struct{}

var (
	Menu    = MenuTracer{}
	Display = DisplayTracer{}
	Key     = KeyTracer{}
)

func (MenuTracer) Show(title string, depth int) {
	logging.Trace("menu.show", map[string]interface{}{"menu": title, "depth": depth})
}

func (MenuTracer) Cursor(title string, cursor, top int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": title, "cursor": cursor, "top": top})
}

func (MenuTracer) Select(title, label, kind string) {
	logging.Trace("menu.select", map[string]interface{}{"menu": title, "label": label, "kind": kind})
}

func (MenuTracer) Descend(from, to string, depth int) {
	logging.Trace("menu.descend", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (MenuTracer) Ascend(from, to string, depth int) {
	logging.Trace("menu.ascend", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (MenuTracer) Finish(selected bool, value interface{}) {
	logging.Trace("menu.finish", map[string]interface{}{"selected": selected, "value": value})
}

func (MenuTracer) Cancel(err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.cancel", map[string]interface{}{"error": err.Error()})
}

func (MenuTracer) Jump(title, query string, index int) {
	logging.Trace("menu.jump", map[string]interface{}{"menu": title, "query": query, "index": index})
}

func (DisplayTracer) Hide(title string) {
	logging.Trace("display.hide", map[string]interface{}{"menu": title})
}

func (KeyTracer) Press(key string) {
	logging.Trace("key.press", map[string]interface{}{"key": key})
}
