package devhost

import "time"

// Responder supplies the user's side of interactive capabilities. A test
// scripts it; a headless embedding can leave it nil and take the
// defaults (confirm everything, tap the first button).
type Responder interface {
	Respond(op string, params map[string]any) (map[string]any, error)
}

type ResponderFunc func(op string, params map[string]any) (map[string]any, error)

func (f ResponderFunc) Respond(op string, params map[string]any) (map[string]any, error) {
	return f(op, params)
}

func defaultDate() (map[string]any, error) {
	return map[string]any{"date": time.Now().Format("2006-01-02")}, nil
}
