package api

import "encoding/json"

// coerce narrows a payload field to the projected type. Hosts that round
// their payloads through JSON hand numbers back as float64, so the int
// projections accept the usual numeric shapes.
func coerce[T any](v any) T {
	if t, ok := v.(T); ok {
		return t
	}
	var zero T
	switch any(zero).(type) {
	case int:
		return any(asInt(v)).(T)
	case string:
		return any(asString(v)).(T)
	}
	return zero
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	}
	return 0
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
