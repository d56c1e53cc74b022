package hostcall

import "fmt"

// CallError is the single failure kind the SDK surfaces: the host reported
// failure for one call. Reason is the host's failure payload, verbatim and
// unclassified.
type CallError struct {
	Op     string
	Reason map[string]any
}

func (e *CallError) Error() string {
	if msg, ok := e.Reason["errorMessage"].(string); ok && msg != "" {
		return fmt.Sprintf("hostcall %s: %s", e.Op, msg)
	}
	if code, ok := e.Reason["error"]; ok {
		return fmt.Sprintf("hostcall %s: error %v", e.Op, code)
	}
	return fmt.Sprintf("hostcall %s failed", e.Op)
}
