package devhost

import "fmt"

// Host error codes surfaced in failure payloads.
const (
	codeInternal  = 1
	codeUnknownOp = 2
	codeCancelled = 3
	codeNetwork   = 4
)

// OpError is a capability failure with a host error code. It becomes the
// {error, errorMessage} failure payload the adapter forwards verbatim.
type OpError struct {
	Code    int
	Message string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("devhost: %s (error %d)", e.Message, e.Code)
}

func failPayload(err error) map[string]any {
	if oe, ok := err.(*OpError); ok {
		return map[string]any{"error": oe.Code, "errorMessage": oe.Message}
	}
	return map[string]any{"error": codeInternal, "errorMessage": err.Error()}
}
