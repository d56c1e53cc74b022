// Package wsbridge carries the host capability surface across a
// WebSocket. The client side is a hostcall.Host whose calls travel as
// JSON frames; the server side exposes any hostcall.Host on an HTTP
// endpoint. One call frame in, exactly one result frame back.
package wsbridge

import "time"

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 20

	sendBuffer = 256
)

// frame is both directions of the bridge protocol. A frame with Op set
// is a call; a frame without Op is the result for the same ID. Sync
// calls answer with Value instead of Payload.
type frame struct {
	ID      uint64         `json:"id"`
	Op      string         `json:"op,omitempty"`
	Sync    bool           `json:"sync,omitempty"`
	Params  map[string]any `json:"params,omitempty"`
	OK      bool           `json:"ok,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
	Value   any            `json:"value,omitempty"`
}
