// Package api is the promise-style adapter over the host runtime's native
// capability surface. Every method forwards one configuration to one host
// entry point and settles a promise from the host's success/fail callbacks.
//
// The adapter performs no validation, no retries, no logging and no error
// translation: a malformed configuration is the host's failure to report,
// and a host failure reason reaches the caller verbatim inside
// *hostcall.CallError. The only transforms this layer owns are the
// documented default substitutions, the JSON body encoding on network
// requests, and the response header normalization.
package api

import "github.com/nanoapp/hostkit/hostcall"

// Client exposes one method per host capability. The host is an injected
// capability reference so callers (and tests) decide which runtime backs
// the calls.
type Client struct {
	host hostcall.Host
}

func New(host hostcall.Host) *Client {
	return &Client{host: host}
}

// call wires the standard pass-through shape: resolve with the verbatim
// success payload, reject with the verbatim failure reason.
func (c *Client) call(op string, params map[string]any) *hostcall.Promise[map[string]any] {
	p := hostcall.NewPromise[map[string]any]()
	c.host.Invoke(op, params, hostcall.Callbacks{
		Success: p.Resolve,
		Fail: func(reason map[string]any) {
			p.Reject(&hostcall.CallError{Op: op, Reason: reason})
		},
	})
	return p
}

// callField resolves with a single projected field of the success payload
// instead of the payload itself.
func callField[T any](c *Client, op, field string, params map[string]any) *hostcall.Promise[T] {
	p := hostcall.NewPromise[T]()
	c.host.Invoke(op, params, hostcall.Callbacks{
		Success: func(payload map[string]any) {
			var v T
			if payload != nil {
				v = coerce[T](payload[field])
			}
			p.Resolve(v)
		},
		Fail: func(reason map[string]any) {
			p.Reject(&hostcall.CallError{Op: op, Reason: reason})
		},
	})
	return p
}
