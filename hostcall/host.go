// Package hostcall defines the contract between the SDK and the runtime
// that provides the native capabilities (dialogs, navigation, storage,
// network, device queries).
//
// The runtime exposes every capability through a single object with a
// callback calling convention: one call in, at most one of {success, fail}
// out, fired at most once. This package carries that contract plus the
// Promise type the adapter layer settles from those callbacks.
package hostcall

// Callbacks is the completion pair handed to the host for one call.
// The host invokes at most one of the two, at most once. Payloads are
// opaque to this layer and forwarded untouched.
type Callbacks struct {
	Success func(payload map[string]any)
	Fail    func(reason map[string]any)
}

// Host is the runtime's capability surface. Implementations must be safe
// for concurrent use; the SDK issues exactly one host call per adapter
// invocation and installs exactly one callback pair.
//
// Invoke starts an asynchronous capability call. The host may fire the
// callback before Invoke returns (a fully synchronous host is a valid
// implementation).
//
// InvokeSync calls a capability that completes inline and returns its
// value directly.
type Host interface {
	Invoke(op string, params map[string]any, cb Callbacks)
	InvokeSync(op string, params map[string]any) any
}
