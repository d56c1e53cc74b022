package api

import "github.com/nanoapp/hostkit/hostcall"

// SetStorage persists data under key in the host's storage facility.
func (c *Client) SetStorage(key string, data any) *hostcall.Promise[map[string]any] {
	return c.call("setStorage", map[string]any{"key": key, "data": data})
}

// GetStorage resolves with the stored data field only. An absent key
// resolves with whatever empty marker the host supplies (typically nil);
// no default is substituted.
func (c *Client) GetStorage(key string) *hostcall.Promise[any] {
	params := map[string]any{"key": key}
	p := hostcall.NewPromise[any]()
	c.host.Invoke("getStorage", params, hostcall.Callbacks{
		Success: func(payload map[string]any) {
			if payload == nil {
				p.Resolve(nil)
				return
			}
			p.Resolve(payload["data"])
		},
		Fail: func(reason map[string]any) {
			p.Reject(&hostcall.CallError{Op: "getStorage", Reason: reason})
		},
	})
	return p
}

func (c *Client) RemoveStorage(key string) *hostcall.Promise[map[string]any] {
	return c.call("removeStorage", map[string]any{"key": key})
}

func (c *Client) ClearStorage() *hostcall.Promise[map[string]any] {
	return c.call("clearStorage", nil)
}

// Synchronous storage variants return the host's value directly.

func (c *Client) SetStorageSync(key string, data any) {
	c.host.InvokeSync("setStorageSync", map[string]any{"key": key, "data": data})
}

func (c *Client) GetStorageSync(key string) any {
	return c.host.InvokeSync("getStorageSync", map[string]any{"key": key})
}

func (c *Client) RemoveStorageSync(key string) {
	c.host.InvokeSync("removeStorageSync", map[string]any{"key": key})
}

func (c *Client) ClearStorageSync() {
	c.host.InvokeSync("clearStorageSync", nil)
}
