package api

import "github.com/nanoapp/hostkit/hostcall"

// GetSystemInfo resolves with the host's device/system snapshot.
func (c *Client) GetSystemInfo() *hostcall.Promise[map[string]any] {
	return c.call("getSystemInfo", nil)
}

// GetSystemInfoSync is the inline variant.
func (c *Client) GetSystemInfoSync() any {
	return c.host.InvokeSync("getSystemInfoSync", nil)
}

// GetNetworkType resolves with the host's connectivity payload.
func (c *Client) GetNetworkType() *hostcall.Promise[map[string]any] {
	return c.call("getNetworkType", nil)
}

// GetAuthCode resolves with the authorization code only, not the full
// payload.
func (c *Client) GetAuthCode() *hostcall.Promise[string] {
	return callField[string](c, "getAuthCode", "authCode", nil)
}
