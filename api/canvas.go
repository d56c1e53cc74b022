package api

// CreateCanvasContext returns the host's drawing context for the given
// canvas, as-is.
func (c *Client) CreateCanvasContext(canvasID string) any {
	return c.host.InvokeSync("createCanvasContext", map[string]any{"canvasId": canvasID})
}

// CreateSelectorQuery returns the host's node query object, as-is.
func (c *Client) CreateSelectorQuery() any {
	return c.host.InvokeSync("createSelectorQuery", nil)
}
