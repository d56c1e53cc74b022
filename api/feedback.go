package api

import "github.com/nanoapp/hostkit/hostcall"

// Toast types accepted by the host. ToastNone renders plain text without
// an icon.
const (
	ToastNone      = "none"
	ToastSuccess   = "success"
	ToastFail      = "fail"
	ToastException = "exception"
)

const defaultToastDuration = 2000

type ToastConfig struct {
	Type     string // defaults to ToastNone
	Text     string
	Duration int // milliseconds, defaults to 2000
}

func (c *Client) ShowToast(cfg ToastConfig) *hostcall.Promise[map[string]any] {
	typ := cfg.Type
	if typ == "" {
		typ = ToastNone
	}
	duration := cfg.Duration
	if duration == 0 {
		duration = defaultToastDuration
	}
	params := map[string]any{
		"type":     typ,
		"duration": duration,
	}
	if cfg.Text != "" {
		params["text"] = cfg.Text
	}
	return c.call("showToast", params)
}

type LoadingConfig struct {
	Text  string
	Delay int // milliseconds before the indicator appears, defaults to 0
}

func (c *Client) ShowLoading(cfg LoadingConfig) *hostcall.Promise[map[string]any] {
	params := map[string]any{
		"delay": cfg.Delay,
	}
	if cfg.Text != "" {
		params["text"] = cfg.Text
	}
	return c.call("showLoading", params)
}

// HideLoading completes inline on the host side.
func (c *Client) HideLoading() {
	c.host.InvokeSync("hideLoading", nil)
}
