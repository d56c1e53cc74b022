package api

import "github.com/nanoapp/hostkit/hostcall"

// NavigateTo pushes a new page onto the host's page stack.
func (c *Client) NavigateTo(url string) *hostcall.Promise[map[string]any] {
	return c.call("navigateTo", map[string]any{"url": url})
}

// RedirectTo replaces the current page.
func (c *Client) RedirectTo(url string) *hostcall.Promise[map[string]any] {
	return c.call("redirectTo", map[string]any{"url": url})
}

// NavigateBack pops the current page. The host handles an empty stack.
func (c *Client) NavigateBack() {
	c.host.InvokeSync("navigateBack", nil)
}

// OpenLink opens a URL outside the current page stack (system browser or
// an external container, host's choice).
func (c *Client) OpenLink(url string) *hostcall.Promise[map[string]any] {
	return c.call("openLink", map[string]any{"url": url})
}

type NavigationBarConfig struct {
	Title           string
	BackgroundColor string
	Reset           bool // restore host defaults first, defaults to false
}

func (c *Client) SetNavigationBar(cfg NavigationBarConfig) *hostcall.Promise[map[string]any] {
	params := map[string]any{
		"reset": cfg.Reset,
	}
	if cfg.Title != "" {
		params["title"] = cfg.Title
	}
	if cfg.BackgroundColor != "" {
		params["backgroundColor"] = cfg.BackgroundColor
	}
	return c.call("setNavigationBar", params)
}

// StopPullDownRefresh ends the pull-to-refresh indicator.
func (c *Client) StopPullDownRefresh() {
	c.host.InvokeSync("stopPullDownRefresh", nil)
}

// PageScrollTo scrolls the current page to scrollTop (in the host's
// layout units).
func (c *Client) PageScrollTo(scrollTop int) {
	c.host.InvokeSync("pageScrollTo", map[string]any{"scrollTop": scrollTop})
}

// HideKeyboard dismisses the soft keyboard.
func (c *Client) HideKeyboard() {
	c.host.InvokeSync("hideKeyboard", nil)
}
