package api

import "github.com/nanoapp/hostkit/hostcall"

type AlertConfig struct {
	Title      string
	Content    string
	ButtonText string
}

// Alert shows a single-button modal dialog.
func (c *Client) Alert(cfg AlertConfig) *hostcall.Promise[map[string]any] {
	params := map[string]any{}
	if cfg.Title != "" {
		params["title"] = cfg.Title
	}
	if cfg.Content != "" {
		params["content"] = cfg.Content
	}
	if cfg.ButtonText != "" {
		params["buttonText"] = cfg.ButtonText
	}
	return c.call("alert", params)
}

type ConfirmConfig struct {
	Title             string
	Content           string
	ConfirmButtonText string
	CancelButtonText  string
}

// Confirm shows a two-button modal dialog. The payload carries the host's
// confirm flag untouched.
func (c *Client) Confirm(cfg ConfirmConfig) *hostcall.Promise[map[string]any] {
	params := map[string]any{}
	if cfg.Title != "" {
		params["title"] = cfg.Title
	}
	if cfg.Content != "" {
		params["content"] = cfg.Content
	}
	if cfg.ConfirmButtonText != "" {
		params["confirmButtonText"] = cfg.ConfirmButtonText
	}
	if cfg.CancelButtonText != "" {
		params["cancelButtonText"] = cfg.CancelButtonText
	}
	return c.call("confirm", params)
}

type ActionSheetConfig struct {
	Title        string
	OtherButtons []string
	CancelButton string
}

// ShowActionSheet resolves with the tapped button index. -1 means the
// sheet was cancelled or dismissed via the backdrop; that is a user
// outcome, not a failure.
func (c *Client) ShowActionSheet(cfg ActionSheetConfig) *hostcall.Promise[int] {
	params := map[string]any{}
	if cfg.Title != "" {
		params["title"] = cfg.Title
	}
	if len(cfg.OtherButtons) > 0 {
		params["otherButtons"] = cfg.OtherButtons
	}
	if cfg.CancelButton != "" {
		params["cancelButton"] = cfg.CancelButton
	}
	return callField[int](c, "showActionSheet", "index", params)
}
