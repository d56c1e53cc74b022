package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nanoapp/hostkit/hostcall"
)

const contentTypeJSON = "application/json"

type RequestConfig struct {
	URL     string
	Method  string
	Headers map[string]string
	Data    any
	Timeout int // milliseconds, forwarded to the host which owns the policy
}

// Request performs an HTTP request through the host. When no content-type
// header is given, the body is sent as JSON: the header is injected and
// Data is encoded to JSON text. With an explicit content-type the body is
// forwarded untouched. The response payload is resolved with its headers
// field normalized (see NormalizeHeaders).
func (c *Client) Request(cfg RequestConfig) *hostcall.Promise[map[string]any] {
	params := map[string]any{"url": cfg.URL}
	if cfg.Method != "" {
		params["method"] = cfg.Method
	}
	if cfg.Timeout != 0 {
		params["timeout"] = cfg.Timeout
	}

	headers := make(map[string]string, len(cfg.Headers)+1)
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	data := cfg.Data
	if !hasContentType(headers) {
		headers["Content-Type"] = contentTypeJSON
		if data != nil {
			enc, err := json.Marshal(data)
			if err != nil {
				return hostcall.Rejected[map[string]any](fmt.Errorf("encode request body: %w", err))
			}
			data = string(enc)
		}
	}
	params["headers"] = headers
	if data != nil {
		params["data"] = data
	}

	op := "httpRequest"
	p := hostcall.NewPromise[map[string]any]()
	c.host.Invoke(op, params, hostcall.Callbacks{
		Success: func(payload map[string]any) {
			if payload != nil {
				if raw, ok := payload["headers"]; ok {
					payload["headers"] = NormalizeHeaders(raw)
				}
			}
			p.Resolve(payload)
		},
		Fail: func(reason map[string]any) {
			p.Reject(&hostcall.CallError{Op: op, Reason: reason})
		},
	})
	return p
}

func hasContentType(headers map[string]string) bool {
	for k := range headers {
		if strings.EqualFold(k, "Content-Type") {
			return true
		}
	}
	return false
}

type UploadConfig struct {
	URL      string
	FilePath string
	FileName string
	FileType string
	Header   map[string]string
	FormData map[string]string
}

func (c *Client) UploadFile(cfg UploadConfig) *hostcall.Promise[map[string]any] {
	params := map[string]any{
		"url":      cfg.URL,
		"filePath": cfg.FilePath,
	}
	if cfg.FileName != "" {
		params["fileName"] = cfg.FileName
	}
	if cfg.FileType != "" {
		params["fileType"] = cfg.FileType
	}
	if len(cfg.Header) > 0 {
		params["header"] = cfg.Header
	}
	if len(cfg.FormData) > 0 {
		params["formData"] = cfg.FormData
	}
	return c.call("uploadFile", params)
}

type DownloadConfig struct {
	URL    string
	Header map[string]string
}

func (c *Client) DownloadFile(cfg DownloadConfig) *hostcall.Promise[map[string]any] {
	params := map[string]any{"url": cfg.URL}
	if len(cfg.Header) > 0 {
		params["header"] = cfg.Header
	}
	return c.call("downloadFile", params)
}
