package devhost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// httpRequest performs the forwarded request and shapes the response the
// way the capability contract documents it: status, body text, one
// header mapping.
func (d *DevHost) httpRequest(params map[string]any) (map[string]any, error) {
	url := asString(params["url"])
	method := strings.ToUpper(asString(params["method"]))
	if method == "" {
		method = http.MethodGet
	}

	ctx := context.Background()
	if timeout := asInt(params["timeout"]); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Millisecond)
		defer cancel()
	}

	body, err := requestBody(params["data"])
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &OpError{Code: codeNetwork, Message: err.Error()}
	}
	for k, v := range asStringMap(params["headers"]) {
		req.Header.Set(k, v)
	}

	resp, err := d.httpc.Do(req)
	if err != nil {
		return nil, &OpError{Code: codeNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &OpError{Code: codeNetwork, Message: err.Error()}
	}

	headers := make(map[string]any, len(resp.Header))
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}
	return map[string]any{
		"status":  resp.StatusCode,
		"data":    string(data),
		"headers": headers,
	}, nil
}

func requestBody(data any) (io.Reader, error) {
	switch b := data.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(b), nil
	case []byte:
		return strings.NewReader(string(b)), nil
	default:
		enc, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		return strings.NewReader(string(enc)), nil
	}
}

// downloadFile fetches the URL into a temp file. Repeated downloads of
// the same URL reuse the cached file while it still exists on disk.
func (d *DevHost) downloadFile(params map[string]any) (map[string]any, error) {
	url := asString(params["url"])

	if path, ok := d.downloads.Get(url); ok {
		if _, err := os.Stat(path); err == nil {
			return map[string]any{"filePath": path}, nil
		}
		d.downloads.Remove(url)
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, &OpError{Code: codeNetwork, Message: err.Error()}
	}
	for k, v := range asStringMap(params["header"]) {
		req.Header.Set(k, v)
	}

	resp, err := d.httpc.Do(req)
	if err != nil {
		return nil, &OpError{Code: codeNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, &OpError{Code: codeNetwork, Message: fmt.Sprintf("download failed with status %d", resp.StatusCode)}
	}

	f, err := os.CreateTemp("", "hostkit-download-*")
	if err != nil {
		return nil, fmt.Errorf("create download file: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, &OpError{Code: codeNetwork, Message: err.Error()}
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close download file: %w", err)
	}

	d.downloads.Add(url, f.Name())
	return map[string]any{"filePath": f.Name()}, nil
}

func (d *DevHost) uploadFile(params map[string]any) (map[string]any, error) {
	url := asString(params["url"])
	filePath := asString(params["filePath"])
	fileName := asString(params["fileName"])
	if fileName == "" {
		fileName = filepath.Base(filePath)
	}

	src, err := os.Open(filePath)
	if err != nil {
		return nil, &OpError{Code: codeInternal, Message: err.Error()}
	}
	defer src.Close()

	var buf strings.Builder
	mw := multipart.NewWriter(&buf)
	for k, v := range asStringMap(params["formData"]) {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write form field: %w", err)
		}
	}
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, fmt.Errorf("copy upload body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(buf.String()))
	if err != nil {
		return nil, &OpError{Code: codeNetwork, Message: err.Error()}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for k, v := range asStringMap(params["header"]) {
		req.Header.Set(k, v)
	}

	resp, err := d.httpc.Do(req)
	if err != nil {
		return nil, &OpError{Code: codeNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &OpError{Code: codeNetwork, Message: err.Error()}
	}
	return map[string]any{
		"status": resp.StatusCode,
		"data":   string(data),
	}, nil
}
