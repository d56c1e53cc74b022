package devhost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/nanoapp/hostkit/api"
)

func TestHTTPRequestEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type, got %q", r.Header.Get("Content-Type"))
		}
		w.Header().Set("X-Trace", "abc")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	d := newTestHost(t, Options{})
	c := api.New(d)

	payload, err := c.Request(api.RequestConfig{
		URL:    srv.URL,
		Method: "POST",
		Data:   map[string]any{"x": 1},
	}).Await(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload["status"] != http.StatusCreated {
		t.Fatalf("expected 201, got %v", payload["status"])
	}
	if payload["data"] != `{"ok":true}` {
		t.Fatalf("unexpected body %v", payload["data"])
	}
	headers, ok := payload["headers"].(map[string]any)
	if !ok || headers["X-Trace"] != "abc" {
		t.Fatalf("expected response headers, got %v", payload["headers"])
	}
}

func TestHTTPRequestFailureCarriesNetworkCode(t *testing.T) {
	d := newTestHost(t, Options{})

	done := make(chan map[string]any, 1)
	d.Invoke("httpRequest", map[string]any{"url": "http://127.0.0.1:1/unreachable"}, callbacksTo(t, done))
	reason := <-done
	if reason["error"] != codeNetwork {
		t.Fatalf("expected network error code, got %v", reason)
	}
}

func TestDownloadFileIsMemoized(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	d := newTestHost(t, Options{})
	c := api.New(d)
	ctx := context.Background()

	first, err := c.DownloadFile(api.DownloadConfig{URL: srv.URL}).Await(ctx)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.DownloadFile(api.DownloadConfig{URL: srv.URL}).Await(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if first["filePath"] != second["filePath"] {
		t.Fatalf("expected cached path, got %v and %v", first["filePath"], second["filePath"])
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected one origin fetch, got %d", got)
	}
}
