package devhost

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"runtime"

	"github.com/toqueteos/webbrowser"
)

func defaultSystemInfo() map[string]any {
	return map[string]any{
		"platform":     runtime.GOOS,
		"arch":         runtime.GOARCH,
		"model":        "devhost",
		"language":     "en-US",
		"screenWidth":  1280,
		"screenHeight": 800,
	}
}

// mintAuthCode issues a short-lived, single-use authorization code.
func (d *DevHost) mintAuthCode() (map[string]any, error) {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("mint auth code: %w", err)
	}
	return map[string]any{
		"authCode": base64.RawURLEncoding.EncodeToString(buf),
	}, nil
}

func (d *DevHost) pushPage(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pages = append(d.pages, url)
}

func (d *DevHost) replacePage(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.pages) == 0 {
		d.pages = []string{url}
		return
	}
	d.pages[len(d.pages)-1] = url
}

func (d *DevHost) popPage() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.pages) > 0 {
		d.pages = d.pages[:len(d.pages)-1]
	}
}

// Pages returns the current page stack, bottom first.
func (d *DevHost) Pages() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.pages))
	copy(out, d.pages)
	return out
}

// openLink leaves the page stack alone and hands the URL to the system
// browser.
func (d *DevHost) openLink(url string) (map[string]any, error) {
	if err := webbrowser.Open(url); err != nil {
		return nil, &OpError{Code: codeInternal, Message: err.Error()}
	}
	return map[string]any{}, nil
}
