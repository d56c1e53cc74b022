package api

import "github.com/nanoapp/hostkit/hostcall"

const (
	defaultAnimationDuration = 400
	defaultAnimationTiming   = "linear"
)

type AnimationConfig struct {
	Duration        int    // milliseconds, defaults to 400
	TimingFunction  string // defaults to "linear"
	Delay           int
	TransformOrigin string
}

// CreateAnimation registers an animation configuration with the host and
// resolves with whatever handle the host passes back.
func (c *Client) CreateAnimation(cfg AnimationConfig) *hostcall.Promise[map[string]any] {
	duration := cfg.Duration
	if duration == 0 {
		duration = defaultAnimationDuration
	}
	timing := cfg.TimingFunction
	if timing == "" {
		timing = defaultAnimationTiming
	}
	params := map[string]any{
		"duration":       duration,
		"timingFunction": timing,
	}
	if cfg.Delay != 0 {
		params["delay"] = cfg.Delay
	}
	if cfg.TransformOrigin != "" {
		params["transformOrigin"] = cfg.TransformOrigin
	}
	return c.call("createAnimation", params)
}
