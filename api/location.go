package api

import "github.com/nanoapp/hostkit/hostcall"

type LocationConfig struct {
	// CacheTimeout is how long (seconds) a host-cached fix stays
	// acceptable. Timing policy belongs to the host; the value is only
	// forwarded.
	CacheTimeout   int
	TargetAccuracy int
	WithReGeocode  bool
}

func (c *Client) GetLocation(cfg LocationConfig) *hostcall.Promise[map[string]any] {
	params := map[string]any{}
	if cfg.CacheTimeout != 0 {
		params["cacheTimeout"] = cfg.CacheTimeout
	}
	if cfg.TargetAccuracy != 0 {
		params["targetAccuracy"] = cfg.TargetAccuracy
	}
	if cfg.WithReGeocode {
		params["withReGeocode"] = true
	}
	return c.call("getLocation", params)
}

type OpenLocationConfig struct {
	Longitude float64
	Latitude  float64
	Name      string
	Address   string
	Scale     int
}

// OpenLocation shows a point on the host's map view.
func (c *Client) OpenLocation(cfg OpenLocationConfig) *hostcall.Promise[map[string]any] {
	params := map[string]any{
		"longitude": cfg.Longitude,
		"latitude":  cfg.Latitude,
	}
	if cfg.Name != "" {
		params["name"] = cfg.Name
	}
	if cfg.Address != "" {
		params["address"] = cfg.Address
	}
	if cfg.Scale != 0 {
		params["scale"] = cfg.Scale
	}
	return c.call("openLocation", params)
}
