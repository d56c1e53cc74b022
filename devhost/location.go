package devhost

import (
	"context"
	"fmt"
	"time"
)

// LocationSource produces the current position. The devhost owns the
// caching policy around it; callers only pass cacheTimeout through.
type LocationSource interface {
	Current(ctx context.Context) (Location, error)
}

type Location struct {
	Longitude float64
	Latitude  float64
	Accuracy  float64
	Address   string
}

func (l Location) payload() map[string]any {
	p := map[string]any{
		"longitude": l.Longitude,
		"latitude":  l.Latitude,
		"accuracy":  l.Accuracy,
	}
	if l.Address != "" {
		p["address"] = l.Address
	}
	return p
}

// fixedLocation is the default source for headless runs.
type fixedLocation struct{}

func (fixedLocation) Current(context.Context) (Location, error) {
	return Location{Longitude: 0, Latitude: 0, Accuracy: 30}, nil
}

type locEntry struct {
	loc       Location
	fetchedAt time.Time
}

const locCacheKey = "current"

// getLocation honors the per-call cacheTimeout (seconds): a cached fix
// younger than the timeout is reused, otherwise the source is queried
// once no matter how many calls race.
func (d *DevHost) getLocation(params map[string]any) (map[string]any, error) {
	ttl := time.Duration(asInt(params["cacheTimeout"])) * time.Second

	if ttl > 0 {
		if entry, ok := d.locCache.Load(locCacheKey); ok {
			if time.Since(entry.fetchedAt) <= ttl {
				return entry.loc.payload(), nil
			}
		}
	}

	v, err, _ := d.locGroup.Do(locCacheKey, func() (any, error) {
		loc, err := d.locSource.Current(context.Background())
		if err != nil {
			return nil, err
		}
		d.locCache.Store(locCacheKey, locEntry{loc: loc, fetchedAt: time.Now()})
		return loc, nil
	})
	if err != nil {
		return nil, fmt.Errorf("locate: %w", err)
	}
	return v.(Location).payload(), nil
}
