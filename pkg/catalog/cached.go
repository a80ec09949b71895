package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/mkessler/startlayout/pkg/cache"
)

// DefaultTTL is how long cached lookup results stay valid. A day is long
// enough to make repeated builds cheap without hiding freshly installed
// applications for too long.
const DefaultTTL = 24 * time.Hour

// Cached wraps another catalog with a persistent lookup cache.
//
// Misses are cached too: a shortcut with no catalog match would otherwise
// re-trigger a full OS application scan on every build.
type Cached struct {
	inner Catalog
	cache cache.Cache
	ttl   time.Duration
}

// cachedResult is the serialized form of one lookup outcome.
type cachedResult struct {
	ID    string `json:"id,omitempty"`
	Found bool   `json:"found"`
}

// NewCached wraps inner with the given cache. A ttl of zero uses [DefaultTTL].
func NewCached(inner Catalog, c cache.Cache, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cached{inner: inner, cache: c, ttl: ttl}
}

// Lookup implements Catalog.
func (c *Cached) Lookup(ctx context.Context, displayName string) (string, bool, error) {
	key := "lookup:" + strings.ToLower(displayName)

	if data, hit, err := c.cache.Get(ctx, key); err == nil && hit {
		var res cachedResult
		if err := json.Unmarshal(data, &res); err == nil {
			return res.ID, res.Found, nil
		}
		// Unreadable entry: fall through and overwrite it.
	}

	id, ok, err := c.inner.Lookup(ctx, displayName)
	if err != nil {
		return "", false, err
	}

	if data, err := json.Marshal(cachedResult{ID: id, Found: ok}); err == nil {
		// Cache write failures are not fatal; the lookup already succeeded.
		_ = c.cache.Set(ctx, key, data, c.ttl)
	}

	return id, ok, nil
}
