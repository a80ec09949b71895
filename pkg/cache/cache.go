// Package cache provides the persistent lookup cache used by the catalog layer.
//
// Resolving display names against the installed-application catalog is the
// slowest part of a build (on Windows it shells out to the OS), so resolved
// identifiers are cached on disk between runs. Entries carry a TTL so stale
// results age out after applications are installed or removed.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
