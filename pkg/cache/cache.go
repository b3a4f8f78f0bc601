// Package cache stores rendered artifacts so that re-rendering an unchanged
// scene with an unchanged style is a lookup.
//
// Three backends implement [Cache]:
//
//   - [NullCache]: stores nothing (--no-cache)
//   - [FileCache]: one JSON file per entry under the user's cache directory
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//
// Keys come from [ArtifactKey], which hashes the inputs that determine the
// output bytes. Backends report hits, misses and writes through
// [observability.CacheHooks].
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// keyType returns the prefix of a "type:hash" key, for metrics labels.
func keyType(key string) string {
	if t, _, ok := strings.Cut(key, ":"); ok {
		return t
	}
	return "other"
}
