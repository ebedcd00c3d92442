// Package cache stores benchmark reports between runs.
//
// Reports are opaque byte blobs addressed by string keys built with a
// [Keyer]. Three backends implement [Cache]:
//   - [FileCache]: one JSON file per key under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance, selected with a redis:// URL
//   - [NullCache]: stores nothing (--no-cache)
//
// Use [Open] to pick a backend from configuration.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/permtree/pkg/errors"
)

// Cache is a byte-oriented key/value store with optional expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// A missing or expired key is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Open returns the backend described by url:
//   - "" selects a FileCache rooted at dir
//   - "none" or "null" selects a NullCache
//   - redis:// and rediss:// URLs select a RedisCache
func Open(ctx context.Context, url, dir string) (Cache, error) {
	switch {
	case url == "":
		if dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "cache directory is empty")
		}
		fc, err := NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case url == "none" || url == "null":
		return NewNullCache(), nil
	case strings.HasPrefix(url, "redis://") || strings.HasPrefix(url, "rediss://"):
		return NewRedisCache(ctx, url)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported cache url %q", url)
	}
}
