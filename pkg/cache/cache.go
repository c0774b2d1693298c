// Package cache provides result caching for expensive whole-grid
// computations.
//
// Defragmentation and free-area discovery scan the entire grid; for large
// layouts served repeatedly (the HTTP API, watch-mode rendering) their
// results are worth keeping. The cache stores opaque bytes under content
// keys, so identical layouts asked the same question hit regardless of where
// the request came from.
//
// Three backends are provided: [FileCache] for CLI usage, [RedisCache] for
// shared server deployments, and [NullCache] to disable caching entirely.
// Key construction is separated into the [Keyer] interface so deployments can
// namespace keys ([ScopedKeyer]) without touching storage.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque bytes under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ResultKeyOpts identifies one engine computation over one layout.
type ResultKeyOpts struct {
	// Op names the computation: "optimize", "areas", "compact".
	Op string

	// Slots is the column count the computation ran with.
	Slots int

	// Compaction is the strategy name, where the operation takes one.
	Compaction string
}

// Keyer builds cache keys from layout content hashes.
type Keyer interface {
	// ResultKey returns the key for an engine computation over the layout
	// with the given content hash.
	ResultKey(layoutHash string, opts ResultKeyOpts) string
}

// DefaultKeyer builds globally-shared keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ResultKey generates a key for an engine computation result.
func (k *DefaultKeyer) ResultKey(layoutHash string, opts ResultKeyOpts) string {
	return hashKey("result", layoutHash, opts)
}
