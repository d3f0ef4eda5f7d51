// Package cache provides byte-oriented caching for adjacency lookups.
//
// Live discovery queries are slow (seconds per device on real gear) and the
// redundancy rule re-reads backbone peers, so memoizing neighbor lists pays
// off quickly. The CLI uses [File] under the XDG cache directory; [Redis]
// suits a shared deployment; [Null] disables caching without branching at
// call sites.
package cache

import (
	"context"
	"time"
)

// TTLNeighbors is how long cached neighbor lists stay valid. Discovery data
// drifts as links flap, so entries age out rather than live forever.
const TTLNeighbors = 15 * time.Minute

// Cache stores opaque byte values under string keys with a TTL.
// A zero ttl means no expiration.
type Cache interface {
	// Get returns the cached value and whether the key was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}
