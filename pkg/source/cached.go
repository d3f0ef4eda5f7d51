package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nettopo/topograph/pkg/cache"
)

// Cached memoizes Neighbors lookups of an inner source through a
// [cache.Cache]. One tree construction asks for the same backbone devices
// repeatedly (the redundancy rule re-reads every peer), and repeated CLI
// invocations ask for the whole walk again, so even a short TTL removes
// most round trips against slow backends.
//
// Only successful lookups are cached. Unknown devices are asked again every
// time: with discovery data the device may simply not have been collected
// yet.
type Cached struct {
	inner Source
	cache cache.Cache
}

// NewCached wraps inner with the given cache.
func NewCached(inner Source, c cache.Cache) *Cached {
	return &Cached{inner: inner, cache: c}
}

// Neighbors returns the cached neighbor list for device, falling through to
// the inner source on a miss. Cache failures are treated as misses; the
// inner source stays authoritative.
func (s *Cached) Neighbors(ctx context.Context, device string) ([]string, error) {
	key := "neighbors:" + device

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		var neighbors []string
		if err := json.Unmarshal(data, &neighbors); err == nil {
			return neighbors, nil
		}
	}

	neighbors, err := s.inner.Neighbors(ctx, device)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(neighbors); err == nil {
		_ = s.cache.Set(ctx, key, data, cache.TTLNeighbors)
	}
	return neighbors, nil
}

// Devices delegates to the inner source when it can enumerate, and fails
// otherwise. Enumeration results are not cached; they are only used
// interactively.
func (s *Cached) Devices(ctx context.Context) ([]string, error) {
	if e, ok := s.inner.(Enumerator); ok {
		return e.Devices(ctx)
	}
	return nil, fmt.Errorf("source cannot enumerate devices")
}

var _ Source = (*Cached)(nil)
