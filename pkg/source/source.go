// Package source provides adjacency lookups over neighbor-discovery data.
//
// A [Source] answers one question: which neighbors does a device directly
// observe? The reference backend is a fixed in-memory table ([Static]), with
// [File], [Redis] and [Mongo] backends for operator-supplied datasets and
// [Cached] as a memoizing decorator for slow backends.
//
// Neighbor lists are ordered; traversal semantics upstream depend on that
// order, so implementations must return neighbors exactly as stored.
package source

import (
	"context"
	"errors"
)

// ErrUnknownDevice is returned (wrapped) by [Source.Neighbors] when the
// requested device has no entry in the backing data. With a consistent
// dataset this only happens when a referenced neighbor is not itself a key,
// so callers treat it as a data-integrity failure, not a transient fault.
var ErrUnknownDevice = errors.New("unknown device")

// Source yields per-device neighbor lists as directly observed by each
// device. Lookups for devices absent from the backing data fail with an
// error wrapping [ErrUnknownDevice].
type Source interface {
	// Neighbors returns the ordered neighbor identifiers for device.
	// The returned slice is owned by the caller.
	Neighbors(ctx context.Context, device string) ([]string, error)
}

// Enumerator is implemented by sources that can list every known device.
// Listing order is sorted and deterministic.
type Enumerator interface {
	Devices(ctx context.Context) ([]string, error)
}
