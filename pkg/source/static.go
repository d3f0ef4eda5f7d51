package source

import (
	"context"
	"fmt"
	"slices"
)

// Static is an in-memory adjacency table. It is the reference backend: fast,
// deterministic, and handy in tests. Neighbor order is preserved exactly as
// provided.
type Static struct {
	neighbors map[string][]string
}

// NewStatic creates a static source over the given adjacency table. The map
// is not copied; callers must not mutate it after handing it over.
func NewStatic(neighbors map[string][]string) *Static {
	return &Static{neighbors: neighbors}
}

// Neighbors returns the stored neighbor list for device.
func (s *Static) Neighbors(_ context.Context, device string) ([]string, error) {
	n, ok := s.neighbors[device]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDevice, device)
	}
	return slices.Clone(n), nil
}

// Devices returns all known device identifiers in sorted order.
func (s *Static) Devices(_ context.Context) ([]string, error) {
	devices := make([]string, 0, len(s.neighbors))
	for d := range s.neighbors {
		devices = append(devices, d)
	}
	slices.Sort(devices)
	return devices, nil
}

var (
	_ Source     = (*Static)(nil)
	_ Enumerator = (*Static)(nil)
)
