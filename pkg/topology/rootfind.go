package topology

import (
	"context"
	"fmt"

	"github.com/nettopo/topograph/pkg/source"
)

// FindRoot walks neighbor links from start until it reaches a backbone
// device and returns that device's identifier. It returns start itself when
// start already names a backbone device, and "" (with a nil error) when no
// backbone device is reachable.
//
// The walk examines each hop's neighbor list for a backbone device and
// returns the first one encountered in list order. When none matches, it
// descends into the first-listed neighbor only - a single depth-first path,
// not a search across all branches. That narrow walk is deliberate and
// mirrors how discovery adjacencies are ordered in practice (uplinks first);
// broadening it to a full BFS would change which root wins on meshy access
// layers.
//
// Revisiting a device already seen on the current path terminates the walk
// with "" rather than an error, as does an empty neighbor list. Lookup
// failures from src propagate wrapped.
func FindRoot(ctx context.Context, src source.Source, start string) (string, error) {
	visited := make(map[string]bool)
	for {
		if visited[start] {
			return "", nil
		}
		if IsBackbone(start) {
			return start, nil
		}

		neighbors, err := src.Neighbors(ctx, start)
		if err != nil {
			return "", fmt.Errorf("neighbors of %s: %w", start, err)
		}
		if len(neighbors) == 0 {
			return "", nil
		}

		for _, n := range neighbors {
			if IsBackbone(n) {
				return n, nil
			}
		}

		visited[start] = true
		start = neighbors[0]
	}
}
