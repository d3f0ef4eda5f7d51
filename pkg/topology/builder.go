package topology

import (
	"context"
	"fmt"
	"regexp"

	"github.com/nettopo/topograph/pkg/source"
)

// Builder constructs a rooted topology tree from an adjacency source.
//
// Starting from a backbone root (usually obtained via [FindRoot]), the
// builder discovers each node's dependent neighbors and attaches them as
// children, depth-first, in neighbor-list order. A backbone neighbor of a
// backbone node is reclassified as dependent when it has fewer than two
// backbone peers of its own: with a single uplink it is not redundantly
// connected and hangs off the current node for tree purposes.
//
// Attachment is first-claim-wins: a device reachable as a dependent through
// two different parents belongs to whichever parent the traversal reaches
// first, and is never revisited from the second. The result is therefore
// path-order-dependent, matching the discovery order of the adjacency data.
type Builder struct {
	src     source.Source
	pattern *regexp.Regexp
}

// NewBuilder creates a Builder reading adjacencies from src and classifying
// devices with [BackbonePattern].
func NewBuilder(src source.Source) *Builder {
	return &Builder{src: src, pattern: BackbonePattern}
}

// Build constructs the tree rooted at root. The only error condition is a
// failed adjacency lookup (see [source.ErrUnknownDevice]); cycles and
// already-claimed devices end branches silently.
//
// Discovery runs on an explicit edge worklist rather than recursing, so
// deep topologies cannot exhaust the call stack. The worklist is LIFO and
// edges are pushed in reverse, which reproduces recursive depth-first
// order exactly: a dependent's whole subtree is claimed before its next
// sibling is attached.
func (b *Builder) Build(ctx context.Context, root string) (*Tree, error) {
	t := NewTree(root)

	type edge struct{ parent, child string }
	var stack []edge

	push := func(parent string, children []string) {
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, edge{parent, children[i]})
		}
	}

	deps, err := b.dependents(ctx, root)
	if err != nil {
		return nil, err
	}
	push(root, deps)

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A node is expanded only when its claim succeeds, and a claim
		// succeeds at most once per device, so every device is expanded
		// at most once. That claim gate is the cycle guard.
		child, claimed := t.Attach(e.parent, e.child)
		if !claimed {
			continue
		}

		deps, err := b.dependents(ctx, child.ID)
		if err != nil {
			return nil, err
		}
		push(child.ID, deps)
	}

	return t, nil
}

// dependents returns device's dependent neighbors in attach order: the
// non-backbone neighbors first, in list order, then any backbone neighbors
// demoted by the redundancy rule. The rule applies only when device itself
// is backbone.
func (b *Builder) dependents(ctx context.Context, device string) ([]string, error) {
	neighbors, err := b.src.Neighbors(ctx, device)
	if err != nil {
		return nil, fmt.Errorf("neighbors of %s: %w", device, err)
	}

	peers, deps := Partition(neighbors, b.pattern)
	if !b.pattern.MatchString(device) {
		return deps, nil
	}

	for _, peer := range peers {
		peerNeighbors, err := b.src.Neighbors(ctx, peer)
		if err != nil {
			return nil, fmt.Errorf("neighbors of %s: %w", peer, err)
		}
		peerBackbone, _ := Partition(peerNeighbors, b.pattern)
		if len(peerBackbone) < 2 {
			deps = append(deps, peer)
		}
	}
	return deps, nil
}
