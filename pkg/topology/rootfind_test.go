package topology

import (
	"context"
	"errors"
	"testing"

	"github.com/nettopo/topograph/pkg/source"
)

func TestFindRootBackboneStart(t *testing.T) {
	// A backbone start is its own root; no lookups needed.
	src := source.NewStatic(map[string][]string{})
	root, err := FindRoot(context.Background(), src, "sweden-pe1.example.com")
	if err != nil {
		t.Fatalf("FindRoot error: %v", err)
	}
	if root != "sweden-pe1.example.com" {
		t.Errorf("root = %q, want start itself", root)
	}
}

func TestFindRootDirectNeighbor(t *testing.T) {
	src := source.NewStatic(map[string][]string{
		"sweden-a1.example.com": {"sweden-a2.example.com", "sweden-pe1.example.com"},
	})
	root, err := FindRoot(context.Background(), src, "sweden-a1.example.com")
	if err != nil {
		t.Fatalf("FindRoot error: %v", err)
	}
	if root != "sweden-pe1.example.com" {
		t.Errorf("root = %q, want sweden-pe1.example.com", root)
	}
}

func TestFindRootMultiHop(t *testing.T) {
	// No backbone among a7's neighbors; the walk descends first-neighbor
	// only: a7 -> a3 -> a1 -> pe1 (found in a1's list).
	src := source.Example()
	root, err := FindRoot(context.Background(), src, "sweden-a7.example.com")
	if err != nil {
		t.Fatalf("FindRoot error: %v", err)
	}
	if root != "sweden-pe1.example.com" {
		t.Errorf("root = %q, want sweden-pe1.example.com", root)
	}
}

func TestFindRootFirstNeighborOnly(t *testing.T) {
	// The backbone sits behind the second neighbor. The walk never
	// branches, so it dead-ends in the a/b cycle and reports no root.
	src := source.NewStatic(map[string][]string{
		"a": {"b", "c"},
		"b": {"a"},
		"c": {"sweden-pe1.example.com"},
		"sweden-pe1.example.com": {"c"},
	})
	root, err := FindRoot(context.Background(), src, "a")
	if err != nil {
		t.Fatalf("FindRoot error: %v", err)
	}
	if root != "" {
		t.Errorf("root = %q, want \"\" (walk must not branch)", root)
	}
}

func TestFindRootCycle(t *testing.T) {
	src := source.NewStatic(map[string][]string{
		"a": {"b"},
		"b": {"a"},
	})
	root, err := FindRoot(context.Background(), src, "a")
	if err != nil {
		t.Fatalf("FindRoot error: %v", err)
	}
	if root != "" {
		t.Errorf("root = %q, want \"\" on a cycle", root)
	}
}

func TestFindRootNoNeighbors(t *testing.T) {
	src := source.NewStatic(map[string][]string{
		"a": {},
	})
	root, err := FindRoot(context.Background(), src, "a")
	if err != nil {
		t.Fatalf("FindRoot error: %v", err)
	}
	if root != "" {
		t.Errorf("root = %q, want \"\" for a leaf", root)
	}
}

func TestFindRootUnknownDevice(t *testing.T) {
	src := source.NewStatic(map[string][]string{})
	_, err := FindRoot(context.Background(), src, "nope")
	if !errors.Is(err, source.ErrUnknownDevice) {
		t.Errorf("err = %v, want ErrUnknownDevice", err)
	}
}
