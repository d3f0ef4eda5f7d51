package topology

import (
	"testing"
)

func TestTreeAttach(t *testing.T) {
	tree := NewTree("root")

	n, claimed := tree.Attach("root", "a")
	if !claimed {
		t.Fatal("first attach should claim")
	}
	if n.Parent != "root" {
		t.Errorf("a.Parent = %q, want root", n.Parent)
	}

	r, _ := tree.Node("root")
	if len(r.Children) != 1 || r.Children[0] != "a" {
		t.Errorf("root.Children = %v, want [a]", r.Children)
	}
}

func TestTreeAttachFirstClaimWins(t *testing.T) {
	tree := NewTree("root")
	tree.Attach("root", "a")
	tree.Attach("root", "b")

	// b tries to steal a; the original claim stands.
	if _, claimed := tree.Attach("b", "a"); claimed {
		t.Error("second claim should not succeed")
	}

	a, _ := tree.Node("a")
	if a.Parent != "root" {
		t.Errorf("a.Parent = %q, want root after rejected re-claim", a.Parent)
	}
	b, _ := tree.Node("b")
	if len(b.Children) != 0 {
		t.Errorf("b.Children = %v, want empty", b.Children)
	}
}

func TestTreeAttachRejectsParentAsChild(t *testing.T) {
	tree := NewTree("root")
	tree.Attach("root", "a")

	// a must not adopt its own parent.
	if _, claimed := tree.Attach("a", "root"); claimed {
		t.Error("attaching the root as a child should be rejected")
	}
	tree.Attach("a", "b")
	if _, claimed := tree.Attach("b", "a"); claimed {
		t.Error("attaching own parent should be rejected")
	}
}

func TestTreeAttachSelf(t *testing.T) {
	tree := NewTree("root")
	if _, claimed := tree.Attach("a", "a"); claimed {
		t.Error("self-attach should be rejected")
	}
}

func TestTreeSingleParentInvariant(t *testing.T) {
	tree := NewTree("root")
	tree.Attach("root", "a")
	tree.Attach("root", "b")
	tree.Attach("a", "c")
	tree.Attach("b", "c") // rejected
	tree.Attach("c", "b") // rejected, b already claimed

	// Each non-root node appears in exactly one child list.
	seen := map[string]int{}
	tree.Walk("root", func(n *Node, _ int) {
		for _, ch := range n.Children {
			seen[ch]++
		}
	})
	for id, count := range seen {
		if count != 1 {
			t.Errorf("%s appears in %d child lists", id, count)
		}
	}
}

func TestTreeDepth(t *testing.T) {
	tree := NewTree("root")
	tree.Attach("root", "a")
	tree.Attach("a", "b")
	tree.Attach("b", "c")

	for device, want := range map[string]int{
		"root": 0, "a": 1, "b": 2, "c": 3, "unknown": 0,
	} {
		if got := tree.Depth(device); got != want {
			t.Errorf("Depth(%s) = %d, want %d", device, got, want)
		}
	}
}

func TestTreeWalkOrder(t *testing.T) {
	tree := NewTree("root")
	tree.Attach("root", "a")
	tree.Attach("root", "b")
	tree.Attach("a", "a1")
	tree.Attach("a", "a2")

	var order []string
	var depths []int
	tree.Walk("root", func(n *Node, depth int) {
		order = append(order, n.ID)
		depths = append(depths, depth)
	})

	want := []string{"root", "a", "a1", "a2", "b"}
	wantDepths := []int{0, 1, 2, 2, 1}
	if len(order) != len(want) {
		t.Fatalf("walk visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
		if depths[i] != wantDepths[i] {
			t.Errorf("depth of %s = %d, want %d", order[i], depths[i], wantDepths[i])
		}
	}
}

func TestTreeWalkSubtree(t *testing.T) {
	tree := NewTree("root")
	tree.Attach("root", "a")
	tree.Attach("a", "a1")
	tree.Attach("root", "b")

	var order []string
	tree.Walk("a", func(n *Node, depth int) {
		order = append(order, n.ID)
		if n.ID == "a" && depth != 0 {
			t.Errorf("subtree origin depth = %d, want 0", depth)
		}
	})
	if len(order) != 2 || order[0] != "a" || order[1] != "a1" {
		t.Errorf("subtree walk = %v, want [a a1]", order)
	}
}

func TestTreeWalkUnknown(t *testing.T) {
	tree := NewTree("root")
	called := false
	tree.Walk("ghost", func(*Node, int) { called = true })
	if called {
		t.Error("walking an unknown device should visit nothing")
	}
}
