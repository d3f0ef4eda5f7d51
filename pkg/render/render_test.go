package render

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nettopo/topograph/pkg/source"
	"github.com/nettopo/topograph/pkg/topology"
)

func exampleTree(t *testing.T) *topology.Tree {
	t.Helper()
	tree, err := topology.NewBuilder(source.Example()).Build(context.Background(), "sweden-pe1.example.com")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return tree
}

func TestText(t *testing.T) {
	tree := exampleTree(t)

	want := `sweden-pe1.example.com
   |--sweden-a1.example.com
      |--sweden-a3.example.com
         |--sweden-a7.example.com
      |--sweden-a5.example.com
   |--sweden-a2.example.com
      |--sweden-a6.example.com
   |--sweden-a4.example.com
   |--norway-pe1.example.com
   |--denmark-pe2.example.com
      |--denmark-a1.example.com
`
	if got := Text(tree, tree.Root()); got != want {
		t.Errorf("Text output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextSubtree(t *testing.T) {
	tree := exampleTree(t)

	// A subtree dump keeps absolute indentation.
	want := `sweden-a1.example.com
      |--sweden-a3.example.com
         |--sweden-a7.example.com
      |--sweden-a5.example.com
`
	if got := Text(tree, "sweden-a1.example.com"); got != want {
		t.Errorf("subtree output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextUnknownDevice(t *testing.T) {
	tree := exampleTree(t)
	if got := Text(tree, "ghost"); got != "" {
		t.Errorf("Text for unknown device = %q, want empty", got)
	}
}

func TestWriteText(t *testing.T) {
	tree := exampleTree(t)
	var b strings.Builder
	if err := WriteText(&b, tree, tree.Root()); err != nil {
		t.Fatalf("WriteText error: %v", err)
	}
	if b.String() != Text(tree, tree.Root()) {
		t.Error("WriteText output differs from Text")
	}
}

func TestFromTree(t *testing.T) {
	tree := exampleTree(t)
	root := FromTree(tree, tree.Root())
	if root == nil {
		t.Fatal("FromTree returned nil")
	}

	if root.Device != "sweden-pe1.example.com" || root.Depth != 0 || !root.Backbone {
		t.Errorf("root = %+v", root)
	}
	if len(root.Children) != 5 {
		t.Fatalf("root has %d children, want 5", len(root.Children))
	}
	if root.Children[0].Device != "sweden-a1.example.com" {
		t.Errorf("first child = %s", root.Children[0].Device)
	}
	if root.Children[0].Backbone {
		t.Error("sweden-a1 should not be marked backbone")
	}

	a3 := root.Children[0].Children[0]
	if a3.Device != "sweden-a3.example.com" || a3.Depth != 2 {
		t.Errorf("a3 = %+v", a3)
	}
}

func TestFromTreeSubtreeDepthAbsolute(t *testing.T) {
	tree := exampleTree(t)
	sub := FromTree(tree, "sweden-a1.example.com")
	if sub == nil {
		t.Fatal("FromTree returned nil")
	}
	if sub.Depth != 1 {
		t.Errorf("subtree origin depth = %d, want absolute depth 1", sub.Depth)
	}
}

func TestFromTreeUnknown(t *testing.T) {
	tree := exampleTree(t)
	if FromTree(tree, "ghost") != nil {
		t.Error("FromTree for unknown device should return nil")
	}
}

func TestWriteJSON(t *testing.T) {
	tree := exampleTree(t)
	var b strings.Builder
	if err := WriteJSON(&b, tree, tree.Root()); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	var decoded TreeNode
	if err := json.Unmarshal([]byte(b.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Device != "sweden-pe1.example.com" {
		t.Errorf("decoded root = %s", decoded.Device)
	}
}

func TestToDOT(t *testing.T) {
	tree := exampleTree(t)
	dot := ToDOT(tree, tree.Root())

	if !strings.HasPrefix(dot, "digraph topology {") {
		t.Error("DOT output should open a digraph")
	}
	for _, want := range []string{
		`"sweden-pe1.example.com" [style="rounded,filled", fillcolor=lightblue];`,
		`"sweden-a1.example.com";`,
		`"sweden-pe1.example.com" -> "sweden-a1.example.com";`,
		`"sweden-a1.example.com" -> "sweden-a3.example.com";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q", want)
		}
	}

	// One edge per non-root node.
	if got := strings.Count(dot, "->"); got != tree.Len()-1 {
		t.Errorf("DOT has %d edges, want %d", got, tree.Len()-1)
	}
}
