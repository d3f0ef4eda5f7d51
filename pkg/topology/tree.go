package topology

// Node is one device within a constructed tree. Parent holds the ID of the
// claiming parent ("" for the root and for nodes not yet claimed); Children
// holds child IDs in attach order. Nodes reference each other by ID through
// the owning [Tree] arena, never by pointer, so a tree never forms reference
// cycles even though the underlying adjacency data does.
type Node struct {
	ID       string
	Parent   string
	Children []string
}

// Tree is an arena of nodes for a single construction run, keyed by device
// identifier. It replaces a process-wide node registry: each run owns its
// own Tree, so repeated or interleaved runs never share mutable state.
//
// Nodes are created lazily on first reference and never removed. A device
// referenced from several neighbor lists resolves to the same node, and its
// parent is whichever node claimed it first.
type Tree struct {
	root  string
	nodes map[string]*Node
}

// NewTree creates a tree containing only the root node.
func NewTree(root string) *Tree {
	t := &Tree{root: root, nodes: make(map[string]*Node)}
	t.ensure(root)
	return t
}

// Root returns the root device identifier.
func (t *Tree) Root() string { return t.root }

// Node returns the node registered for device, or nil and false when the
// device was never referenced during construction.
func (t *Tree) Node(device string) (*Node, bool) {
	n, ok := t.nodes[device]
	return n, ok
}

// Len returns the number of registered nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// ensure returns the node for device, creating it on first reference.
func (t *Tree) ensure(device string) *Node {
	if n, ok := t.nodes[device]; ok {
		return n
	}
	n := &Node{ID: device}
	t.nodes[device] = n
	return n
}

// Attach links child under parent and reports whether the claim succeeded.
// Both nodes are created on demand. The attach is a no-op (claimed=false)
// when:
//
//   - child is parent's own parent (never re-parent an ancestor)
//   - child is the root or already claimed by another node
//     (first claim wins; a node is never detached or re-attached)
//   - child and parent are the same device (self-adjacency in bad data)
//
// On success the child's parent and the parent's child list are updated
// together, so every node has at most one parent at all times.
func (t *Tree) Attach(parent, child string) (*Node, bool) {
	p := t.ensure(parent)
	c := t.ensure(child)

	if parent == child || p.Parent == child {
		return c, false
	}
	if child == t.root || c.Parent != "" {
		return c, false
	}

	c.Parent = parent
	p.Children = append(p.Children, child)
	return c, true
}

// Depth returns the number of parent hops from device to the root: 0 for
// the root, incrementing by exactly one per hop. Unknown devices report 0.
func (t *Tree) Depth(device string) int {
	depth := 0
	n, ok := t.nodes[device]
	if !ok {
		return 0
	}
	for n.Parent != "" {
		depth++
		n = t.nodes[n.Parent]
	}
	return depth
}

// Walk visits the subtree rooted at from in depth-first pre-order: each node
// before its children, children in attach order. The visit depth is relative
// to from (0 for from itself). Walk does nothing when from is unknown.
//
// The traversal uses an explicit stack, so arbitrarily deep topologies do
// not consume call-stack frames.
func (t *Tree) Walk(from string, visit func(n *Node, depth int)) {
	start, ok := t.nodes[from]
	if !ok {
		return
	}

	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{start, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(f.node, f.depth)

		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{t.nodes[f.node.Children[i]], f.depth + 1})
		}
	}
}
