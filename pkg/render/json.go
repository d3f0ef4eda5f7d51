package render

import (
	"encoding/json"
	"io"

	"github.com/nettopo/topograph/pkg/topology"
)

// TreeNode is the JSON shape of one device in a rendered tree. Children
// appear in attach order; Backbone is derived from the device naming
// convention so consumers need not reimplement it.
type TreeNode struct {
	Device   string      `json:"device"`
	Depth    int         `json:"depth"`
	Backbone bool        `json:"backbone,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
}

// FromTree converts the subtree rooted at from into a nested [TreeNode]
// structure. Depth is absolute (parent hops from the tree root). Returns
// nil when from was never registered in the tree.
func FromTree(t *topology.Tree, from string) *TreeNode {
	nodes := make(map[string]*TreeNode)
	var root *TreeNode

	t.Walk(from, func(n *topology.Node, _ int) {
		tn := &TreeNode{
			Device:   n.ID,
			Depth:    t.Depth(n.ID),
			Backbone: topology.IsBackbone(n.ID),
		}
		nodes[n.ID] = tn
		if parent, ok := nodes[n.Parent]; ok {
			parent.Children = append(parent.Children, tn)
		} else {
			root = tn
		}
	})

	return root
}

// WriteJSON writes the subtree rooted at from to w as indented JSON.
func WriteJSON(w io.Writer, t *topology.Tree, from string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FromTree(t, from))
}
