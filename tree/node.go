package tree

import (
	"fmt"
	"strings"
)

/*
Node is a node of a decision tree. It is either a leaf, holding the label it
predicts, or an internal node, holding the attribute it asks about and a
branch for every value of the attribute seen when growing it.
*/
type Node struct {
	// The class predicted by a leaf.
	Label string `json:"label,omitempty"`
	// The attribute an internal node splits on.
	Attribute string `json:"attribute,omitempty"`
	// The subtrees of an internal node, in the order their values were
	// first seen. Empty for leaves.
	Branches []*Branch `json:"branches,omitempty"`
}

/*
Branch links an internal node with the subtree for one value of its attribute.
*/
type Branch struct {
	Value string `json:"value"`
	Node  *Node  `json:"node"`
}

// NewLeaf returns a leaf predicting the given label.
func NewLeaf(label string) *Node {
	return &Node{Label: label}
}

// NewInternal returns a node splitting on the given attribute with the
// given branches.
func NewInternal(attribute string, branches ...*Branch) *Node {
	return &Node{Attribute: attribute, Branches: branches}
}

// IsLeaf returns whether the node is a leaf.
func (n *Node) IsLeaf() bool {
	return len(n.Branches) == 0
}

// Child returns the subtree for the given value of the node attribute.
func (n *Node) Child(value string) (*Node, bool) {
	for _, b := range n.Branches {
		if b.Value == value {
			return b.Node, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	c := &Node{Label: n.Label, Attribute: n.Attribute}
	if len(n.Branches) > 0 {
		c.Branches = make([]*Branch, len(n.Branches))
		for i, b := range n.Branches {
			c.Branches[i] = &Branch{b.Value, b.Node.Clone()}
		}
	}
	return c
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	size := 1
	for _, b := range n.Branches {
		size += b.Node.Size()
	}
	return size
}

// Depth returns the number of edges on the longest path from n to a leaf.
func (n *Node) Depth() int {
	var depth int
	for _, b := range n.Branches {
		if d := b.Node.Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

func (n *Node) String() string {
	var result string
	if n.IsLeaf() {
		return fmt.Sprintf("{ %s }\n", n.Label)
	}
	result = fmt.Sprintf("[ %s ]\n|\n", n.Attribute)
	for i, b := range n.Branches {
		subtree := fmt.Sprintf("%s is %s\n%s", n.Attribute, b.Value, b.Node.String())
		for j, line := range strings.Split(subtree, "\n") {
			if len(line) == 0 {
				continue
			}
			switch {
			case j == 0:
				result = fmt.Sprintf("%s|__%s\n", result, line)
			case i == len(n.Branches)-1:
				result = fmt.Sprintf("%s   %s\n", result, line)
			default:
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}
