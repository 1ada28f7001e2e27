package json

import (
	"encoding/json"
	"fmt"

	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/tree"
)

/*
NodeEncodeDecoder is an interface for objects
that allow encoding trees into slices of
bytes and decoding them back to trees.
*/
type NodeEncodeDecoder interface {

	// Encode receives the root of a tree
	// and returns a slice of bytes with the tree
	// encoded or an error if the encoding could not
	// be performed for some reason.
	Encode(*tree.Node) ([]byte, error)

	// Decode receives a slice of bytes
	// and returns the root of the tree decoded from the
	// slice of bytes or an error if the decoding
	// could not be performed for some reason.
	Decode([]byte) (*tree.Node, error)
}

type nodeEncodeDecoder struct{}

/*
NewNodeEncodeDecoder returns a NodeEncodeDecoder that encodes trees
as nested JSON objects. A leaf is encoded as {"label": <class>} and an
internal node as {"attribute": <name>, "branches": [{"value": <value>,
"node": <subtree>}, ...]}.
*/
func NewNodeEncodeDecoder() NodeEncodeDecoder {
	return nodeEncodeDecoder{}
}

func (nodeEncodeDecoder) Encode(n *tree.Node) ([]byte, error) {
	if err := ValidateNode(n); err != nil {
		return nil, fmt.Errorf("encoding node: %w", err)
	}
	return json.Marshal(n)
}

func (nodeEncodeDecoder) Decode(data []byte) (*tree.Node, error) {
	n := &tree.Node{}
	if err := json.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("decoding node: %w", err)
	}
	if err := ValidateNode(n); err != nil {
		return nil, fmt.Errorf("decoding node: %w", err)
	}
	return n, nil
}

/*
ValidateNode checks the tree rooted at n is well formed: every node is either
a leaf with a label or an internal node with an attribute and branches,
and no internal node has two branches for the same value or a branch for the
missing value. It returns an error wrapping dataset.ErrInvalidInput otherwise.
*/
func ValidateNode(n *tree.Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", dataset.ErrInvalidInput)
	}
	if n.IsLeaf() {
		if n.Attribute != "" {
			return fmt.Errorf("%w: node on %s has no branches", dataset.ErrInvalidInput, n.Attribute)
		}
		if n.Label == "" {
			return fmt.Errorf("%w: leaf without label", dataset.ErrInvalidInput)
		}
		return nil
	}
	if n.Attribute == "" {
		return fmt.Errorf("%w: internal node without attribute", dataset.ErrInvalidInput)
	}
	if n.Label != "" {
		return fmt.Errorf("%w: internal node on %s has label %s", dataset.ErrInvalidInput, n.Attribute, n.Label)
	}
	seen := make(map[string]bool, len(n.Branches))
	for _, b := range n.Branches {
		if b == nil {
			return fmt.Errorf("%w: nil branch under %s", dataset.ErrInvalidInput, n.Attribute)
		}
		if b.Value == dataset.Missing {
			return fmt.Errorf("%w: branch for missing value under %s", dataset.ErrInvalidInput, n.Attribute)
		}
		if seen[b.Value] {
			return fmt.Errorf("%w: %s has two branches for %s", dataset.ErrInvalidInput, n.Attribute, b.Value)
		}
		seen[b.Value] = true
		if err := ValidateNode(b.Node); err != nil {
			return err
		}
	}
	return nil
}
