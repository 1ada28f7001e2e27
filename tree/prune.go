package tree

import (
	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/feature"
)

/*
Prune takes the root of a tree and a set of validation examples and returns
a pruned copy of the tree. The given tree is not modified.

Pruning goes bottom-up. Each branch of an internal node is pruned with the
validation examples holding the branch value, unless there are none. Then
the node is replaced by a leaf for the majority class of its validation
examples if that leaf is strictly more accurate on them than the (already
pruned) node. Ties keep the node, so a node without validation examples is
kept. The accuracy of the result on the validation examples is never lower
than the one of the given tree.
*/
func Prune(n *Node, validation []dataset.Example) *Node {
	if n.IsLeaf() {
		return NewLeaf(n.Label)
	}
	attribute := feature.NewDiscreteFeature(n.Attribute, nil)
	pruned := &Node{Attribute: n.Attribute, Branches: make([]*Branch, len(n.Branches))}
	for i, b := range n.Branches {
		subset := dataset.SubsetWith(validation, feature.NewDiscreteCriterion(attribute, b.Value))
		if len(subset) == 0 {
			pruned.Branches[i] = &Branch{b.Value, b.Node.Clone()}
			continue
		}
		pruned.Branches[i] = &Branch{b.Value, Prune(b.Node, subset)}
	}
	label, _ := dataset.MajorityClass(validation)
	collapsed := NewLeaf(label)
	if Accuracy(pruned, validation) >= Accuracy(collapsed, validation) {
		return pruned
	}
	return collapsed
}
