package tree

import (
	"github.com/viggieG/ID3-Random-Forest/dataset"
)

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromSample is the error returned by Predict when the tree
has no answer for an example and the example carries no class to fall back to.
*/
const ErrCannotPredictFromSample = PredictionError("no prediction available for this kind of sample")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
Predict takes the root of a tree and an example and returns the class the
tree predicts for it.

The tree is descended following the branch for the example value of each
node attribute. When a node has no branch for that value (because it is
missing or was not seen while growing the tree), the prediction is the most
common label among the node's leaf children, ignoring internal children and
with ties going to the first branch. If no child is a leaf, the class of the
example itself is returned, and ErrCannotPredictFromSample if it has none.
*/
func Predict(n *Node, e dataset.Example) (string, error) {
	for !n.IsLeaf() {
		child, ok := n.Child(e[n.Attribute])
		if !ok {
			return fallback(n, e)
		}
		n = child
	}
	if n.Label == "" {
		return exampleLabel(e)
	}
	return n.Label, nil
}

func fallback(n *Node, e dataset.Example) (string, error) {
	var labels []string
	for _, b := range n.Branches {
		if b.Node.IsLeaf() {
			labels = append(labels, b.Node.Label)
		}
	}
	if label, ok := dataset.MajorityValue(labels); ok && label != "" {
		return label, nil
	}
	return exampleLabel(e)
}

func exampleLabel(e dataset.Example) (string, error) {
	if label, ok := e.Label(); ok {
		return label, nil
	}
	return "", ErrCannotPredictFromSample
}

/*
Accuracy returns the fraction of the given examples whose class is the one
predicted by the tree. Examples the tree cannot predict count as failures.
It returns 0 when there are no examples.
*/
func Accuracy(n *Node, examples []dataset.Example) float64 {
	if len(examples) == 0 {
		return 0
	}
	var correct int
	for _, e := range examples {
		p, err := Predict(n, e)
		if err == nil && p == e[dataset.Class] {
			correct++
		}
	}
	return float64(correct) / float64(len(examples))
}
