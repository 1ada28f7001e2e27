/*
Package forest grows random forests of ID3 decision trees and predicts by
majority vote of their trees.
*/
package forest

import (
	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/tree"
)

/*
Member is a tree of a forest together with the attributes it was grown on.
*/
type Member struct {
	Tree     *tree.Node `json:"tree"`
	Features []string   `json:"features"`
}

/*
Forest is an ordered collection of independently grown trees.
*/
type Forest struct {
	Members []*Member `json:"members"`
	// MaxDepth is the depth hint the forest was grown with. It is recorded
	// but not enforced.
	MaxDepth int `json:"maxDepth,omitempty"`
}

/*
Predict takes an example and returns the class most voted by the trees of the
forest, ties going to the class voted first. A tree that cannot predict the
example votes for no class; if no class wins, ErrCannotPredictFromSample is
returned.
*/
func (f *Forest) Predict(e dataset.Example) (string, error) {
	votes := make([]string, 0, len(f.Members))
	for _, m := range f.Members {
		p, err := tree.Predict(m.Tree, e)
		if err != nil {
			p = ""
		}
		votes = append(votes, p)
	}
	winner, ok := dataset.MajorityValue(votes)
	if !ok || winner == "" {
		return "", tree.ErrCannotPredictFromSample
	}
	return winner, nil
}

/*
Accuracy returns the fraction of the given examples whose class is the one
predicted by the forest, or 0 if there are no examples.
*/
func (f *Forest) Accuracy(examples []dataset.Example) float64 {
	if len(examples) == 0 {
		return 0
	}
	var correct int
	for _, e := range examples {
		p, err := f.Predict(e)
		if err == nil && p == e[dataset.Class] {
			correct++
		}
	}
	return float64(correct) / float64(len(examples))
}

// Size returns the total number of nodes of the trees in the forest.
func (f *Forest) Size() int {
	var size int
	for _, m := range f.Members {
		size += m.Tree.Size()
	}
	return size
}
