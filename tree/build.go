package tree

import (
	"context"
	"errors"

	"github.com/viggieG/ID3-Random-Forest/dataset"
)

// DefaultMinimumGain is the information gain below which a node is not
// split any further.
const DefaultMinimumGain = 0.01

/*
Builder grows decision trees with the ID3 algorithm.
*/
type Builder struct {
	// MinimumGain is the information gain the best attribute of a node must
	// reach for the node to be split. Nodes whose best attribute falls below
	// it become leaves predicting their majority class.
	MinimumGain float64
}

// NewBuilder returns a Builder with DefaultMinimumGain.
func NewBuilder() *Builder {
	return &Builder{MinimumGain: DefaultMinimumGain}
}

/*
Build takes a context and a dataset and grows a tree with a Builder using
DefaultMinimumGain.
*/
func Build(ctx context.Context, d *dataset.Dataset) (*Node, error) {
	return NewBuilder().Build(ctx, d)
}

/*
Build takes a context and a dataset, validates the dataset and returns the
tree grown from its examples. Errors from the validation are returned as they
are (see dataset.Dataset.Validate). If the context is cancelled while
growing, the context error is returned.

A node is developed as follows:
  - with no examples, it becomes a leaf for the majority class of its parent
  - with examples of a single class, it becomes a leaf for that class
  - with no attributes left, it becomes a leaf for its majority class
  - otherwise the attribute with the highest information gain is selected,
    ties going to the attribute that comes first in the schema. Below the
    builder MinimumGain the node becomes a leaf for its majority class;
    otherwise it gets a subtree for every non-missing value of the attribute,
    developed with the examples holding that value and without the attribute.

Attributes whose values are all missing count as having no gain.
*/
func (b *Builder) Build(ctx context.Context, d *dataset.Dataset) (*Node, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return b.develop(ctx, d.Examples, d.Schema.Names(), "")
}

func (b *Builder) develop(ctx context.Context, examples []dataset.Example, attributes []string, defaultLabel string) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(examples) == 0 {
		return NewLeaf(defaultLabel), nil
	}
	classes := dataset.ClassCounts(examples)
	if len(classes) == 1 {
		return NewLeaf(classes[0].Value), nil
	}
	majority, _ := dataset.MajorityClass(examples)
	if len(attributes) == 0 {
		return NewLeaf(majority), nil
	}
	entropy, err := dataset.Entropy(examples)
	if err != nil {
		return nil, err
	}
	selected := -1
	var selectedGain float64
	for i, a := range attributes {
		gain, err := dataset.InformationGain(examples, a, entropy)
		if err != nil && !errors.Is(err, dataset.ErrDegenerateSplit) {
			return nil, err
		}
		if selected < 0 || gain > selectedGain {
			selected = i
			selectedGain = gain
		}
	}
	if selectedGain < b.MinimumGain {
		return NewLeaf(majority), nil
	}
	attribute := attributes[selected]
	remaining := make([]string, 0, len(attributes)-1)
	remaining = append(remaining, attributes[:selected]...)
	remaining = append(remaining, attributes[selected+1:]...)
	values, buckets, _ := dataset.Partition(examples, attribute)
	if len(values) == 0 {
		return NewLeaf(majority), nil
	}
	n := &Node{Attribute: attribute, Branches: make([]*Branch, 0, len(values))}
	for _, v := range values {
		child, err := b.develop(ctx, buckets[v], remaining, majority)
		if err != nil {
			return nil, err
		}
		n.Branches = append(n.Branches, &Branch{v, child})
	}
	return n, nil
}
