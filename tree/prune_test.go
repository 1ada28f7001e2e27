package tree

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viggieG/ID3-Random-Forest/dataset"
)

func TestPrune_CollapsesUnhelpfulSubtree(t *testing.T) {
	root := NewInternal("a",
		&Branch{"x", NewInternal("b",
			&Branch{"1", NewLeaf("yes")},
			&Branch{"2", NewLeaf("no")},
		)},
		&Branch{"y", NewLeaf("no")},
	)
	validation := []dataset.Example{
		{"a": "x", "b": "1", dataset.Class: "yes"},
		{"a": "x", "b": "2", dataset.Class: "yes"},
		{"a": "x", "b": "2", dataset.Class: "yes"},
		{"a": "y", "b": "1", dataset.Class: "no"},
	}
	pruned := Prune(root, validation)

	expected := NewInternal("a",
		&Branch{"x", NewLeaf("yes")},
		&Branch{"y", NewLeaf("no")},
	)
	assert.Equal(t, expected, pruned)
	assert.Equal(t, 1.0, Accuracy(pruned, validation))
	assert.Equal(t, 5, root.Size(), "the given tree is left untouched")
}

func TestPrune_CollapsesRoot(t *testing.T) {
	root := NewInternal("a",
		&Branch{"x", NewLeaf("yes")},
		&Branch{"y", NewLeaf("no")},
	)
	validation := []dataset.Example{
		{"a": "x", dataset.Class: "no"},
		{"a": "y", dataset.Class: "no"},
	}
	assert.Equal(t, NewLeaf("no"), Prune(root, validation))
}

func TestPrune_TiesKeepTree(t *testing.T) {
	root := NewInternal("a",
		&Branch{"x", NewLeaf("yes")},
		&Branch{"y", NewLeaf("no")},
	)
	validation := []dataset.Example{
		{"a": "x", dataset.Class: "yes"},
		{"a": "y", dataset.Class: "yes"},
		{"a": "y", dataset.Class: "no"},
	}
	assert.Equal(t, root, Prune(root, validation))
}

func TestPrune_EmptyValidation(t *testing.T) {
	root := NewInternal("a",
		&Branch{"x", NewLeaf("yes")},
		&Branch{"y", NewLeaf("no")},
	)
	pruned := Prune(root, nil)
	assert.Equal(t, root, pruned)
	assert.NotSame(t, root, pruned)
}

func TestPrune_NeverDecreasesAccuracy(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	values := []string{"p", "q", "r"}
	classes := []string{"yes", "no"}
	random := func(n int) []dataset.Example {
		examples := make([]dataset.Example, n)
		for i := range examples {
			examples[i] = dataset.Example{
				"a":           values[r.Intn(len(values))],
				"b":           values[r.Intn(len(values))],
				"c":           values[r.Intn(len(values))],
				dataset.Class: classes[r.Intn(len(classes))],
			}
		}
		return examples
	}
	for i := 0; i < 20; i++ {
		d := mustDataset(t, []string{"a", "b", "c"}, random(40)...)
		n, err := (&Builder{MinimumGain: 0}).Build(context.Background(), d)
		require.NoError(t, err)

		validation := random(20)
		pruned := Prune(n, validation)
		assert.GreaterOrEqual(t, Accuracy(pruned, validation), Accuracy(n, validation))
		assert.LessOrEqual(t, pruned.Size(), n.Size())
	}
}
