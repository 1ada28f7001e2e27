package forest

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/tree"
)

// separable returns n examples whose class only depends on attribute a.
func separable(t *testing.T, n int) *dataset.Dataset {
	t.Helper()
	examples := make([]dataset.Example, n)
	for i := range examples {
		e := dataset.Example{
			"a": fmt.Sprintf("a%d", i%2),
			"b": fmt.Sprintf("b%d", i%3),
			"c": fmt.Sprintf("c%d", (i/3)%2),
			"d": fmt.Sprintf("d%d", i%5),
		}
		if i%2 == 0 {
			e[dataset.Class] = "yes"
		} else {
			e[dataset.Class] = "no"
		}
		examples[i] = e
	}
	d, err := dataset.New(dataset.SchemaFromNames("a", "b", "c", "d"), examples)
	require.NoError(t, err)
	return d
}

func TestBalance(t *testing.T) {
	examples := []dataset.Example{
		{"a": "1", dataset.Class: "yes"},
		{"a": "2", dataset.Class: "yes"},
		{"a": "3", dataset.Class: "no"},
		{"a": "4", dataset.Class: "yes"},
	}
	balanced := Balance(examples)
	require.Len(t, balanced, 6)
	assert.Equal(t, examples, balanced[:4])
	assert.Equal(t, dataset.Example{"a": "3", dataset.Class: "no"}, balanced[4])
	assert.Equal(t, dataset.Example{"a": "3", dataset.Class: "no"}, balanced[5])
	assert.Equal(t, []dataset.ValueCount{{Value: "yes", Count: 3}, {Value: "no", Count: 3}}, dataset.ClassCounts(balanced))
	assert.Len(t, examples, 4)
}

func TestBalance_Cycles(t *testing.T) {
	examples := []dataset.Example{
		{"a": "1", dataset.Class: "no"},
		{"a": "2", dataset.Class: "no"},
		{"a": "3", dataset.Class: "yes"},
		{"a": "4", dataset.Class: "yes"},
		{"a": "5", dataset.Class: "yes"},
		{"a": "6", dataset.Class: "yes"},
		{"a": "7", dataset.Class: "yes"},
		{"a": "8", dataset.Class: "maybe"},
	}
	balanced := Balance(examples)
	assert.Equal(t, []dataset.ValueCount{{Value: "no", Count: 5}, {Value: "yes", Count: 5}, {Value: "maybe", Count: 5}}, dataset.ClassCounts(balanced))
	assert.Equal(t, []string{"1", "2", "1"}, []string{balanced[8]["a"], balanced[9]["a"], balanced[10]["a"]})
}

func TestBootstrap(t *testing.T) {
	d := separable(t, 10)
	sample := Bootstrap(d.Examples, rand.New(rand.NewSource(1)))
	require.Len(t, sample, 10)
	for _, e := range sample {
		assert.Contains(t, d.Examples, e)
	}
	assert.Equal(t, sample, Bootstrap(d.Examples, rand.New(rand.NewSource(1))))
}

func TestSelectFeatures(t *testing.T) {
	schema := dataset.SchemaFromNames("a", "b", "c", "d")
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		selected := SelectFeatures(schema, 2, r)
		require.Len(t, selected, 2)
		assert.Less(t, indexOf(schema.Names(), selected[0]), indexOf(schema.Names(), selected[1]))
	}
	assert.Equal(t, schema.Names(), SelectFeatures(schema, 0, r))
	assert.Equal(t, schema.Names(), SelectFeatures(schema, 4, r))
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func TestForest_Predict(t *testing.T) {
	yes := &Member{Tree: tree.NewLeaf("yes")}
	no := &Member{Tree: tree.NewLeaf("no")}
	unknown := &Member{Tree: tree.NewInternal("a", &tree.Branch{Value: "x", Node: tree.NewInternal("b", &tree.Branch{Value: "1", Node: tree.NewLeaf("no")})})}

	tests := []struct {
		name     string
		members  []*Member
		expected string
		wantErr  error
	}{
		{name: "majority", members: []*Member{no, yes, yes}, expected: "yes"},
		{name: "tie goes to first vote", members: []*Member{no, yes}, expected: "no"},
		{name: "failed votes are ignored when outvoted", members: []*Member{unknown, yes, yes}, expected: "yes"},
		{name: "failed votes win", members: []*Member{unknown, unknown, yes}, wantErr: tree.ErrCannotPredictFromSample},
		{name: "no trees", wantErr: tree.ErrCannotPredictFromSample},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Forest{Members: tt.members}
			p, err := f.Predict(dataset.Example{"a": "y"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestGrower_Grow(t *testing.T) {
	d := separable(t, 60)
	g := &Grower{NumTrees: 7, Workers: 3}
	f, err := g.Grow(context.Background(), d, nil, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	require.Len(t, f.Members, 7)
	for _, m := range f.Members {
		assert.Equal(t, d.Schema.Names(), m.Features)
		assert.Equal(t, "a", m.Tree.Attribute)
	}
	assert.Equal(t, 1.0, f.Accuracy(d.Examples))
}

func TestGrower_GrowIsDeterministic(t *testing.T) {
	d := separable(t, 40)
	var forests []*Forest
	for _, workers := range []int{1, 4, 0} {
		g := &Grower{NumTrees: 9, MaxFeatures: 2, MaxDepth: 3, Workers: workers}
		f, err := g.Grow(context.Background(), d, nil, rand.New(rand.NewSource(5)))
		require.NoError(t, err)
		assert.Equal(t, 3, f.MaxDepth)
		forests = append(forests, f)
	}
	assert.Equal(t, forests[0], forests[1])
	assert.Equal(t, forests[0], forests[2])
}

func TestGrower_PruneOnValidation(t *testing.T) {
	d := separable(t, 20)
	validation := d.WithExamples([]dataset.Example{
		{"a": "a0", "b": "b0", "c": "c0", "d": "d0", dataset.Class: "no"},
		{"a": "a1", "b": "b1", "c": "c1", "d": "d1", dataset.Class: "no"},
	})
	g := &Grower{NumTrees: 3, PruneOn: PruneOnValidation}
	f, err := g.Grow(context.Background(), d, validation, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	for _, m := range f.Members {
		assert.Equal(t, tree.NewLeaf("no"), m.Tree)
	}
}

func TestGrower_Errors(t *testing.T) {
	d := separable(t, 10)
	tests := []struct {
		name       string
		g          *Grower
		training   *dataset.Dataset
		validation *dataset.Dataset
	}{
		{name: "no trees", g: &Grower{}, training: d},
		{name: "too many features", g: &Grower{NumTrees: 1, MaxFeatures: 5}, training: d},
		{name: "no validation set", g: &Grower{NumTrees: 1, PruneOn: PruneOnValidation}, training: d},
		{name: "empty training set", g: &Grower{NumTrees: 1}, training: d.WithExamples(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.g.Grow(context.Background(), tt.training, tt.validation, rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, dataset.ErrInvalidInput)
		})
	}
}

func TestGrower_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &Grower{NumTrees: 4}
	_, err := g.Grow(ctx, separable(t, 10), nil, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParsePruneSource(t *testing.T) {
	ps, err := ParsePruneSource("validation")
	require.NoError(t, err)
	assert.Equal(t, PruneOnValidation, ps)
	assert.Equal(t, "validation", ps.String())

	ps, err = ParsePruneSource("")
	require.NoError(t, err)
	assert.Equal(t, PruneOnSample, ps)

	_, err = ParsePruneSource("test")
	assert.ErrorIs(t, err, dataset.ErrInvalidInput)
}

func TestTrainForest(t *testing.T) {
	d := separable(t, 80)
	accuracy, f, err := TrainForest(context.Background(), d, 5, 0, 0, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Len(t, f.Members, 5)
	assert.Equal(t, 1.0, accuracy)
}

func TestTrainForest_Deterministic(t *testing.T) {
	d := separable(t, 80)
	a1, f1, err := TrainForest(context.Background(), d, 6, 2, 0, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	a2, f2, err := TrainForest(context.Background(), d, 6, 2, 0, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, f1, f2)
}

func TestTrainForest_InvalidDataset(t *testing.T) {
	_, _, err := TrainForest(context.Background(), &dataset.Dataset{}, 5, 0, 0, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, dataset.ErrInvalidInput)
}
