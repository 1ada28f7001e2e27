package tree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viggieG/ID3-Random-Forest/dataset"
)

func ex(class string, kv ...string) dataset.Example {
	e := dataset.Example{dataset.Class: class}
	for i := 0; i+1 < len(kv); i += 2 {
		e[kv[i]] = kv[i+1]
	}
	return e
}

func mustDataset(t *testing.T, names []string, examples ...dataset.Example) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New(dataset.SchemaFromNames(names...), examples)
	require.NoError(t, err)
	return d
}

func xor(t *testing.T) *dataset.Dataset {
	return mustDataset(t, []string{"a", "b"},
		ex("no", "a", "0", "b", "0"),
		ex("yes", "a", "0", "b", "1"),
		ex("yes", "a", "1", "b", "0"),
		ex("no", "a", "1", "b", "1"),
	)
}

func TestBuild_SingleClass(t *testing.T) {
	d := mustDataset(t, []string{"a", "b"},
		ex("yes", "a", "x", "b", "1"),
		ex("yes", "a", "y", "b", "2"),
		ex("yes", "a", "?", "b", "3"),
	)
	n, err := Build(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, NewLeaf("yes"), n)
}

func TestBuild_PureSplit(t *testing.T) {
	d := mustDataset(t, []string{"A"},
		ex("yes", "A", "x"),
		ex("yes", "A", "x"),
		ex("no", "A", "y"),
	)
	n, err := Build(context.Background(), d)
	require.NoError(t, err)
	expected := NewInternal("A",
		&Branch{"x", NewLeaf("yes")},
		&Branch{"y", NewLeaf("no")},
	)
	assert.Equal(t, expected, n)
}

func TestBuild_SelectsHighestGain(t *testing.T) {
	d := mustDataset(t, []string{"noise", "signal"},
		ex("yes", "noise", "p", "signal", "s"),
		ex("no", "noise", "p", "signal", "t"),
		ex("yes", "noise", "q", "signal", "s"),
		ex("no", "noise", "q", "signal", "t"),
	)
	n, err := Build(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "signal", n.Attribute)
	assert.Equal(t, 1, n.Depth())
}

func TestBuild_MinimumGain(t *testing.T) {
	n, err := Build(context.Background(), xor(t))
	require.NoError(t, err)
	assert.True(t, n.IsLeaf(), "xor has no gain at the root")
	assert.Equal(t, "no", n.Label)

	n, err = (&Builder{MinimumGain: 0}).Build(context.Background(), xor(t))
	require.NoError(t, err)
	assert.Equal(t, "a", n.Attribute, "ties go to the first attribute")
	assert.Equal(t, 2, n.Depth())
	assert.Equal(t, 7, n.Size())
}

func TestBuild_TrainingAccuracy(t *testing.T) {
	d := xor(t)
	n, err := (&Builder{MinimumGain: 0}).Build(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, 1.0, Accuracy(n, d.Examples))
}

func TestBuild_NoAttributesLeft(t *testing.T) {
	d := mustDataset(t, []string{"a"},
		ex("yes", "a", "x"),
		ex("no", "a", "x"),
		ex("no", "a", "x"),
		ex("yes", "a", "y"),
	)
	n, err := (&Builder{MinimumGain: 0}).Build(context.Background(), d)
	require.NoError(t, err)
	x, ok := n.Child("x")
	require.True(t, ok)
	assert.Equal(t, NewLeaf("no"), x)
}

func TestBuild_AllMissing(t *testing.T) {
	d := mustDataset(t, []string{"a"},
		ex("yes", "a", "?"),
		ex("no", "a", "?"),
		ex("yes", "a", "?"),
	)
	n, err := (&Builder{MinimumGain: 0}).Build(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, NewLeaf("yes"), n)
}

func TestBuild_MissingValuesNeverBranch(t *testing.T) {
	d := mustDataset(t, []string{"a"},
		ex("yes", "a", "x"),
		ex("yes", "a", "x"),
		ex("no", "a", "y"),
		ex("no", "a", "y"),
		ex("yes", "a", "?"),
	)
	n, err := (&Builder{MinimumGain: 0}).Build(context.Background(), d)
	require.NoError(t, err)
	require.False(t, n.IsLeaf())
	_, ok := n.Child(dataset.Missing)
	assert.False(t, ok)
	assert.Len(t, n.Branches, 2)
}

func TestBuild_InvalidDataset(t *testing.T) {
	tests := []struct {
		name    string
		d       *dataset.Dataset
		wantErr error
	}{
		{
			name:    "empty",
			d:       &dataset.Dataset{},
			wantErr: dataset.ErrInvalidInput,
		},
		{
			name: "inconsistent keys",
			d: &dataset.Dataset{
				Schema:   dataset.SchemaFromNames("a"),
				Examples: []dataset.Example{ex("yes", "a", "x"), ex("no", "b", "x")},
			},
			wantErr: dataset.ErrInconsistentSchema,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Build(context.Background(), tt.d)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, n)
		})
	}
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, xor(t))
	assert.ErrorIs(t, err, context.Canceled)
}
