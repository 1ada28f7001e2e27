package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viggieG/ID3-Random-Forest/dataset"
)

func TestPredict(t *testing.T) {
	root := NewInternal("outlook",
		&Branch{"sunny", NewInternal("humidity",
			&Branch{"high", NewLeaf("no")},
			&Branch{"normal", NewLeaf("yes")},
		)},
		&Branch{"overcast", NewLeaf("yes")},
		&Branch{"rain", NewLeaf("no")},
		&Branch{"snow", NewLeaf("no")},
	)

	tests := []struct {
		name     string
		example  dataset.Example
		expected string
		wantErr  error
	}{
		{
			name:     "descends to leaf",
			example:  dataset.Example{"outlook": "sunny", "humidity": "normal"},
			expected: "yes",
		},
		{
			name:     "unseen value at root uses leaf children majority",
			example:  dataset.Example{"outlook": "fog", "humidity": "high"},
			expected: "no",
		},
		{
			name:     "missing value uses leaf children majority",
			example:  dataset.Example{"outlook": dataset.Missing},
			expected: "no",
		},
		{
			name:     "missing value deeper down",
			example:  dataset.Example{"outlook": "sunny", "humidity": dataset.Missing},
			expected: "no",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Predict(root, tt.example)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestPredict_FallbackTieGoesToFirstBranch(t *testing.T) {
	root := NewInternal("a",
		&Branch{"x", NewLeaf("yes")},
		&Branch{"y", NewLeaf("no")},
	)
	p, err := Predict(root, dataset.Example{"a": "z"})
	require.NoError(t, err)
	assert.Equal(t, "yes", p)
}

func TestPredict_FallbackSkipsInternalChildren(t *testing.T) {
	inner := NewInternal("b", &Branch{"1", NewLeaf("no")}, &Branch{"2", NewLeaf("no")})
	root := NewInternal("a",
		&Branch{"x", inner},
		&Branch{"y", inner.Clone()},
		&Branch{"z", NewLeaf("yes")},
	)
	p, err := Predict(root, dataset.Example{"a": "w"})
	require.NoError(t, err)
	assert.Equal(t, "yes", p)
}

func TestPredict_FallbackToExampleClass(t *testing.T) {
	root := NewInternal("a",
		&Branch{"x", NewInternal("b", &Branch{"1", NewLeaf("no")})},
	)
	p, err := Predict(root, dataset.Example{"a": "y", dataset.Class: "maybe"})
	require.NoError(t, err)
	assert.Equal(t, "maybe", p)

	_, err = Predict(root, dataset.Example{"a": "y"})
	assert.ErrorIs(t, err, ErrCannotPredictFromSample)

	_, err = Predict(root, dataset.Example{"a": "y", dataset.Class: dataset.Missing})
	assert.ErrorIs(t, err, ErrCannotPredictFromSample)
}

func TestAccuracy(t *testing.T) {
	root := NewInternal("a",
		&Branch{"x", NewLeaf("yes")},
		&Branch{"y", NewLeaf("no")},
	)
	examples := []dataset.Example{
		{"a": "x", dataset.Class: "yes"},
		{"a": "y", dataset.Class: "no"},
		{"a": "y", dataset.Class: "yes"},
		{"a": "x", dataset.Class: "no"},
	}
	assert.Equal(t, 0.5, Accuracy(root, examples))
	assert.Equal(t, 0.0, Accuracy(root, nil))
}
