package json

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/forest"
	"github.com/viggieG/ID3-Random-Forest/tree"
)

func sampleTree() *tree.Node {
	return tree.NewInternal("chocolate",
		&tree.Branch{Value: "yes", Node: tree.NewLeaf("high")},
		&tree.Branch{Value: "no", Node: tree.NewInternal("fruity",
			&tree.Branch{Value: "yes", Node: tree.NewLeaf("high")},
			&tree.Branch{Value: "no", Node: tree.NewLeaf("low")},
		)},
	)
}

func TestWriteJSONTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONTree(sampleTree(), &buf))
	expected := `{"attribute":"chocolate","branches":[` +
		`{"value":"yes","node":{"label":"high"}},` +
		`{"value":"no","node":{"attribute":"fruity","branches":[` +
		`{"value":"yes","node":{"label":"high"}},` +
		`{"value":"no","node":{"label":"low"}}]}}]}`
	assert.JSONEq(t, expected, buf.String())

	n, err := ReadJSONTree(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleTree(), n)
}

func TestReadJSONTree_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"leaf without label", `{}`},
		{"internal without attribute", `{"branches":[{"value":"x","node":{"label":"a"}}]}`},
		{"attribute without branches", `{"attribute":"a"}`},
		{"label on internal node", `{"label":"a","attribute":"b","branches":[{"value":"x","node":{"label":"a"}}]}`},
		{"missing value branch", `{"attribute":"a","branches":[{"value":"?","node":{"label":"a"}}]}`},
		{"repeated value", `{"attribute":"a","branches":[{"value":"x","node":{"label":"a"}},{"value":"x","node":{"label":"b"}}]}`},
		{"branch without node", `{"attribute":"a","branches":[{"value":"x"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSONTree(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, dataset.ErrInvalidInput)
		})
	}

	_, err := ReadJSONTree(strings.NewReader(`{"attribute":`))
	assert.Error(t, err)
}

func TestForestRoundTrip(t *testing.T) {
	f := &forest.Forest{
		MaxDepth: 8,
		Members: []*forest.Member{
			{Tree: sampleTree(), Features: []string{"chocolate", "fruity"}},
			{Tree: tree.NewLeaf("low"), Features: []string{"caramel"}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteJSONForest(f, &buf))
	read, err := ReadJSONForest(&buf)
	require.NoError(t, err)
	assert.Equal(t, f, read)
}

func TestReadJSONForest_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no members", `{"members":[]}`},
		{"member without tree", `{"members":[{"features":["a"]}]}`},
		{"attribute outside features", `{"members":[{"features":["a"],"tree":{"attribute":"b","branches":[{"value":"x","node":{"label":"y"}}]}}]}`},
		{"malformed tree", `{"members":[{"features":["a"],"tree":{}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSONForest(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
