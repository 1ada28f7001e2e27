package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/viggieG/ID3-Random-Forest/forest"
	"github.com/viggieG/ID3-Random-Forest/tree"
)

/*
WriteJSONTree takes the root of a tree and an io.Writer and serializes
the tree as JSON onto the io.Writer using the NodeEncodeDecoder returned
by NewNodeEncodeDecoder.
An error is returned if the tree is malformed or cannot be written
onto the io.Writer.
*/
func WriteJSONTree(n *tree.Node, w io.Writer) error {
	data, err := NewNodeEncodeDecoder().Encode(n)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

/*
ReadJSONTree takes an io.Reader and unmarshals its contents into a tree.
An error is returned if the JSON cannot be read from the io.Reader or
does not describe a well formed tree (see ValidateNode).
*/
func ReadJSONTree(r io.Reader) (*tree.Node, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return NewNodeEncodeDecoder().Decode(raw)
}

/*
ForestEncodeDecoder is an interface for objects
that allow encoding forests into slices of
bytes and decoding them back to forests.
*/
type ForestEncodeDecoder interface {
	Encode(*forest.Forest) ([]byte, error)
	Decode([]byte) (*forest.Forest, error)
}

type forestEncodeDecoder struct {
	NodeEncodeDecoder
}

type jsonForest struct {
	MaxDepth int           `json:"maxDepth,omitempty"`
	Members  []*jsonMember `json:"members"`
}

type jsonMember struct {
	Features []string         `json:"features"`
	Tree     *json.RawMessage `json:"tree"`
}

/*
NewForestEncodeDecoder returns a ForestEncodeDecoder that uses the
given NodeEncodeDecoder to encode/decode the trees of the forest.
A forest is serialized as a JSON object with the following fields:
* "maxDepth": the depth hint the forest was grown with, if any
* "members": an array of objects with the "features" each tree was grown
  on and the "tree" itself.
*/
func NewForestEncodeDecoder(ned NodeEncodeDecoder) ForestEncodeDecoder {
	return &forestEncodeDecoder{ned}
}

func (fed *forestEncodeDecoder) Encode(f *forest.Forest) ([]byte, error) {
	jf := &jsonForest{MaxDepth: f.MaxDepth, Members: make([]*jsonMember, len(f.Members))}
	for i, m := range f.Members {
		t, err := fed.NodeEncodeDecoder.Encode(m.Tree)
		if err != nil {
			return nil, fmt.Errorf("encoding tree %d: %w", i, err)
		}
		rt := json.RawMessage(t)
		jf.Members[i] = &jsonMember{Features: m.Features, Tree: &rt}
	}
	return json.Marshal(jf)
}

func (fed *forestEncodeDecoder) Decode(data []byte) (*forest.Forest, error) {
	jf := &jsonForest{}
	if err := json.Unmarshal(data, jf); err != nil {
		return nil, err
	}
	if len(jf.Members) == 0 {
		return nil, fmt.Errorf("decoding forest: no trees")
	}
	f := &forest.Forest{MaxDepth: jf.MaxDepth, Members: make([]*forest.Member, len(jf.Members))}
	for i, jm := range jf.Members {
		if jm == nil || jm.Tree == nil {
			return nil, fmt.Errorf("decoding tree %d: no tree", i)
		}
		n, err := fed.NodeEncodeDecoder.Decode(*jm.Tree)
		if err != nil {
			return nil, fmt.Errorf("decoding tree %d: %w", i, err)
		}
		if err := checkAttributes(n, jm.Features); err != nil {
			return nil, fmt.Errorf("decoding tree %d: %w", i, err)
		}
		f.Members[i] = &forest.Member{Tree: n, Features: jm.Features}
	}
	return f, nil
}

func checkAttributes(n *tree.Node, features []string) error {
	if n.IsLeaf() {
		return nil
	}
	var found bool
	for _, f := range features {
		if f == n.Attribute {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("attribute %s is not among the tree features %v", n.Attribute, features)
	}
	for _, b := range n.Branches {
		if err := checkAttributes(b.Node, features); err != nil {
			return err
		}
	}
	return nil
}

/*
WriteJSONForest takes a forest and an io.Writer and serializes the
forest as JSON onto the io.Writer (see NewForestEncodeDecoder).
*/
func WriteJSONForest(f *forest.Forest, w io.Writer) error {
	data, err := NewForestEncodeDecoder(NewNodeEncodeDecoder()).Encode(f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

/*
ReadJSONForest takes an io.Reader and unmarshals its contents into a forest.
An error is returned if the JSON cannot be read or does not describe a
forest of well formed trees.
*/
func ReadJSONForest(r io.Reader) (*forest.Forest, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return NewForestEncodeDecoder(NewNodeEncodeDecoder()).Decode(raw)
}
