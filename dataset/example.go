package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viggieG/ID3-Random-Forest/feature"
)

const (
	// Class is the reserved key holding the label of an example.
	Class = "Class"
	// Missing is the token marking an unobserved attribute value.
	Missing = "?"
)

/*
Example represents a labeled item from which to learn, or an item to
classify. It maps attribute names to categorical value tokens, with the
label under the Class key.
*/
type Example map[string]string

/*
ValueFor returns the value of the example corresponding to the feature
passed as parameter. It returns an empty string if the example has no
value for it.
*/
func (e Example) ValueFor(f feature.Feature) string {
	return e[f.Name()]
}

// Label returns the class of the example and whether it has one.
func (e Example) Label() (string, bool) {
	l, ok := e[Class]
	if !ok || l == "" || l == Missing {
		return "", false
	}
	return l, true
}

// Clone returns a copy of the example that can be modified without
// affecting the original.
func (e Example) Clone() Example {
	c := make(Example, len(e))
	for k, v := range e {
		c[k] = v
	}
	return c
}

// Project returns a new example holding only the given attributes and
// the class of e.
func (e Example) Project(names []string) Example {
	p := make(Example, len(names)+1)
	for _, n := range names {
		if v, ok := e[n]; ok {
			p[n] = v
		}
	}
	if l, ok := e[Class]; ok {
		p[Class] = l
	}
	return p
}

func (e Example) String() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%s", k, e[k])
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

// Project returns the projection of every example onto the given attributes
// and the class.
func Project(examples []Example, names []string) []Example {
	result := make([]Example, len(examples))
	for i, e := range examples {
		result[i] = e.Project(names)
	}
	return result
}

// Labels returns the classes of the given examples in order.
func Labels(examples []Example) []string {
	labels := make([]string, len(examples))
	for i, e := range examples {
		labels[i] = e[Class]
	}
	return labels
}
