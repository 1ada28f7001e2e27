package forest

import (
	"math/rand"
	"sort"

	"github.com/viggieG/ID3-Random-Forest/dataset"
)

/*
Balance takes a slice of examples and returns a new slice with the examples
followed by copies of the examples of every minority class, taken in order
and cycling over them, until each class is as frequent as the most frequent
one. The given slice is not modified.
*/
func Balance(examples []dataset.Example) []dataset.Example {
	counts := dataset.ClassCounts(examples)
	var max int
	for _, vc := range counts {
		if vc.Count > max {
			max = vc.Count
		}
	}
	byClass := make(map[string][]dataset.Example, len(counts))
	for _, e := range examples {
		byClass[e[dataset.Class]] = append(byClass[e[dataset.Class]], e)
	}
	result := append([]dataset.Example(nil), examples...)
	for _, vc := range counts {
		class := byClass[vc.Value]
		for i := 0; i < max-vc.Count; i++ {
			result = append(result, class[i%len(class)].Clone())
		}
	}
	return result
}

/*
Bootstrap returns as many examples as given drawn from them with replacement
using r.
*/
func Bootstrap(examples []dataset.Example, r *rand.Rand) []dataset.Example {
	sample := make([]dataset.Example, len(examples))
	for i := range sample {
		sample[i] = examples[r.Intn(len(examples))]
	}
	return sample
}

/*
SelectFeatures returns the names of n attributes of the schema drawn with r
without replacement, in schema order. If n is not positive or is not lower
than the number of attributes, all of them are returned.
*/
func SelectFeatures(schema dataset.Schema, n int, r *rand.Rand) []string {
	names := schema.Names()
	if n <= 0 || n >= len(names) {
		return names
	}
	indexes := r.Perm(len(names))[:n]
	sort.Ints(indexes)
	selected := make([]string, n)
	for i, j := range indexes {
		selected[i] = names[j]
	}
	return selected
}
