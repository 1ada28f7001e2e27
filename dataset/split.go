package dataset

import "math/rand"

// Shuffle returns a copy of the examples in an order drawn from r.
func Shuffle(examples []Example, r *rand.Rand) []Example {
	result := append([]Example(nil), examples...)
	r.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

/*
Split takes a slice of examples, a source of randomness and the fractions of
the examples that should go to every part but the last and returns
len(fractions)+1 parts. When r is not nil the examples are shuffled with it
first. The boundary of each part is the floor of the accumulated fraction
times the number of examples, and the last part takes the rest.

For instance Split(examples, r, 0.5, 0.25) returns training, validation and
test parts holding half, a quarter and a quarter of the examples.
*/
func Split(examples []Example, r *rand.Rand, fractions ...float64) [][]Example {
	if r != nil {
		examples = Shuffle(examples, r)
	}
	n := len(examples)
	parts := make([][]Example, 0, len(fractions)+1)
	var start int
	var accumulated float64
	for _, f := range fractions {
		accumulated += f
		end := int(accumulated * float64(n))
		if end > n {
			end = n
		}
		if end < start {
			end = start
		}
		parts = append(parts, examples[start:end])
		start = end
	}
	return append(parts, examples[start:])
}
