package dataset

import (
	"fmt"
	"math"
)

/*
Entropy returns the entropy in bits of the classes of the given examples: a
measure of the disinformation we have on the classes of examples that belong
to it. It returns an error wrapping ErrInvalidInput for an empty slice.
*/
func Entropy(examples []Example) (float64, error) {
	if len(examples) == 0 {
		return 0, fmt.Errorf("%w: entropy of an empty set of examples", ErrInvalidInput)
	}
	var result float64
	n := float64(len(examples))
	for _, vc := range ClassCounts(examples) {
		p := float64(vc.Count) / n
		result -= p * math.Log2(p)
	}
	return result, nil
}

/*
InformationGain takes a slice of examples, an attribute name and the entropy
of the examples and returns the reduction of entropy obtained by partitioning
the examples by their value for the attribute.

Examples missing a value for the attribute are left out of the partition.
When there are any, every bucket is extended with all of them and the
entropy of each extended bucket, weighted by the missing ratio and by the
extended bucket ratio, is added to the weighted entropy of the partition. The
missing examples are thus counted once per bucket; the result can be negative.

An error wrapping ErrInvalidInput is returned for an empty slice. When every
value is missing the gain is 0 and the error wraps ErrDegenerateSplit.
*/
func InformationGain(examples []Example, attribute string, datasetEntropy float64) (float64, error) {
	if len(examples) == 0 {
		return 0, fmt.Errorf("%w: information gain of %s over an empty set of examples", ErrInvalidInput, attribute)
	}
	values, buckets, missing := Partition(examples, attribute)
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: every value of %s is missing", ErrDegenerateSplit, attribute)
	}
	total := float64(len(examples))
	var weightedEntropy float64
	for _, v := range values {
		bucket := buckets[v]
		h, err := Entropy(bucket)
		if err != nil {
			return 0, err
		}
		weightedEntropy += float64(len(bucket)) / total * h
	}
	if len(missing) > 0 {
		missingWeight := float64(len(missing)) / total
		for _, v := range values {
			extended := make([]Example, 0, len(buckets[v])+len(missing))
			extended = append(extended, buckets[v]...)
			extended = append(extended, missing...)
			h, err := Entropy(extended)
			if err != nil {
				return 0, err
			}
			weightedEntropy += missingWeight * float64(len(extended)) / total * h
		}
	}
	return datasetEntropy - weightedEntropy, nil
}

/*
Partition groups the examples by their value for the given attribute. It
returns the distinct non-missing values in the order they are first
encountered, the examples for each of them and the examples missing a value.
*/
func Partition(examples []Example, attribute string) ([]string, map[string][]Example, []Example) {
	var values []string
	var missing []Example
	buckets := make(map[string][]Example)
	for _, e := range examples {
		v := e[attribute]
		if v == Missing {
			missing = append(missing, e)
			continue
		}
		if _, ok := buckets[v]; !ok {
			values = append(values, v)
		}
		buckets[v] = append(buckets[v], e)
	}
	return values, buckets, missing
}
