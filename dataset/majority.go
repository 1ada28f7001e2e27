package dataset

// ValueCount holds the number of occurrences of a value.
type ValueCount struct {
	Value string
	Count int
}

// CountValues counts the occurrences of every value, returning them in the
// order each value is first encountered.
func CountValues(values []string) []ValueCount {
	index := make(map[string]int)
	var result []ValueCount
	for _, v := range values {
		i, ok := index[v]
		if !ok {
			i = len(result)
			index[v] = i
			result = append(result, ValueCount{Value: v})
		}
		result[i].Count++
	}
	return result
}

// ClassCounts counts the classes of the given examples in the order they
// are first encountered.
func ClassCounts(examples []Example) []ValueCount {
	return CountValues(Labels(examples))
}

/*
MajorityValue returns the most frequent of the given values. Ties go to the
value encountered first. The boolean is false when values is empty.
*/
func MajorityValue(values []string) (string, bool) {
	var best ValueCount
	for _, vc := range CountValues(values) {
		if vc.Count > best.Count {
			best = vc
		}
	}
	return best.Value, best.Count > 0
}

/*
MajorityClass returns the most frequent class among the given examples, with
ties going to the class encountered first. The boolean is false when there
are no examples.
*/
func MajorityClass(examples []Example) (string, bool) {
	return MajorityValue(Labels(examples))
}
