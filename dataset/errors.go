package dataset

// Error represents an error caused by examples that cannot be learnt from
// the way they were provided.
type Error string

const (
	// ErrInvalidInput is returned for empty datasets, datasets without
	// attributes and rows, unlabeled examples and values rejected by
	// their feature.
	ErrInvalidInput = Error("invalid input")
	// ErrInconsistentSchema is returned when examples of the same dataset
	// do not share the same attribute keys.
	ErrInconsistentSchema = Error("inconsistent schema")
	// ErrDegenerateSplit is returned along a zero information gain when an
	// attribute produces no buckets, that is, when all its values are missing.
	ErrDegenerateSplit = Error("degenerate split")
)

func (e Error) Error() string {
	return string(e)
}
