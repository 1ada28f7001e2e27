package feature

import "fmt"

/*
Feature represents a categorical property of an example that can be observed.

Its Name method returns the key under which examples hold the feature value.

Its Valid method takes a value token and returns whether the feature accepts
it, along with an error describing the reason when it does not.
*/
type Feature interface {
	Name() string
	Valid(string) (bool, error)
}

/*
DiscreteFeature represents a property that can only take a value among a
finite set. A DiscreteFeature without available values accepts any token,
which is what loaders use when no metadata is provided.
*/
type DiscreteFeature struct {
	name            string
	availableValues []string
	undefinedValue  string
}

/*
NewDiscreteFeature takes a name string and a slice of available value strings
and returns a discrete feature with the given name and available values.
The "?" token is always accepted as an undefined value.
*/
func NewDiscreteFeature(name string, availableValues []string) *DiscreteFeature {
	return &DiscreteFeature{name, availableValues, "?"}
}

/*
Name returns a string with the name of the feature
*/
func (df *DiscreteFeature) Name() string {
	return df.name
}

/*
Valid receives a value token and returns a boolean and an error. When the
value is the undefined token, the feature has no declared values or the value
is included in the available values of the feature, the method returns true
and nil. Otherwise it returns false and an error describing the reason.
*/
func (df *DiscreteFeature) Valid(value string) (bool, error) {
	if value == df.undefinedValue || len(df.availableValues) == 0 {
		return true, nil
	}
	for _, av := range df.availableValues {
		if av == value {
			return true, nil
		}
	}
	return false, fmt.Errorf("discrete feature %s got unknown value %s", df.Name(), value)
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (df *DiscreteFeature) AvailableValues() []string {
	return df.availableValues
}

func (df *DiscreteFeature) String() string {
	return df.name
}

// Names returns the names of the given features in order.
func Names(features []Feature) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name()
	}
	return names
}
