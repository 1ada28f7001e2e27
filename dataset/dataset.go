package dataset

import (
	"fmt"

	"github.com/viggieG/ID3-Random-Forest/feature"
)

/*
Schema is the ordered list of attributes shared by all the examples of a
dataset, excluding the Class. Its order is the one used to iterate over
attributes whenever the result depends on it.
*/
type Schema struct {
	Attributes []feature.Feature
}

/*
Dataset represents a collection of examples that share a schema.
*/
type Dataset struct {
	Schema   Schema
	Examples []Example
}

// NewSchema returns a schema with the given attributes in order.
func NewSchema(attributes ...feature.Feature) Schema {
	return Schema{Attributes: attributes}
}

// SchemaFromNames returns a schema of open discrete features with the
// given names.
func SchemaFromNames(names ...string) Schema {
	attributes := make([]feature.Feature, len(names))
	for i, n := range names {
		attributes[i] = feature.NewDiscreteFeature(n, nil)
	}
	return Schema{attributes}
}

// Names returns the attribute names of the schema in order.
func (s Schema) Names() []string {
	return feature.Names(s.Attributes)
}

// Lookup returns the attribute with the given name.
func (s Schema) Lookup(name string) (feature.Feature, bool) {
	for _, f := range s.Attributes {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Select returns a schema with the attributes of s whose name is in the
// given slice, keeping the order of s.
func (s Schema) Select(names []string) Schema {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var attributes []feature.Feature
	for _, f := range s.Attributes {
		if wanted[f.Name()] {
			attributes = append(attributes, f)
		}
	}
	return Schema{attributes}
}

// Without returns a schema with all attributes of s but the one with the
// given name.
func (s Schema) Without(name string) Schema {
	attributes := make([]feature.Feature, 0, len(s.Attributes))
	for _, f := range s.Attributes {
		if f.Name() != name {
			attributes = append(attributes, f)
		}
	}
	return Schema{attributes}
}

/*
New takes a schema and a slice of examples and returns a dataset built with
them, or an error if the examples do not conform to the schema (see Validate).
*/
func New(schema Schema, examples []Example) (*Dataset, error) {
	d := &Dataset{schema, examples}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

/*
Validate checks the dataset can be learnt from. It returns an error wrapping:
  - ErrInvalidInput if the dataset has no examples, the schema repeats or
    includes the Class, an example has no class or a value is rejected by its
    attribute
  - ErrInconsistentSchema if an example does not have exactly the schema
    attributes and the Class as keys
*/
func (d *Dataset) Validate() error {
	if len(d.Examples) == 0 {
		if len(d.Schema.Attributes) == 0 {
			return fmt.Errorf("%w: dataset has no attributes and no examples", ErrInvalidInput)
		}
		return fmt.Errorf("%w: dataset has no examples", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(d.Schema.Attributes))
	for _, f := range d.Schema.Attributes {
		if f.Name() == Class {
			return fmt.Errorf("%w: %s cannot be an attribute", ErrInvalidInput, Class)
		}
		if seen[f.Name()] {
			return fmt.Errorf("%w: attribute %s declared twice", ErrInvalidInput, f.Name())
		}
		seen[f.Name()] = true
	}
	for i, e := range d.Examples {
		if len(e) != len(d.Schema.Attributes)+1 {
			return fmt.Errorf("%w: example %d has %d keys, expected %d", ErrInconsistentSchema, i, len(e), len(d.Schema.Attributes)+1)
		}
		if _, ok := e[Class]; !ok {
			return fmt.Errorf("%w: example %d has no %s key", ErrInconsistentSchema, i, Class)
		}
		if _, ok := e.Label(); !ok {
			return fmt.Errorf("%w: example %d has no class", ErrInvalidInput, i)
		}
		for _, f := range d.Schema.Attributes {
			v, ok := e[f.Name()]
			if !ok {
				return fmt.Errorf("%w: example %d has no value for attribute %s", ErrInconsistentSchema, i, f.Name())
			}
			if ok, err := f.Valid(v); !ok {
				return fmt.Errorf("%w: example %d: %v", ErrInvalidInput, i, err)
			}
		}
	}
	return nil
}

// Count returns the number of examples in the dataset.
func (d *Dataset) Count() int {
	return len(d.Examples)
}

// WithExamples returns a dataset with the schema of d and the given
// examples. The result is not validated.
func (d *Dataset) WithExamples(examples []Example) *Dataset {
	return &Dataset{d.Schema, examples}
}

// SubsetWith returns the examples of d that satisfy the given criterion.
func (d *Dataset) SubsetWith(c feature.Criterion) []Example {
	return SubsetWith(d.Examples, c)
}

// Project returns a dataset restricted to the named attributes and the Class.
func (d *Dataset) Project(names []string) *Dataset {
	schema := d.Schema.Select(names)
	return &Dataset{schema, Project(d.Examples, schema.Names())}
}

// SubsetWith returns the examples satisfying the given criterion, keeping
// their order.
func SubsetWith(examples []Example, c feature.Criterion) []Example {
	var result []Example
	for _, e := range examples {
		if c.SatisfiedBy(e) {
			result = append(result, e)
		}
	}
	return result
}
