package dataset

import (
	"fmt"
	"strings"

	"github.com/viggieG/ID3-Random-Forest/feature"
)

/*
SchemaFromColumns takes the column names of a tabular source, the name of the
column holding the class (Class if empty) and optionally declared features,
and returns the schema for the rest of the columns in order.

Without declared features every column gets an open discrete feature.
Otherwise every column but the class must be declared. An error wrapping
ErrInvalidInput is returned if there is no class column.
*/
func SchemaFromColumns(columns []string, classColumn string, declared []feature.Feature) (Schema, error) {
	if classColumn == "" {
		classColumn = Class
	}
	byName := make(map[string]feature.Feature, len(declared))
	for _, f := range declared {
		byName[f.Name()] = f
	}
	var found bool
	var attributes []feature.Feature
	for _, name := range columns {
		if name == classColumn {
			found = true
			continue
		}
		if len(declared) == 0 {
			attributes = append(attributes, feature.NewDiscreteFeature(name, nil))
			continue
		}
		f, ok := byName[name]
		if !ok {
			return Schema{}, fmt.Errorf("reference to unknown feature %s", name)
		}
		attributes = append(attributes, f)
	}
	if !found {
		return Schema{}, fmt.Errorf("%w: no %s column", ErrInvalidInput, classColumn)
	}
	return NewSchema(attributes...), nil
}

/*
ExampleFromRow takes column names, the values of a row for them and the name
of the class column (Class if empty) and returns the example for the row.
Values are trimmed, and empty values as well as columns the row has no value
for are taken as Missing.
*/
func ExampleFromRow(columns, row []string, classColumn string) Example {
	if classColumn == "" {
		classColumn = Class
	}
	e := make(Example, len(columns))
	for i, name := range columns {
		v := Missing
		if i < len(row) {
			v = strings.TrimSpace(row[i])
		}
		if v == "" {
			v = Missing
		}
		if name == classColumn {
			name = Class
		}
		e[name] = v
	}
	return e
}
