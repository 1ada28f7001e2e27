package sqldataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/feature"
)

/*
Options tunes how a table is turned into a dataset.
*/
type Options struct {
	// ClassColumn is the name of the column holding the class of the
	// examples. It defaults to dataset.Class.
	ClassColumn string
	// Features optionally declares the attributes with their available
	// values. When given, every column but the class must be declared.
	Features []feature.Feature
}

/*
ReadDataset takes a context, an Adapter, a table name and some options and
returns the dataset stored in the table. NULL values are taken as missing.
*/
func ReadDataset(ctx context.Context, a Adapter, table string, opts Options) (*dataset.Dataset, error) {
	columns, err := a.ListColumns(ctx, table)
	if err != nil {
		return nil, err
	}
	schema, err := dataset.SchemaFromColumns(columns, opts.ClassColumn, opts.Features)
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", table, err)
	}
	rows, err := a.ListRows(ctx, table, columns)
	if err != nil {
		return nil, err
	}
	examples := make([]dataset.Example, len(rows))
	values := make([]string, len(columns))
	for i, row := range rows {
		for j, v := range row {
			values[j] = v.String
			if !v.Valid {
				values[j] = dataset.Missing
			}
		}
		examples[i] = dataset.ExampleFromRow(columns, values, opts.ClassColumn)
	}
	d, err := dataset.New(schema, examples)
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", table, err)
	}
	return d, nil
}

/*
WriteDataset takes a context, an Adapter, a table name and a dataset and
stores the examples of the dataset on the table, creating it if needed.
Missing values are stored as NULL.
*/
func WriteDataset(ctx context.Context, a Adapter, table string, d *dataset.Dataset) error {
	names := append(d.Schema.Names(), dataset.Class)
	columns := make([]string, len(names))
	for i, n := range names {
		c, err := a.ColumnName(n)
		if err != nil {
			return err
		}
		columns[i] = c
	}
	if err := a.CreateTable(ctx, table, columns); err != nil {
		return err
	}
	rows := make([][]sql.NullString, len(d.Examples))
	for i, e := range d.Examples {
		row := make([]sql.NullString, len(names))
		for j, n := range names {
			if v, ok := e[n]; ok && v != dataset.Missing && v != "" {
				row[j] = sql.NullString{String: v, Valid: true}
			}
		}
		rows[i] = row
	}
	n, err := a.AddRows(ctx, table, columns, rows)
	if err != nil {
		return fmt.Errorf("writing dataset to %s: %d examples written: %w", table, n, err)
	}
	return nil
}
