/*
Package csv reads datasets from and writes them to CSV streams.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/feature"
)

/*
Options tunes how a CSV stream is turned into a dataset.
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
Writer is an interface for a stream to which examples
can be written to.
*/
type Writer interface {
	// Write will attempt to write the given examples
	// and will return the actually written number of
	// examples and an error (if not all examples
	// could be written)
	Write([]dataset.Example) (int, error)
	// Count returns the total number of examples written
	// to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count  int
	schema dataset.Schema
	w      *csv.Writer
}

/*
ReadDataset takes an io.Reader for a CSV stream and some options and returns
the dataset parsed from the reader or an error.

The header or first row of the CSV content is expected to consist of the names
of the attributes and the class column. The rest of the rows should consist of
values for all columns, where the '?' string or an empty cell indicate a missing
value. The schema of the dataset follows the order of the header.
*/
func ReadDataset(reader io.Reader, opts Options) (*dataset.Dataset, error) {
	var examples []dataset.Example
	schema, err := ReadBySample(reader, opts, func(_ int, e dataset.Example) (bool, error) {
		examples = append(examples, e)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(schema, examples)
}

/*
ReadBySample takes an io.Reader for a CSV stream, some options and a lambda
function on an integer and an example that returns a boolean value.
It parses the examples from the reader and for each it calls the lambda function
with the example and its index as parameters. If the lambda function returns true,
it will continue processing the next example, otherwise it will stop. It returns
the schema read from the header, and an error if something goes wrong when reading
the stream or parsing an example.
*/
func ReadBySample(reader io.Reader, opts Options, lambda func(int, dataset.Example) (bool, error)) (dataset.Schema, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return dataset.Schema{}, fmt.Errorf("reading header: %v", err)
	}
	schema, err := parseHeader(header, opts)
	if err != nil {
		return dataset.Schema{}, err
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return dataset.Schema{}, fmt.Errorf("reading body: %v", err)
		}
		e := dataset.ExampleFromRow(header, row, opts.ClassColumn)
		ok, err := lambda(l-2, e)
		if err != nil {
			return dataset.Schema{}, err
		}
		if !ok {
			break
		}
	}
	return schema, nil
}

/*
ReadDatasetFromFilePath takes a filepath string and some options, opens the
file to which the filepath points to and uses ReadDataset to return a dataset
or an error read from it. If the filepath is "" os.Stdin is read instead.
*/
func ReadDatasetFromFilePath(filepath string, opts Options) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	d, err := ReadDataset(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return d, nil
}

/*
NewWriter takes an io.Writer and a schema and returns a Writer that will
write examples on the io.Writer, with a column per schema attribute followed
by the Class column.
*/
func NewWriter(writer io.Writer, schema dataset.Schema) (Writer, error) {
	w := csv.NewWriter(writer)
	record := append(schema.Names(), dataset.Class)
	err := w.Write(record)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{schema: schema, w: w}, nil
}

/*
WriteDataset takes a writer and a dataset and dumps the dataset to the writer
in CSV format. It returns an error if something went wrong when writing.
*/
func WriteDataset(writer io.Writer, d *dataset.Dataset) error {
	cw, err := NewWriter(writer, d.Schema)
	if err != nil {
		return err
	}
	_, err = cw.Write(d.Examples)
	if err != nil {
		return err
	}
	return cw.Flush()
}

/*
WriteDatasetToFilePath creates the file at the given path and writes the
dataset on it with WriteDataset.
*/
func WriteDatasetToFilePath(filepath string, d *dataset.Dataset) error {
	f, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteDataset(f, d)
}

func parseHeader(header []string, opts Options) (dataset.Schema, error) {
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}
	schema, err := dataset.SchemaFromColumns(header, opts.ClassColumn, opts.Features)
	if err != nil {
		return dataset.Schema{}, fmt.Errorf("parsing header: %w", err)
	}
	return schema, nil
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(examples []dataset.Example) (int, error) {
	for n, e := range examples {
		err := cw.WriteExample(e)
		if err != nil {
			return n, err
		}
	}
	return len(examples), nil
}

func (cw *csvWriter) WriteExample(e dataset.Example) error {
	record := make([]string, 0, len(cw.schema.Attributes)+1)
	for _, f := range cw.schema.Attributes {
		v, ok := e[f.Name()]
		if !ok || v == "" {
			v = dataset.Missing
		}
		record = append(record, v)
	}
	record = append(record, e[dataset.Class])
	err := cw.w.Write(record)
	if err != nil {
		return fmt.Errorf("writing CSV row for example %d: %v", cw.count+1, err)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
