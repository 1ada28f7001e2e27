/*
Package inputsample reads examples from an io.Reader, one attribute value
per line, requesting every value before reading it.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/feature"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(feature.Feature, string) error
}

/*
Reader reads examples from an io.Reader.
*/
type Reader struct {
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	features              []feature.Feature
}

/*
New takes an io.Reader, a slice of features and a FeatureValueRequester
and returns a Reader of examples with a value for each of the features.

Every value is requested with the FeatureValueRequester and then read
from a line of the reader. An empty line or the dataset.Missing string
are read as a missing value. Lines with values the feature does not
accept are rejected with the FeatureValueRequester's RejectValueFor method
and the next line is read instead.
*/
func New(r io.Reader, features []feature.Feature, featureValueRequester FeatureValueRequester) *Reader {
	return &Reader{bufio.NewScanner(r), featureValueRequester, features}
}

/*
ReadExample reads a value for every feature of the reader and returns the
example made with them. The example has no class. It returns an error if
the values cannot be requested or the reader ends before all of them are
read.
*/
func (r *Reader) ReadExample() (dataset.Example, error) {
	e := make(dataset.Example, len(r.features))
	for _, f := range r.features {
		err := r.featureValueRequester.RequestValueFor(f)
		if err != nil {
			return nil, err
		}
		v, err := r.readValue(f)
		if err != nil {
			return nil, fmt.Errorf("reading value for %s: %w", f.Name(), err)
		}
		e[f.Name()] = v
	}
	return e, nil
}

func (r *Reader) readValue(f feature.Feature) (string, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || line == dataset.Missing {
			return dataset.Missing, nil
		}
		if ok, _ := f.Valid(line); ok {
			return line, nil
		}
		if err := r.featureValueRequester.RejectValueFor(f, line); err != nil {
			return "", err
		}
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

/*
NewWriterRequester returns a FeatureValueRequester that writes prompts and
rejections on w.
*/
func NewWriterRequester(w io.Writer) FeatureValueRequester {
	return &writerRequester{w}
}

type writerRequester struct {
	w io.Writer
}

func (wr *writerRequester) RequestValueFor(f feature.Feature) error {
	var err error
	if df, ok := f.(*feature.DiscreteFeature); ok && len(df.AvailableValues()) > 0 {
		_, err = fmt.Fprintf(wr.w, "%s (%s): ", f.Name(), strings.Join(df.AvailableValues(), ", "))
	} else {
		_, err = fmt.Fprintf(wr.w, "%s: ", f.Name())
	}
	return err
}

func (wr *writerRequester) RejectValueFor(f feature.Feature, v string) error {
	_, err := fmt.Fprintf(wr.w, "invalid value %q for %s\n", v, f.Name())
	return err
}
