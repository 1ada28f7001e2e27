/*
Package mongodataset reads datasets from and writes them to
a MongoDB collection.

Every example is stored as a document with a string field per
attribute it has a value for and a Class field. Missing values
are left out of the documents.
*/
package mongodataset

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Options tunes how the documents of a collection are turned into a dataset.
*/
type Options struct {
	// ClassField is the name of the field holding the class of the
	// examples. It defaults to dataset.Class.
	ClassField string
	// Features optionally declares the attributes with their available
	// values. Without them, every field found on the documents but the
	// class becomes an attribute, in alphabetical order.
	Features []feature.Feature
}

/*
Collection is a MongoDB collection examples can be written to and
read from.
*/
type Collection interface {
	// Write stores the examples of the dataset on the collection and
	// returns the number of examples written.
	Write(ctx context.Context, d *dataset.Dataset) (int, error)
	// Read returns the dataset with the documents of the collection
	// satisfying all the given criteria.
	Read(ctx context.Context, opts Options, criteria ...feature.Criterion) (*dataset.Dataset, error)
}

type collection struct {
	session *mgo.Session
	name    string
}

const idField = "_id"

/*
Open takes a MongoDB database session and a collection name and
returns a Collection on the default database for that session.
*/
func Open(session *mgo.Session, name string) Collection {
	return &collection{session, name}
}

func (c *collection) Write(ctx context.Context, d *dataset.Dataset) (int, error) {
	if err := c.ensureIndexes(d.Schema); err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, len(d.Examples))
	for _, e := range d.Examples {
		docs = append(docs, documentFor(e, d.Schema))
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := c.coll().Insert(docs...); err != nil {
		return 0, fmt.Errorf("inserting examples into %s: %w", c.name, err)
	}
	return len(docs), nil
}

func (c *collection) Read(ctx context.Context, opts Options, criteria ...feature.Criterion) (*dataset.Dataset, error) {
	iter := c.coll().Find(queryFor(criteria)).Iter()
	defer iter.Close()
	var docs []bson.M
	for {
		doc := bson.M{}
		if !iter.Next(&doc) {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.name, err)
	}
	return datasetFor(docs, opts)
}

func (c *collection) ensureIndexes(schema dataset.Schema) error {
	for _, f := range schema.Attributes {
		fName := f.Name()
		if fName == idField {
			return fmt.Errorf("invalid feature name %q: reserved collection field", idField)
		}
		if strings.ContainsAny(fName, ".$") {
			return fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", fName, ".", "$")
		}
		index := mgo.Index{
			Key:        []string{fName},
			Background: true,
			Sparse:     true,
		}
		if err := c.coll().EnsureIndex(index); err != nil {
			return err
		}
	}
	return nil
}

func (c *collection) coll() *mgo.Collection {
	return c.session.DB("").C(c.name)
}

func documentFor(e dataset.Example, schema dataset.Schema) bson.M {
	doc := bson.M{dataset.Class: e[dataset.Class]}
	for _, f := range schema.Attributes {
		if v, ok := e[f.Name()]; ok && v != dataset.Missing && v != "" {
			doc[f.Name()] = v
		}
	}
	return doc
}

func queryFor(criteria []feature.Criterion) bson.M {
	query := bson.M{}
	for _, fc := range criteria {
		fName := fc.Feature().Name()
		switch qfc := fc.(type) {
		case feature.DiscreteCriterion:
			query[fName] = qfc.Value()
		case feature.UndefinedCriterion:
			query[fName] = bson.M{"$exists": false}
		}
	}
	return query
}

func datasetFor(docs []bson.M, opts Options) (*dataset.Dataset, error) {
	classField := opts.ClassField
	if classField == "" {
		classField = dataset.Class
	}
	var fields []string
	if len(opts.Features) > 0 {
		fields = append(feature.Names(opts.Features), classField)
	} else {
		fields = fieldsOf(docs)
	}
	schema, err := dataset.SchemaFromColumns(fields, classField, opts.Features)
	if err != nil {
		return nil, err
	}
	examples := make([]dataset.Example, len(docs))
	row := make([]string, len(fields))
	for i, doc := range docs {
		for j, f := range fields {
			row[j] = ""
			if v, ok := doc[f]; ok && v != nil {
				row[j] = fmt.Sprintf("%v", v)
			}
		}
		examples[i] = dataset.ExampleFromRow(fields, row, classField)
	}
	return dataset.New(schema, examples)
}

func fieldsOf(docs []bson.M) []string {
	seen := make(map[string]bool)
	var fields []string
	for _, doc := range docs {
		for k := range doc {
			if k != idField && !seen[k] {
				seen[k] = true
				fields = append(fields, k)
			}
		}
	}
	sort.Strings(fields)
	return fields
}
