package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/dataset/csv"
	"github.com/viggieG/ID3-Random-Forest/dataset/mongodataset"
	"github.com/viggieG/ID3-Random-Forest/dataset/sqldataset"
	"github.com/viggieG/ID3-Random-Forest/dataset/sqldataset/pgadapter"
	"github.com/viggieG/ID3-Random-Forest/dataset/sqldataset/sqlite3adapter"
	"github.com/viggieG/ID3-Random-Forest/feature"
	"github.com/viggieG/ID3-Random-Forest/feature/yaml"
	"github.com/viggieG/ID3-Random-Forest/forest"
	"github.com/viggieG/ID3-Random-Forest/forest/redisstore"
	treejson "github.com/viggieG/ID3-Random-Forest/tree/json"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/redis.v5"
)

const locationHelp = "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) URL"

func isPostgreSQL(location string) bool {
	return strings.HasPrefix(location, "postgresql://") || strings.HasPrefix(location, "postgres://")
}

func isMongoDB(location string) bool {
	return strings.HasPrefix(location, "mongodb://")
}

func isSQLite3(location string) bool {
	return strings.HasSuffix(location, ".db")
}

/*
attributeFeatures reads the features declared on the metadata file of the
configuration, if any, leaving out the class.
*/
func attributeFeatures(cfg *Config) ([]feature.Feature, error) {
	if cfg.Metadata == "" {
		return nil, nil
	}
	features, err := yaml.ReadFeaturesFromFile(cfg.Metadata)
	if err != nil {
		return nil, err
	}
	result := make([]feature.Feature, 0, len(features))
	for _, f := range features {
		if f.Name() != cfg.ClassColumn && f.Name() != dataset.Class {
			result = append(result, f)
		}
	}
	return result, nil
}

/*
readDataset reads the dataset at the given location: stdin (as CSV) when
empty, a SQL table or MongoDB collection named by cfg.Table, or a CSV file.
*/
func readDataset(ctx context.Context, cfg *Config, location string) (*dataset.Dataset, error) {
	features, err := attributeFeatures(cfg)
	if err != nil {
		return nil, err
	}
	switch {
	case isPostgreSQL(location):
		a, err := pgadapter.New(location)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		return sqldataset.ReadDataset(ctx, a, cfg.Table, sqldataset.Options{ClassColumn: cfg.ClassColumn, Features: features})
	case isMongoDB(location):
		session, err := mgo.Dial(location)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB: %w", err)
		}
		defer session.Close()
		return mongodataset.Open(session, cfg.Table).Read(ctx, mongodataset.Options{ClassField: cfg.ClassColumn, Features: features})
	case isSQLite3(location):
		a, err := sqlite3adapter.New(location)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		return sqldataset.ReadDataset(ctx, a, cfg.Table, sqldataset.Options{ClassColumn: cfg.ClassColumn, Features: features})
	}
	return csv.ReadDatasetFromFilePath(location, csv.Options{ClassColumn: cfg.ClassColumn, Features: features})
}

/*
writeDataset writes the dataset to the given location, which is read as in
readDataset but with stdout instead of stdin.
*/
func writeDataset(ctx context.Context, cfg *Config, location string, d *dataset.Dataset) error {
	switch {
	case isPostgreSQL(location):
		a, err := pgadapter.New(location)
		if err != nil {
			return err
		}
		defer a.Close()
		return sqldataset.WriteDataset(ctx, a, cfg.Table, d)
	case isMongoDB(location):
		session, err := mgo.Dial(location)
		if err != nil {
			return fmt.Errorf("connecting to MongoDB: %w", err)
		}
		defer session.Close()
		_, err = mongodataset.Open(session, cfg.Table).Write(ctx, d)
		return err
	case isSQLite3(location):
		a, err := sqlite3adapter.New(location)
		if err != nil {
			return err
		}
		defer a.Close()
		return sqldataset.WriteDataset(ctx, a, cfg.Table, d)
	case location == "":
		return csv.WriteDataset(os.Stdout, d)
	}
	return csv.WriteDatasetToFilePath(location, d)
}

func forestStore(cfg *Config) forest.Store {
	rc := redis.NewClient(&redis.Options{Addr: cfg.Redis})
	return redisstore.New(rc, cfg.RedisPrefix, treejson.NewForestEncodeDecoder(treejson.NewNodeEncodeDecoder()))
}

/*
saveForest stores the forest on redis when the configuration names a redis
server, returning its ID. Otherwise it writes the forest as JSON to the file
at output, or to stdout if output is empty.
*/
func saveForest(ctx context.Context, cfg *Config, output string, f *forest.Forest) (string, error) {
	if cfg.Redis != "" {
		s := forestStore(cfg)
		defer s.Close(ctx)
		return s.Create(ctx, f)
	}
	if output == "" {
		return "", treejson.WriteJSONForest(f, os.Stdout)
	}
	w, err := os.Create(output)
	if err != nil {
		return "", err
	}
	defer w.Close()
	return "", treejson.WriteJSONForest(f, w)
}

/*
loadForest reads the forest with the given ID from redis when the
configuration names a redis server, or from the JSON file at input otherwise.
*/
func loadForest(ctx context.Context, cfg *Config, input string) (*forest.Forest, error) {
	if cfg.Redis != "" {
		s := forestStore(cfg)
		defer s.Close(ctx)
		f, err := s.Get(ctx, input)
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, fmt.Errorf("no forest with id %q on redis", input)
		}
		return f, nil
	}
	r, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("reading forest in JSON from %s: %w", input, err)
	}
	defer r.Close()
	f, err := treejson.ReadJSONForest(r)
	if err != nil {
		return nil, fmt.Errorf("parsing forest in JSON from %s: %w", input, err)
	}
	return f, nil
}

// random returns the source of randomness for the configured seed, and the
// seed itself, picked from the clock when not set.
func random(cfg *Config) (*rand.Rand, int64) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
