package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/forest"
	"github.com/viggieG/ID3-Random-Forest/tree"
)

// EnvPrefix is the prefix of the environment variables read as configuration.
const EnvPrefix = "FOREST_"

// Config holds the settings shared by the commands.
type Config struct {
	Trees       int     `koanf:"trees"`
	MaxFeatures int     `koanf:"max_features"`
	MaxDepth    int     `koanf:"max_depth"`
	MinimumGain float64 `koanf:"min_gain"`
	Seed        int64   `koanf:"seed"`
	Workers     int     `koanf:"workers"`
	PruneOn     string  `koanf:"prune_on"`
	ClassColumn string  `koanf:"class_column"`
	Metadata    string  `koanf:"metadata"`
	Table       string  `koanf:"table"`
	Redis       string  `koanf:"redis"`
	RedisPrefix string  `koanf:"redis_prefix"`
	Verbose     bool    `koanf:"verbose"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"trees":        10,
		"max_features": 0,
		"max_depth":    0,
		"min_gain":     tree.DefaultMinimumGain,
		"seed":         0,
		"workers":      0,
		"prune_on":     forest.PruneOnSample.String(),
		"class_column": dataset.Class,
		"metadata":     "",
		"table":        "examples",
		"redis":        "",
		"redis_prefix": "forest",
		"verbose":      false,
	}
}

/*
LoadConfig loads the configuration from defaults, the YAML file at cfgFile
(if any), FOREST_ environment variables and the flags explicitly set,
each overriding the previous ones.
*/
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}
	// FOREST_MAX_FEATURES -> max_features
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration values are usable.
func (c *Config) Validate() error {
	if c.Trees <= 0 {
		return fmt.Errorf("trees must be positive, got %d", c.Trees)
	}
	if c.MaxFeatures < 0 {
		return fmt.Errorf("max_features cannot be negative, got %d", c.MaxFeatures)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Workers)
	}
	if _, err := forest.ParsePruneSource(c.PruneOn); err != nil {
		return err
	}
	if c.ClassColumn == "" {
		return fmt.Errorf("class_column cannot be empty")
	}
	return nil
}

// Grower returns a forest.Grower set up with the configuration.
func (c *Config) Grower() *forest.Grower {
	pruneOn, _ := forest.ParsePruneSource(c.PruneOn)
	return &forest.Grower{
		NumTrees:    c.Trees,
		MaxFeatures: c.MaxFeatures,
		MaxDepth:    c.MaxDepth,
		Workers:     c.Workers,
		PruneOn:     pruneOn,
		Builder:     &tree.Builder{MinimumGain: c.MinimumGain},
	}
}

func addConfigFlags(fs *pflag.FlagSet) {
	d := defaults()
	fs.Int("trees", d["trees"].(int), "number of trees in the forest")
	fs.Int("max-features", d["max_features"].(int), "number of attributes every tree is grown on (0 means all)")
	fs.Int("max-depth", d["max_depth"].(int), "depth hint recorded on the forest")
	fs.Float64("min-gain", d["min_gain"].(float64), "minimum information gain to split a node")
	fs.Int64("seed", 0, "seed for shuffling and sampling (0 picks one from the clock)")
	fs.Int("workers", d["workers"].(int), "trees grown concurrently (0 means no limit)")
	fs.String("prune-on", d["prune_on"].(string), "examples to prune every tree against: sample or validation")
	fs.String("class-column", d["class_column"].(string), "name of the column holding the class")
	fs.StringP("metadata", "m", "", "path to a YAML file declaring the attributes and their values")
	fs.String("table", d["table"].(string), "table or collection holding the dataset in SQL and MongoDB sources")
	fs.String("redis", "", "address of a redis server to store forests on")
	fs.String("redis-prefix", d["redis_prefix"].(string), "prefix of the redis keys forests are stored under")
}
