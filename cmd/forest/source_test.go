package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/forest"
	"github.com/viggieG/ID3-Random-Forest/tree"
)

const weatherCSV = `Outlook,Windy,Play
sunny,no,yes
rainy,yes,no
sunny,yes,yes
rainy,,no
`

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := LoadConfig("", testFlags(t, "--class-column", "Play"))
	require.NoError(t, err)
	return cfg
}

func TestReadWriteDataset_CSVAndSQLite3(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	cfg := testConfig(t)
	input := filepath.Join(dir, "weather.csv")
	require.NoError(t, os.WriteFile(input, []byte(weatherCSV), 0o600))

	d, err := readDataset(ctx, cfg, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"Outlook", "Windy"}, d.Schema.Names())
	require.Equal(t, 4, d.Count())
	assert.Equal(t, dataset.Missing, d.Examples[3]["Windy"])

	db := filepath.Join(dir, "weather.db")
	require.NoError(t, writeDataset(ctx, cfg, db, d))

	cfg.ClassColumn = dataset.Class
	read, err := readDataset(ctx, cfg, db)
	require.NoError(t, err)
	assert.Equal(t, d.Schema.Names(), read.Schema.Names())
	assert.Equal(t, d.Examples, read.Examples)
}

func TestAttributeFeatures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.yaml")
	md := `features:
  Outlook: [sunny, rainy]
  Windy: [yes, no]
  Play: [yes, no]
`
	require.NoError(t, os.WriteFile(path, []byte(md), 0o600))
	cfg := testConfig(t)
	cfg.Metadata = path

	features, err := attributeFeatures(cfg)
	require.NoError(t, err)
	var names []string
	for _, f := range features {
		names = append(names, f.Name())
	}
	assert.ElementsMatch(t, []string{"Outlook", "Windy"}, names)
}

func TestSaveLoadForest(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "forest.json")
	f := &forest.Forest{Members: []*forest.Member{
		{
			Tree: tree.NewInternal("Outlook",
				&tree.Branch{Value: "sunny", Node: tree.NewLeaf("yes")},
				&tree.Branch{Value: "rainy", Node: tree.NewLeaf("no")},
			),
			Features: []string{"Outlook"},
		},
	}}

	id, err := saveForest(ctx, cfg, path, f)
	require.NoError(t, err)
	assert.Empty(t, id)

	loaded, err := loadForest(ctx, cfg, path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)

	_, err = loadForest(ctx, cfg, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestMemberFeatures(t *testing.T) {
	f := &forest.Forest{Members: []*forest.Member{
		{Tree: tree.NewLeaf("yes"), Features: []string{"b", "a"}},
		{Tree: tree.NewLeaf("no"), Features: []string{"a", "c"}},
	}}
	var names []string
	for _, feat := range memberFeatures(f) {
		names = append(names, feat.Name())
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}
