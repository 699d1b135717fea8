package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.toml", `
[neo4j]
uri = "bolt://graph:7687"
user = "reader"
password = "secret"

[export]
access = "all"
fix_policy = "apply"
dangling = "skip"
pathways = ["drought", "cold"]
include_genes = true
model_name = "Drought Model"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bolt://graph:7687", cfg.Neo4j.URI)
	assert.Equal(t, "reader", cfg.Neo4j.User)
	assert.Equal(t, "all", cfg.Export.Access)
	assert.Equal(t, "apply", cfg.Export.FixPolicy)
	assert.Equal(t, "skip", cfg.Export.Dangling)
	assert.Equal(t, []string{"drought", "cold"}, cfg.Export.Pathways)
	assert.True(t, cfg.Export.IncludeGenes)
	assert.Equal(t, "Drought Model", cfg.Export.ModelName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_BadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", "[[[")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestLoadMapping_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadMapping("")
	require.NoError(t, err)
	assert.Equal(t, "cyt", cfg.CompartmentToShort.Default)
	assert.Contains(t, cfg.NodesToIgnore, "water")
}

func TestLoadMapping_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "mapping.yaml", `
compartment_to_short:
  default: cyt
  values:
    apoplast: apo
    symplast: sym
nodes_to_ignore:
  - water
`)

	cfg, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, "sym", cfg.CompartmentToShort.Values["symplast"])
	assert.Equal(t, []string{"water"}, cfg.NodesToIgnore)

	// Tables the file does not mention keep their defaults.
	assert.Equal(t, "unspecified entity", cfg.LabelToClass.Default)
}

func TestLoadMapping_BadYAML(t *testing.T) {
	path := writeFile(t, "mapping.yaml", "\t: nope")
	_, err := LoadMapping(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse mapping YAML")
}
