package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/skm-tools/pss-export/internal/core/mapping"
)

type Neo4jConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type ExportConfig struct {
	// Access is "public" or "all". Public runs filter out reactions whose
	// only provenance is internal or invented.
	Access string `toml:"access"`

	// FixPolicy is "identify" or "apply".
	FixPolicy string `toml:"fix_policy"`

	// Dangling is "abort" or "skip".
	Dangling string `toml:"dangling"`

	// MappingPath points at a YAML mapping-tables file. Empty means the
	// built-in tables.
	MappingPath string `toml:"mapping_path"`

	// Pathways and Reactions scope the export; Reactions wins when both
	// are set. Empty means the whole graph.
	Pathways  []string `toml:"pathways"`
	Reactions []string `toml:"reactions"`

	// IncludeGenes keeps gene and transcript substrates of transcription
	// and translation reactions.
	IncludeGenes bool `toml:"include_genes"`

	ModelName        string `toml:"model_name"`
	ModelDescription string `toml:"model_description"`
}

type Config struct {
	Neo4j  Neo4jConfig  `toml:"neo4j"`
	Export ExportConfig `toml:"export"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// LoadMapping reads the YAML mapping tables. Tables absent from the file
// fall back to the built-in defaults, so a mapping file only needs to spell
// out its overrides.
func LoadMapping(path string) (mapping.Config, error) {
	cfg := mapping.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read mapping file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}
	return cfg, nil
}
