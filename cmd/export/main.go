// Command export runs one export against the knowledge graph and writes the
// requested formats to an output directory.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/skm-tools/pss-export/internal/config"
	"github.com/skm-tools/pss-export/internal/core"
	"github.com/skm-tools/pss-export/internal/core/fixes"
	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
	"github.com/skm-tools/pss-export/internal/driver"
	"github.com/skm-tools/pss-export/internal/export"
	"github.com/skm-tools/pss-export/internal/export/boolnet"
	"github.com/skm-tools/pss-export/internal/export/sbgn"
	"github.com/skm-tools/pss-export/internal/export/sbml"
)

func main() {
	var (
		cfgPath      = flag.String("config", "config/config.toml", "TOML configuration file")
		outDir       = flag.String("out", "out", "output directory")
		formats      = flag.String("formats", "sbml,sbgn,boolnet,entities", "comma-separated formats to write")
		access       = flag.String("access", "", "access level: public or all (overrides config)")
		fix          = flag.String("fix", "", "fix policy: identify or apply (overrides config)")
		dangling     = flag.String("dangling", "", "dangling policy: abort or skip (overrides config)")
		pathways     = flag.String("pathways", "", "comma-separated pathways to export (overrides config)")
		reactions    = flag.String("reactions", "", "comma-separated reaction ids to export (overrides config)")
		includeGenes = flag.Bool("include-genes", false, "keep gene substrates of transcription and translation")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", *cfgPath, err)
		cfg = &config.Config{}
	}
	applyOverrides(cfg, *access, *fix, *dangling)
	if list := splitList(*pathways); len(list) > 0 {
		cfg.Export.Pathways = list
	}
	if list := splitList(*reactions); len(list) > 0 {
		cfg.Export.Reactions = list
	}
	if *includeGenes {
		cfg.Export.IncludeGenes = true
	}

	tables, err := config.LoadMapping(cfg.Export.MappingPath)
	if err != nil {
		log.Fatalf("Failed to load mapping tables: %v", err)
	}
	reg, err := mapping.NewRegistry(tables)
	if err != nil {
		log.Fatalf("Invalid mapping tables: %v", err)
	}

	src, err := driver.NewNeo4jSource(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password,
		driver.Access(cfg.Export.Access), reg.NodesToIgnore())
	if err != nil {
		log.Fatalf("Failed to connect to graph database: %v", err)
	}
	src.Pathways = cfg.Export.Pathways
	src.Reactions = cfg.Export.Reactions
	ctx := context.Background()
	defer src.Close(ctx)

	danglingPolicy := core.DanglingAbort
	if cfg.Export.Dangling == "skip" {
		danglingPolicy = core.DanglingSkip
	}
	adapter := core.NewAdapter(src, reg, fixes.Policy(cfg.Export.FixPolicy), danglingPolicy)
	adapter.IncludeGenes = cfg.Export.IncludeGenes
	m, report, err := adapter.Run(ctx)
	if err != nil {
		log.Fatalf("Export run failed: %v", err)
	}
	if cfg.Export.ModelName != "" {
		m.Name = cfg.Export.ModelName
	}
	if cfg.Export.ModelDescription != "" {
		m.Description = cfg.Export.ModelDescription
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	for _, format := range strings.Split(*formats, ",") {
		if err := write(strings.TrimSpace(format), *outDir, m, reg); err != nil {
			log.Fatalf("Failed to write %s: %v", format, err)
		}
	}
	if err := writeReport(*outDir, report); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	log.Printf("Export %s complete: %d entities, %d relations, %d inconsistencies",
		m.RunID, len(m.Entities), len(m.Relations), len(report.Inconsistencies))
}

func applyOverrides(cfg *config.Config, access, fix, dangling string) {
	if uri := os.Getenv("NEO4J_URI"); uri != "" {
		cfg.Neo4j.URI = uri
	}
	if user := os.Getenv("NEO4J_USER"); user != "" {
		cfg.Neo4j.User = user
	}
	if pass := os.Getenv("NEO4J_PASSWORD"); pass != "" {
		cfg.Neo4j.Password = pass
	}
	if access != "" {
		cfg.Export.Access = access
	}
	if fix != "" {
		cfg.Export.FixPolicy = fix
	}
	if dangling != "" {
		cfg.Export.Dangling = dangling
	}
	if cfg.Neo4j.URI == "" {
		cfg.Neo4j.URI = "bolt://localhost:7687"
	}
	if cfg.Export.Access == "" {
		cfg.Export.Access = string(driver.AccessPublic)
	}
	if cfg.Export.FixPolicy == "" {
		cfg.Export.FixPolicy = string(fixes.PolicyIdentify)
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func write(format, dir string, m *model.Model, reg *mapping.Registry) error {
	var (
		out  []byte
		name string
		err  error
	)
	switch format {
	case "sbml":
		out, err = sbml.NewWriter(reg).Write(m)
		name = "model.sbml"
	case "sbgn":
		out, err = sbgn.NewWriter(reg).Write(m)
		name = "model.sbgn"
	case "boolnet":
		out, err = boolnet.NewWriter().Write(m)
		name = "model.bnet"
	case "entities":
		out = export.EntitiesTSV(m)
		name = "entities.tsv"
	default:
		log.Printf("Unknown format %q, skipping", format)
		return nil
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), out, 0o644)
}

func writeReport(dir string, report *core.Report) error {
	if len(report.Dangling) == 0 && len(report.Inconsistencies) == 0 {
		return nil
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "report.json"), append(out, '\n'), 0o644)
}
