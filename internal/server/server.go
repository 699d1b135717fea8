package server

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skm-tools/pss-export/internal/config"
	"github.com/skm-tools/pss-export/internal/core"
	"github.com/skm-tools/pss-export/internal/core/fixes"
	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/driver"
	"github.com/skm-tools/pss-export/internal/export"
	"github.com/skm-tools/pss-export/internal/export/boolnet"
	"github.com/skm-tools/pss-export/internal/export/sbgn"
	"github.com/skm-tools/pss-export/internal/export/sbml"
)

type Server struct {
	Cfg      *config.Config
	Source   *driver.Neo4jSource
	Registry *mapping.Registry
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = &config.Config{}
	}

	// Override config with env vars if present
	if uri := os.Getenv("NEO4J_URI"); uri != "" {
		cfg.Neo4j.URI = uri
	}
	if user := os.Getenv("NEO4J_USER"); user != "" {
		cfg.Neo4j.User = user
	}
	if pass := os.Getenv("NEO4J_PASSWORD"); pass != "" {
		cfg.Neo4j.Password = pass
	}
	if mappingPath := os.Getenv("MAPPING_PATH"); mappingPath != "" {
		cfg.Export.MappingPath = mappingPath
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

	return &Server{Cfg: cfg, Source: src, Registry: reg}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/export/sbml", s.ExportSBML)
	r.GET("/export/sbgn", s.ExportSBGN)
	r.GET("/export/boolnet", s.ExportBoolNet)
	r.GET("/export/entities", s.ExportEntities)
	r.GET("/inconsistencies", s.Inconsistencies)

	return r
}

// run executes one export pipeline for the request, honouring the access,
// fix and dangling query parameters. A false return means the error has
// already been written to the client.
func (s *Server) run(c *gin.Context) (*core.RunResult, bool) {
	access := driver.Access(c.DefaultQuery("access", s.Cfg.Export.Access))
	if access != driver.AccessPublic && access != driver.AccessAll {
		c.JSON(http.StatusBadRequest, gin.H{"error": "access must be 'public' or 'all'"})
		return nil, false
	}
	policy := fixes.Policy(c.DefaultQuery("fix", s.Cfg.Export.FixPolicy))
	if policy != fixes.PolicyIdentify && policy != fixes.PolicyApply {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fix must be 'identify' or 'apply'"})
		return nil, false
	}
	dangling := core.DanglingAbort
	switch c.DefaultQuery("dangling", s.Cfg.Export.Dangling) {
	case "skip":
		dangling = core.DanglingSkip
	case "abort", "":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "dangling must be 'abort' or 'skip'"})
		return nil, false
	}
	includeGenes := false
	switch c.DefaultQuery("genes", "exclude") {
	case "include":
		includeGenes = true
	case "exclude":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "genes must be 'include' or 'exclude'"})
		return nil, false
	}

	source := &driver.Neo4jSource{
		Driver:    s.Source.Driver,
		Access:    access,
		Ignore:    s.Source.Ignore,
		Pathways:  splitParam(c.Query("pathways")),
		Reactions: splitParam(c.Query("reactions")),
	}
	adapter := core.NewAdapter(source, s.Registry, policy, dangling)
	adapter.IncludeGenes = includeGenes
	m, report, err := adapter.Run(c.Request.Context())
	if err != nil {
		log.Printf("Export run failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return &core.RunResult{Model: m, Report: report}, true
}

// splitParam parses a comma-separated scope parameter; empty means
// unscoped.
func splitParam(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s *Server) ExportSBML(c *gin.Context) {
	res, ok := s.run(c)
	if !ok {
		return
	}
	out, err := sbml.NewWriter(s.Registry).Write(res.Model)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/xml", out)
}

func (s *Server) ExportSBGN(c *gin.Context) {
	res, ok := s.run(c)
	if !ok {
		return
	}
	out, err := sbgn.NewWriter(s.Registry).Write(res.Model)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/xml", out)
}

func (s *Server) ExportBoolNet(c *gin.Context) {
	res, ok := s.run(c)
	if !ok {
		return
	}
	out, err := boolnet.NewWriter().Write(res.Model)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", out)
}

func (s *Server) ExportEntities(c *gin.Context) {
	res, ok := s.run(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/tab-separated-values", export.EntitiesTSV(res.Model))
}

func (s *Server) Inconsistencies(c *gin.Context) {
	res, ok := s.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run_id":          res.Model.RunID,
		"dangling":        res.Report.Dangling,
		"inconsistencies": res.Report.Inconsistencies,
	})
}
