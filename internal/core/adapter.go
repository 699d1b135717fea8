// Package core drives one export run: fetch the graph, assemble the model,
// analyze and optionally repair it. Serialization is left to the export
// packages consuming the finished model.
package core

import (
	"context"
	"log"

	"github.com/skm-tools/pss-export/internal/core/fixes"
	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
	"github.com/skm-tools/pss-export/internal/driver"
)

// Report carries the non-fatal findings of a run: dangling edge references
// skipped during the build and the inconsistency records from analysis,
// resolved or not. It is returned alongside the model so callers can
// surface it next to the exported bytes.
type Report struct {
	Dangling        []*DanglingReferenceError `json:"dangling,omitempty"`
	Inconsistencies []*fixes.Inconsistency    `json:"inconsistencies,omitempty"`
}

// RunResult pairs a finished model with the report of its run.
type RunResult struct {
	Model  *model.Model `json:"model"`
	Report *Report      `json:"report"`
}

// Adapter wires the build pipeline for one export invocation. The registry
// it holds is read-only and may be shared across concurrent adapters; each
// Run produces a model owned by that run alone.
type Adapter struct {
	Source   driver.GraphSource
	Registry *mapping.Registry
	Policy   fixes.Policy
	Dangling DanglingPolicy

	// IncludeGenes keeps gene and transcript substrates of transcription
	// and translation reactions in the model.
	IncludeGenes bool
}

func NewAdapter(source driver.GraphSource, reg *mapping.Registry, policy fixes.Policy, dangling DanglingPolicy) *Adapter {
	return &Adapter{
		Source:   source,
		Registry: reg,
		Policy:   policy,
		Dangling: dangling,
	}
}

// Run executes the pipeline: fetch and build, then analyze and (policy
// permitting) fix. Fatal errors abort before any output is produced.
func (a *Adapter) Run(ctx context.Context) (*model.Model, *Report, error) {
	builder := NewBuilder(a.Source, a.Registry, a.Dangling)
	builder.IncludeGenes = a.IncludeGenes
	m, dangling, err := builder.Build(ctx)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("core: built model %s with %d entities, %d relations", m.RunID, len(m.Entities), len(m.Relations))

	fixer := fixes.NewFixer(a.Registry, builder.Assigner(), a.Policy)
	records := fixer.Run(m)
	if len(records) > 0 {
		log.Printf("core: %d inconsistencies detected (policy %s)", len(records), a.Policy)
	}

	return m, &Report{Dangling: dangling, Inconsistencies: records}, nil
}
