package core

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skm-tools/pss-export/internal/core/classify"
	"github.com/skm-tools/pss-export/internal/core/ident"
	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
	"github.com/skm-tools/pss-export/internal/driver"
)

// Builder walks the fetched graph and assembles the in-memory export model,
// assigning identifiers and annotations as it goes. Determinism of the
// identifiers holds for the fetch order of one run; a reordered fetch in a
// later run can disambiguate collisions differently.
type Builder struct {
	Source   driver.GraphSource
	Registry *mapping.Registry
	Dangling DanglingPolicy

	// IncludeGenes keeps the gene and transcript substrates of transcription
	// and translation reactions. Off by default: their products then appear
	// driven by their regulators alone.
	IncludeGenes bool

	assigner   *ident.Assigner
	classifier *classify.Classifier
}

func NewBuilder(source driver.GraphSource, reg *mapping.Registry, dangling DanglingPolicy) *Builder {
	return &Builder{
		Source:     source,
		Registry:   reg,
		Dangling:   dangling,
		assigner:   ident.NewAssigner(reg),
		classifier: classify.NewClassifier(reg),
	}
}

// Assigner exposes the run's identifier assigner so later stages (the
// fixer) extend the same identifier space instead of starting a new one.
func (b *Builder) Assigner() *ident.Assigner {
	return b.assigner
}

// Build fetches all nodes, then all edges, and produces the model. Dangling
// edge references are returned as reports when the policy is DanglingSkip.
func (b *Builder) Build(ctx context.Context) (*model.Model, []*DanglingReferenceError, error) {
	m := &model.Model{
		RunID:       uuid.New().String(),
		Name:        "PSS Model",
		Description: "Model exported from the plant stress signalling knowledge graph",
		Exported:    time.Now().UTC(),
	}

	nodes, err := b.Source.FetchNodes(ctx)
	if err != nil {
		return nil, nil, err
	}

	known := make(map[string]model.NodeRecord, len(nodes))
	for _, n := range nodes {
		known[n.Key] = n
		if _, err := b.entity(m, n.Key, n.Label, n.Form, n.Compartment, n.Pathways); err != nil {
			return nil, nil, err
		}
	}

	edges, err := b.Source.FetchEdges(ctx)
	if err != nil {
		return nil, nil, err
	}

	var dangling []*DanglingReferenceError
	for _, e := range edges {
		if !b.IncludeGenes && geneSubstrate(e) {
			continue
		}
		rel, derr, err := b.relation(m, known, e)
		if err != nil {
			return nil, nil, err
		}
		if derr != nil {
			if b.Dangling == DanglingAbort {
				return nil, nil, derr
			}
			dangling = append(dangling, derr)
			continue
		}
		m.Relations = append(m.Relations, rel)
	}

	if err := b.compartments(m); err != nil {
		return nil, nil, err
	}

	return m, dangling, nil
}

// compartments assigns one identifier per compartment through the run's
// assigner. The cytoplasm goes first so its identifier never depends on
// fetch order: it is the default location and serializers always emit it.
func (b *Builder) compartments(m *model.Model) error {
	m.CompartmentIDs = make(map[string]string, len(m.Compartments)+1)
	for _, c := range append([]string{"cytoplasm"}, m.Compartments...) {
		if _, ok := m.CompartmentIDs[c]; ok {
			continue
		}
		id, err := b.assigner.Compartment(c)
		if err != nil {
			return err
		}
		m.CompartmentIDs[c] = id
	}
	return nil
}

// entity resolves or creates the entity for one node occurrence, assigning
// its identifier and annotations on first encounter.
func (b *Builder) entity(m *model.Model, key, label, rawForm, rawCompartment string, pathways []string) (*model.Entity, error) {
	form := b.Registry.FormForLabel(rawForm)
	compartment := normalizeCompartment(rawCompartment)

	if label == "" {
		label = key
	}

	e := &model.Entity{
		Key:         key,
		Label:       label,
		Form:        form,
		Compartment: compartment,
		Pathways:    pathways,
	}
	if existing, ok := m.Lookup(e.Identity()); ok {
		return existing, nil
	}

	id, err := b.assigner.Entity(e)
	if err != nil {
		return nil, err
	}
	e.ID = id

	if err := b.classifier.Entity(e); err != nil {
		return nil, err
	}

	return m.AddEntity(e), nil
}

func (b *Builder) relation(m *model.Model, known map[string]model.NodeRecord, rec model.EdgeRecord) (*model.Relation, *DanglingReferenceError, error) {
	for _, key := range []string{rec.SourceKey, rec.TargetKey} {
		if _, ok := known[key]; !ok {
			return nil, &DanglingReferenceError{ReactionKey: rec.ReactionKey, NodeKey: key}, nil
		}
	}

	// An endpoint participates in the reaction in the form and place the
	// edge says, which may be a different occurrence than the node row.
	source, err := b.entity(m, rec.SourceKey, known[rec.SourceKey].Label, rec.SourceForm, rec.SourceCompartment, known[rec.SourceKey].Pathways)
	if err != nil {
		return nil, nil, err
	}
	target, err := b.entity(m, rec.TargetKey, known[rec.TargetKey].Label, rec.TargetForm, rec.TargetCompartment, known[rec.TargetKey].Pathways)
	if err != nil {
		return nil, nil, err
	}

	rel := &model.Relation{
		ReactionKey:   rec.ReactionKey,
		Type:          model.ReactionType(rec.ReactionType),
		Source:        source,
		Target:        target,
		SourceRole:    model.Role(rec.SourceRole),
		TargetRole:    model.Role(rec.TargetRole),
		Mechanism:     rec.Mechanism,
		Effect:        rec.Effect,
		Evidence:      rec.Evidence,
		ExternalLinks: rec.ExternalLinks,
	}

	id, err := b.assigner.Relation(rel)
	if err != nil {
		return nil, nil, err
	}
	rel.ID = id

	if err := b.classifier.Relation(rel); err != nil {
		return nil, nil, err
	}

	return rel, nil, nil
}

// geneSubstrate reports whether rec is the consuming side of a
// transcription or translation reaction, the participation dropped when
// gene nodes are excluded.
func geneSubstrate(rec model.EdgeRecord) bool {
	if !model.ReactionType(rec.ReactionType).IsTranscriptionTranslation() {
		return false
	}
	role := model.Role(rec.SourceRole)
	return role == model.RoleSubstrate || role == model.RoleTranslocateFrom
}

// normalizeCompartment maps unassigned locations into the cytoplasm and
// strips putative qualifiers, matching how the graph is curated.
func normalizeCompartment(compartment string) string {
	compartment = strings.TrimPrefix(compartment, "putative:")
	if compartment == "" || compartment == "unknown" {
		return "cytoplasm"
	}
	return compartment
}
