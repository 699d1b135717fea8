package fixes

import (
	"fmt"
	"log"

	"github.com/skm-tools/pss-export/internal/core/ident"
	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
)

// Policy selects whether detected inconsistencies are only reported or
// also corrected.
type Policy string

const (
	PolicyIdentify Policy = "identify"
	PolicyApply    Policy = "apply"
)

// Fix type tags recorded on corrected records and on the export notes of
// touched relations.
const (
	FixExcludeDisconnected = "fix:exclude-disconnected"
	FixProductActive       = "fix-form:product-active"
	FixTransportSynthesis  = "fix-loc:transport-to-consumed-compartment"
	FixTransportFromCyt    = "fix-loc:from-cyt"
)

// maxIterations bounds the analyze/apply loop: one fix can expose the next
// (a synthesized transport joins two fragments that then need a form fix),
// so fixing reruns until quiescent.
const maxIterations = 5

// Fixer applies corrective edits to a model. Fixing never deletes an
// entity: disconnected entities are tagged excluded and the serializers
// honor the tag.
type Fixer struct {
	Policy Policy

	registry *mapping.Registry
	assigner *ident.Assigner
}

// NewFixer builds a fixer sharing the build run's identifier assigner, so
// synthesized relations cannot collide with assigned identifiers.
func NewFixer(reg *mapping.Registry, assigner *ident.Assigner, policy Policy) *Fixer {
	return &Fixer{Policy: policy, registry: reg, assigner: assigner}
}

// Run analyzes m and, under PolicyApply, applies the corrective edit for
// each fixable record, re-analyzing until no further fix lands. All
// records ever observed are returned, resolved or not.
func (f *Fixer) Run(m *model.Model) []*Inconsistency {
	var all []*Inconsistency
	seen := make(map[string]bool)

	for iter := 0; iter < maxIterations; iter++ {
		applied := 0
		for _, rec := range Analyze(m) {
			if seen[rec.key()] {
				continue
			}
			seen[rec.key()] = true
			all = append(all, rec)

			if f.Policy != PolicyApply {
				continue
			}
			if f.apply(m, rec) {
				rec.Resolved = true
				applied++
			}
		}
		if f.Policy != PolicyApply || applied == 0 {
			break
		}
		log.Printf("fixes: applied %d fixes, re-analyzing (iteration %d)", applied, iter+1)
	}

	return all
}

func (f *Fixer) apply(m *model.Model, rec *Inconsistency) bool {
	switch rec.Kind {
	case KindDisconnected:
		return f.excludeEntity(rec)
	case KindMissingActivation:
		return f.retargetToActive(m, rec)
	case KindCompartmentCrossing:
		return f.synthesizeTransport(m, rec)
	}
	return false
}

// excludeEntity tags the entity so serializers skip it. The entity stays
// in the model for reporting.
func (f *Fixer) excludeEntity(rec *Inconsistency) bool {
	for _, e := range rec.Entities {
		e.Excluded = true
	}
	rec.Fix = FixExcludeDisconnected
	return true
}

// retargetToActive repoints a transcription/translation product from the
// inactive form onto the activated counterpart: the unmodified gene
// product is assumed ready for its downstream role, which reconnects the
// fragment producing it with the fragment consuming it.
func (f *Fixer) retargetToActive(m *model.Model, rec *Inconsistency) bool {
	if len(rec.Entities) < 2 {
		return false
	}
	inactive, active := rec.Entities[0], rec.Entities[1]

	fixed := false
	for _, rel := range m.Relations {
		if !rel.Type.IsTranscriptionTranslation() {
			continue
		}
		if rel.Target != inactive || !producing(rel.TargetRole) {
			continue
		}
		rel.Target = active
		rel.ExportNotes = append(rel.ExportNotes, FixProductActive)
		fixed = true
	}
	if fixed {
		rec.Fix = FixProductActive
	}
	return fixed
}

// synthesizeTransport adds a placeholder translocation from the compartment
// where the species is produced towards each compartment where it is
// consumed but never produced or transported to. With no unambiguous
// producing compartment it falls back to transporting out of the
// cytoplasm.
func (f *Fixer) synthesizeTransport(m *model.Model, rec *Inconsistency) bool {
	group := rec.Entities
	byCompartment := make(map[string]*model.Entity, len(group))
	for _, e := range group {
		byCompartment[e.Compartment] = e
	}

	produced, transportedTo, consumed := participationByCompartment(m, group)

	var sources []*model.Entity
	for comp := range produced {
		sources = append(sources, byCompartment[comp])
	}
	fixType := FixTransportSynthesis
	if len(sources) != 1 {
		// Last resort: the cytoplasm is the default pool.
		cyt, ok := byCompartment["cytoplasm"]
		if !ok {
			return false
		}
		sources = []*model.Entity{cyt}
		fixType = FixTransportFromCyt
	}
	source := sources[0]

	fixed := false
	for comp := range consumed {
		if comp == source.Compartment || produced[comp] || transportedTo[comp] {
			continue
		}
		target := byCompartment[comp]
		if target == nil {
			continue
		}
		if f.addTransport(m, source, target, fixType) {
			fixed = true
		}
	}
	if fixed {
		rec.Fix = fixType
	}
	return fixed
}

// participationByCompartment classifies the compartments of a species
// group by how the species takes part in reactions there.
func participationByCompartment(m *model.Model, group []*model.Entity) (produced, transportedTo, consumed map[string]bool) {
	members := make(map[string]bool, len(group))
	for _, e := range group {
		members[e.ID] = true
	}

	produced = make(map[string]bool)
	transportedTo = make(map[string]bool)
	consumed = make(map[string]bool)

	for _, rel := range m.Relations {
		if rel.Target != nil && members[rel.Target.ID] && producing(rel.TargetRole) {
			if rel.Type.IsTransport() {
				transportedTo[rel.Target.Compartment] = true
			} else {
				produced[rel.Target.Compartment] = true
			}
		}
		if rel.Source != nil && members[rel.Source.ID] && (consuming(rel.SourceRole) || modifying(rel.SourceRole)) {
			consumed[rel.Source.Compartment] = true
		}
	}
	return produced, transportedTo, consumed
}

func (f *Fixer) addTransport(m *model.Model, source, target *model.Entity, fixType string) bool {
	fromShort, err := f.registry.CompartmentShort(source.Compartment)
	if err != nil {
		return false
	}
	toShort, err := f.registry.CompartmentShort(target.Compartment)
	if err != nil {
		return false
	}
	formShort, err := f.registry.FormShort(source.Form)
	if err != nil {
		return false
	}

	key := fmt.Sprintf("transport_%s_%s_%s_to_%s",
		ident.Legalize(ident.DisplayLabel(source.Label)), formShort, fromShort, toShort)
	for _, rel := range m.Relations {
		if rel.ReactionKey == key {
			return false
		}
	}

	rel := &model.Relation{
		ReactionKey: key,
		Type:        model.ReactionTranslocation,
		Source:      source,
		Target:      target,
		SourceRole:  model.RoleTranslocateFrom,
		TargetRole:  model.RoleTranslocateTo,
		ExportNotes: []string{fixType},
		Synthesized: true,
	}

	id, err := f.assigner.Relation(rel)
	if err != nil {
		return false
	}
	rel.ID = id

	if sbo, err := f.registry.ReactionSBO(rel.Type); err == nil {
		rel.SBOTerm = sbo
	}
	if class, err := f.registry.ProcessClass(rel.Type); err == nil {
		rel.ProcessClass = class
	}
	if arc, err := f.registry.Arc(rel.Type, rel.SourceRole); err == nil {
		rel.SourceArc = arc
	}
	if arc, err := f.registry.Arc(rel.Type, rel.TargetRole); err == nil {
		rel.TargetArc = arc
	}

	log.Printf("fixes: adding transport reaction %s (%s -> %s)", key, source.Compartment, target.Compartment)
	m.Relations = append(m.Relations, rel)
	return true
}

func producing(role model.Role) bool {
	return role == model.RoleProduct || role == model.RoleTranslocateTo
}

func consuming(role model.Role) bool {
	return role == model.RoleSubstrate || role == model.RoleTranslocateFrom
}

func modifying(role model.Role) bool {
	return role == model.RoleModifier || role == model.RoleActivates || role == model.RoleInhibits
}
