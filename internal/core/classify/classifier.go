// Package classify annotates model entities and relations with their
// target-format constructs: ontology codes, diagram glyph and arc classes,
// colours and activation state. It is a pure function of the entity or
// relation plus the mapping registry.
package classify

import (
	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
)

type Classifier struct {
	reg *mapping.Registry
}

func NewClassifier(reg *mapping.Registry) *Classifier {
	return &Classifier{reg: reg}
}

// Entity populates the annotation fields of e from the mapping tables.
func (c *Classifier) Entity(e *model.Entity) error {
	sbo, err := c.reg.FormSBO(e.Form)
	if err != nil {
		return err
	}
	e.SBOTerm = sbo

	compSBO, err := c.reg.CompartmentSBO(e.Compartment)
	if err != nil {
		return err
	}
	e.CompartmentSBO = compSBO

	class, err := c.reg.DiagramClass(e.Form)
	if err != nil {
		return err
	}
	e.DiagramClass = class

	colour, err := c.reg.FormColour(e.Form)
	if err != nil {
		return err
	}
	e.Colour = colour

	// Forms without a state entry stay stateless.
	if state, ok := c.reg.StateForForm(e.Form); ok {
		e.State = state
	} else {
		e.State = model.StateNone
	}

	return nil
}

// Relation populates the annotation fields of rel: the reaction-level
// ontology code, the diagram process category, and one arc class per
// endpoint role.
func (c *Classifier) Relation(rel *model.Relation) error {
	sbo, err := c.reg.ReactionSBO(rel.Type)
	if err != nil {
		return err
	}
	rel.SBOTerm = sbo

	process, err := c.reg.ProcessClass(rel.Type)
	if err != nil {
		return err
	}
	rel.ProcessClass = process

	srcArc, err := c.reg.Arc(rel.Type, rel.SourceRole)
	if err != nil {
		return err
	}
	rel.SourceArc = srcArc

	tgtArc, err := c.reg.Arc(rel.Type, rel.TargetRole)
	if err != nil {
		return err
	}
	rel.TargetArc = tgtArc

	return nil
}
