// Package sbml serializes a finished export model into an SBML Level 3
// Version 2 document.
package sbml

import (
	"encoding/xml"
	"fmt"
	"log"

	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
)

const (
	sbmlNamespace = "http://www.sbml.org/sbml/level3/version2/core"
	sbmlLevel     = 3
	sbmlVersion   = 2
)

type Writer struct {
	reg *mapping.Registry
}

func NewWriter(reg *mapping.Registry) *Writer {
	return &Writer{reg: reg}
}

// Write renders m as an SBML document. Entities tagged excluded are
// skipped, as are reactions touching them.
func (w *Writer) Write(m *model.Model) ([]byte, error) {
	doc := document{
		XMLNS:   sbmlNamespace,
		Level:   sbmlLevel,
		Version: sbmlVersion,
		Model: modelElem{
			ID:   "pss_model",
			Name: m.Name,
		},
	}
	if m.Description != "" {
		doc.Model.Notes = newNotes(m.Description)
	}

	if err := w.compartments(m, &doc.Model); err != nil {
		return nil, err
	}

	for _, e := range m.Entities {
		if e.Excluded {
			log.Printf("sbml: skipping excluded entity %s", e.ID)
			continue
		}
		doc.Model.Species = append(doc.Model.Species, species{
			ID:                    e.ID,
			MetaID:                "metaid_skm_" + e.ID,
			Name:                  e.Label,
			Compartment:           m.CompartmentIDs[e.Compartment],
			SBOTerm:               sboTerm(e.SBOTerm),
			HasOnlySubstanceUnits: false,
			BoundaryCondition:     false,
			Constant:              false,
		})
	}

	for _, r := range m.Reactions() {
		rxn, ok := w.reaction(r)
		if !ok {
			continue
		}
		doc.Model.Reactions = append(doc.Model.Reactions, rxn)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal SBML: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// compartments emits one compartment element per model compartment, under
// the identifiers assigned at build time. The cytoplasm is always present:
// it is the default location for species fixed into a placeholder
// compartment.
func (w *Writer) compartments(m *model.Model, elem *modelElem) error {
	order := m.Compartments
	hasCytoplasm := false
	for _, c := range order {
		if c == "cytoplasm" {
			hasCytoplasm = true
			break
		}
	}
	if !hasCytoplasm && len(order) > 0 {
		order = append([]string{"cytoplasm"}, order...)
	}

	for _, c := range order {
		id, ok := m.CompartmentIDs[c]
		if !ok {
			return fmt.Errorf("no identifier assigned for compartment %q", c)
		}
		sbo, err := w.reg.CompartmentSBO(c)
		if err != nil {
			return err
		}
		elem.Compartments = append(elem.Compartments, compartment{
			ID:       id,
			Name:     c,
			Size:     1,
			Constant: true,
			SBOTerm:  sboTerm(sbo),
		})
	}
	return nil
}

func (w *Writer) reaction(r *model.Reaction) (reaction, bool) {
	if r.Type == model.ReactionUnknown {
		log.Printf("sbml: %s has unknown reaction type", r.Key)
	}

	first := r.Relations[0]
	rxn := reaction{
		ID:         first.ID,
		MetaID:     "metaid_skm_" + first.ID,
		SBOTerm:    sboTerm(first.SBOTerm),
		Reversible: false,
	}

	notes := first.Evidence
	for _, note := range first.ExportNotes {
		if notes != "" {
			notes += " "
		}
		notes += note
	}
	if notes != "" {
		rxn.Notes = newNotes(notes)
	}
	if len(first.ExternalLinks) > 0 {
		rxn.Annotation = newAnnotation(rxn.MetaID, first.ExternalLinks)
	}

	for _, e := range r.Substrates() {
		if e.Excluded {
			return reaction{}, false
		}
		rxn.Reactants = append(rxn.Reactants, speciesRef{Species: e.ID, Stoichiometry: 1})
	}
	for _, e := range r.Products() {
		if e.Excluded {
			return reaction{}, false
		}
		rxn.Products = append(rxn.Products, speciesRef{Species: e.ID, Stoichiometry: 1})
	}
	for _, e := range r.Modifiers() {
		if e.Excluded {
			return reaction{}, false
		}
		rxn.Modifiers = append(rxn.Modifiers, modifierRef{Species: e.ID})
	}

	return rxn, true
}

func sboTerm(code int) string {
	if code == 0 {
		return ""
	}
	return fmt.Sprintf("SBO:%07d", code)
}
