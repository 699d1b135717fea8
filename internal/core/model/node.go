package model

// NodeRecord is a raw node row as returned by the graph-fetch collaborator.
type NodeRecord struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Form        string   `json:"form"`
	Compartment string   `json:"compartment"`
	Pathways    []string `json:"pathways,omitempty"`
}

// Entity is one classified, identified species/process node of the model.
// A graph node appearing in several compartments (or forms) yields several
// Entities sharing the same Key.
type Entity struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Form        Form   `json:"form"`
	Compartment string `json:"compartment"`

	// Populated by the identifier assigner and classifier.
	ID             string `json:"id"`
	SBOTerm        int    `json:"sbo_term,omitempty"`
	CompartmentSBO int    `json:"compartment_sbo,omitempty"`
	DiagramClass   string `json:"diagram_class,omitempty"`
	Colour         string `json:"colour,omitempty"`
	State          State  `json:"state,omitempty"`

	// Excluded entities stay in the model but are skipped at emission.
	Excluded bool `json:"excluded,omitempty"`

	Pathways []string `json:"pathways,omitempty"`
}

// SpeciesKey identifies a distinct Entity within one model.
type SpeciesKey struct {
	Key         string
	Form        Form
	Compartment string
}

// Identity returns the deduplication key for e.
func (e *Entity) Identity() SpeciesKey {
	return SpeciesKey{Key: e.Key, Form: e.Form, Compartment: e.Compartment}
}
