package mapping

import (
	"github.com/skm-tools/pss-export/internal/core/model"
)

// Registry exposes typed lookups over the configured mapping tables. It is
// built once at startup, read-only afterwards, and safe to share across
// concurrent export runs.
type Registry struct {
	cfg Config
}

// classifierTables are the tables the classifier consults on every entity or
// relation. Each must define a default so classification cannot dead-end at
// build time.
var classifierTables = []string{
	"label_to_form",
	"label_to_class",
	"reaction_type_to_process",
	"form_to_colour",
	"compartment_to_colour",
}

// NewRegistry validates cfg and wraps it. Tables the classifier depends on
// must carry defaults; a missing one is a ConfigError at load time.
func NewRegistry(cfg Config) (*Registry, error) {
	stringDefaults := map[string]string{
		"label_to_form":            cfg.LabelToForm.Default,
		"label_to_class":           cfg.LabelToClass.Default,
		"reaction_type_to_process": cfg.ReactionTypeToProcess.Default,
		"form_to_colour":           cfg.FormToColour.Default,
		"compartment_to_colour":    cfg.CompartmentToColour.Default,
	}
	for _, name := range classifierTables {
		if stringDefaults[name] == "" {
			return nil, &ConfigError{Table: name}
		}
	}
	if cfg.NodeFormToSBO.Default == nil {
		return nil, &ConfigError{Table: "node_form_to_SBO"}
	}
	if cfg.ReactionTypeToSBO.Default == nil {
		return nil, &ConfigError{Table: "reaction_type_to_SBO"}
	}
	if _, ok := cfg.EdgeToArc[fallbackKey]; !ok {
		return nil, &ConfigError{Table: "edge_to_arc"}
	}
	return &Registry{cfg: cfg}, nil
}

// CompartmentShort returns the short code used in identifiers for a
// compartment name.
func (r *Registry) CompartmentShort(compartment string) (string, error) {
	return r.cfg.CompartmentToShort.lookup("compartment_to_short", compartment)
}

// FormShort returns the short code used in identifiers for a node form.
func (r *Registry) FormShort(form model.Form) (string, error) {
	return r.cfg.NodeFormToShort.lookup("node_form_to_short", string(form))
}

// CompartmentSBO returns the compartment-level ontology code.
func (r *Registry) CompartmentSBO(compartment string) (int, error) {
	return r.cfg.CompartmentToSBO.lookup("compartment_to_SBO", compartment)
}

// FormSBO returns the ontology code for a node form.
func (r *Registry) FormSBO(form model.Form) (int, error) {
	return r.cfg.NodeFormToSBO.lookup("node_form_to_SBO", string(form))
}

// ReactionSBO returns the ontology code for a reaction type, falling back
// to the generic biochemical-reaction code for unmapped types.
func (r *Registry) ReactionSBO(t model.ReactionType) (int, error) {
	return r.cfg.ReactionTypeToSBO.lookup("reaction_type_to_SBO", string(t))
}

// RoleSBO returns the ontology code for an endpoint role.
func (r *Registry) RoleSBO(role model.Role) (int, error) {
	return r.cfg.NodeRoleToSBO.lookup("node_role_to_SBO", string(role))
}

// FormForLabel normalizes a raw node-form string from the graph into one of
// the canonical forms. Unmapped strings that already are canonical forms
// pass through; anything else falls to the table default.
func (r *Registry) FormForLabel(raw string) model.Form {
	if v, ok := r.cfg.LabelToForm.get(raw); ok {
		return model.Form(v)
	}
	return model.Form(r.cfg.LabelToForm.Default)
}

// DiagramClass returns the process-description glyph class for a form.
func (r *Registry) DiagramClass(form model.Form) (string, error) {
	return r.cfg.LabelToClass.lookup("label_to_class", string(form))
}

// StateForForm returns the activation state for a form. Forms with no
// entry are stateless, which is not an error.
func (r *Registry) StateForForm(form model.Form) (model.State, bool) {
	v, ok := r.cfg.FormToState.get(string(form))
	if !ok {
		return model.StateNone, false
	}
	return model.State(v), true
}

// ProcessClass returns the diagram process category for a reaction type.
func (r *Registry) ProcessClass(t model.ReactionType) (string, error) {
	return r.cfg.ReactionTypeToProcess.lookup("reaction_type_to_process", string(t))
}

// Arc returns the diagram arc class for an endpoint role of a reaction
// type. Roles unmapped for the given type classify under the table's
// unknown bucket.
func (r *Registry) Arc(t model.ReactionType, role model.Role) (string, error) {
	return r.cfg.EdgeToArc.lookup(string(t), string(role))
}

// FormColour returns the fill colour for a form, neutral default when
// unmapped.
func (r *Registry) FormColour(form model.Form) (string, error) {
	return r.cfg.FormToColour.lookup("form_to_colour", string(form))
}

// CompartmentColour returns the fill colour for a compartment glyph.
func (r *Registry) CompartmentColour(compartment string) (string, error) {
	return r.cfg.CompartmentToColour.lookup("compartment_to_colour", compartment)
}

// NodesToIgnore lists graph nodes the fetch collaborator should drop.
func (r *Registry) NodesToIgnore() []string {
	return r.cfg.NodesToIgnore
}
