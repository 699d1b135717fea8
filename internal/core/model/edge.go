package model

// EdgeRecord is a raw edge row as returned by the graph-fetch collaborator.
// Forms and compartments ride on the edge because a node participates in a
// reaction in one specific form and location.
type EdgeRecord struct {
	ReactionKey  string `json:"reaction_key"`
	ReactionType string `json:"reaction_type"`

	SourceKey         string `json:"source_key"`
	SourceForm        string `json:"source_form"`
	SourceCompartment string `json:"source_compartment"`
	SourceRole        string `json:"source_role"`

	TargetKey         string `json:"target_key"`
	TargetForm        string `json:"target_form"`
	TargetCompartment string `json:"target_compartment"`
	TargetRole        string `json:"target_role"`

	Mechanism     string   `json:"mechanism,omitempty"`
	Effect        string   `json:"effect,omitempty"`
	Evidence      string   `json:"evidence,omitempty"`
	ExternalLinks []string `json:"external_links,omitempty"`
}

// Relation is one classified, identified reaction/interaction edge between
// two Entities. Several Relations may share a ReactionKey when the
// underlying reaction has more than two participants.
type Relation struct {
	ReactionKey string       `json:"reaction_key"`
	Type        ReactionType `json:"type"`

	Source *Entity `json:"-"`
	Target *Entity `json:"-"`

	SourceRole Role `json:"source_role"`
	TargetRole Role `json:"target_role"`

	// Populated by the identifier assigner and classifier.
	ID           string `json:"id"`
	SBOTerm      int    `json:"sbo_term,omitempty"`
	ProcessClass string `json:"process_class,omitempty"`
	SourceArc    string `json:"source_arc,omitempty"`
	TargetArc    string `json:"target_arc,omitempty"`

	Mechanism     string   `json:"mechanism,omitempty"`
	Effect        string   `json:"effect,omitempty"`
	Evidence      string   `json:"evidence,omitempty"`
	ExternalLinks []string `json:"external_links,omitempty"`

	// ExportNotes records fixer interventions on this relation.
	ExportNotes []string `json:"export_notes,omitempty"`

	// Synthesized marks relations created by the fixer rather than
	// fetched from the graph.
	Synthesized bool `json:"synthesized,omitempty"`
}

// Reaction is a view over all Relations sharing one reaction key, with
// participants split by role. Serializers consume reactions, not raw
// relations.
type Reaction struct {
	Key       string
	Type      ReactionType
	Relations []*Relation
}

// Substrates returns the entities consumed by the reaction, first-seen
// order, deduplicated by entity ID.
func (r *Reaction) Substrates() []*Entity {
	return r.participants(ConsumingRoles, true)
}

// Products returns the entities produced by the reaction.
func (r *Reaction) Products() []*Entity {
	return r.participants(ProducingRoles, false)
}

// Modifiers returns the entities modulating the reaction.
func (r *Reaction) Modifiers() []*Entity {
	return r.participants(ModifierRoles, true)
}

// Inhibitory reports whether the reaction's effect is inhibition, used by
// the boolean rule serializer.
func (r *Reaction) Inhibitory() bool {
	if len(r.Relations) == 0 {
		return false
	}
	if r.Relations[0].Effect != "" {
		return r.Relations[0].Effect == "inhibition"
	}
	switch r.Type {
	case ReactionDegradation, ReactionDeactivation, ReactionTranscriptionRep:
		return true
	}
	return false
}

func (r *Reaction) participants(roles []Role, source bool) []*Entity {
	roleSet := make(map[Role]bool, len(roles))
	for _, role := range roles {
		roleSet[role] = true
	}

	seen := make(map[string]bool)
	var out []*Entity
	for _, rel := range r.Relations {
		var entity *Entity
		if source {
			if roleSet[rel.SourceRole] {
				entity = rel.Source
			}
		} else {
			if roleSet[rel.TargetRole] {
				entity = rel.Target
			}
		}
		if entity == nil || seen[entity.ID] {
			continue
		}
		seen[entity.ID] = true
		out = append(out, entity)
	}
	return out
}
