package model

import "time"

// Model is the assembled, target-agnostic export model. It is owned by a
// single export run and never shared across runs.
type Model struct {
	RunID       string    `json:"run_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Exported    time.Time `json:"exported"`

	Entities  []*Entity   `json:"entities"`
	Relations []*Relation `json:"relations"`

	// Compartments in first-seen order.
	Compartments []string `json:"compartments"`

	// CompartmentIDs maps each compartment name to the identifier assigned
	// at build time. Serializers consume these so one compartment carries
	// the same identifier in every format of a run.
	CompartmentIDs map[string]string `json:"compartment_ids,omitempty"`

	byIdentity map[SpeciesKey]*Entity
}

// AddEntity appends e and indexes it by identity. Re-adding an entity with
// an identity seen before returns the existing one unchanged.
func (m *Model) AddEntity(e *Entity) *Entity {
	if m.byIdentity == nil {
		m.byIdentity = make(map[SpeciesKey]*Entity)
	}
	if existing, ok := m.byIdentity[e.Identity()]; ok {
		return existing
	}
	m.byIdentity[e.Identity()] = e
	m.Entities = append(m.Entities, e)

	known := false
	for _, c := range m.Compartments {
		if c == e.Compartment {
			known = true
			break
		}
	}
	if !known {
		m.Compartments = append(m.Compartments, e.Compartment)
	}
	return e
}

// Lookup returns the entity with the given identity, if present.
func (m *Model) Lookup(key SpeciesKey) (*Entity, bool) {
	e, ok := m.byIdentity[key]
	return e, ok
}

// EntitiesForKey returns all entities sharing the graph key, in model order.
func (m *Model) EntitiesForKey(key string) []*Entity {
	var out []*Entity
	for _, e := range m.Entities {
		if e.Key == key {
			out = append(out, e)
		}
	}
	return out
}

// Reactions groups the model's relations by reaction key, preserving
// first-seen order of the keys.
func (m *Model) Reactions() []*Reaction {
	byKey := make(map[string]*Reaction)
	var order []string
	for _, rel := range m.Relations {
		r, ok := byKey[rel.ReactionKey]
		if !ok {
			r = &Reaction{Key: rel.ReactionKey, Type: rel.Type}
			byKey[rel.ReactionKey] = r
			order = append(order, rel.ReactionKey)
		}
		r.Relations = append(r.Relations, rel)
	}

	out := make([]*Reaction, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	return out
}
