package fixes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/skm-tools/pss-export/internal/core/model"
)

// Kind names one detectable inconsistency pattern.
type Kind string

const (
	KindDisconnected        Kind = "disconnected-entity"
	KindMissingActivation   Kind = "missing-activation-link"
	KindCompartmentCrossing Kind = "compartment-crossing-without-transport"
)

// Inconsistency is one detected structural issue: the pattern, the
// offending entities, and whether a fixer action resolved it. These are
// reports, not errors; they never abort an export.
type Inconsistency struct {
	Kind     Kind            `json:"kind"`
	Entities []*model.Entity `json:"-"`
	Detail   string          `json:"detail"`
	Resolved bool            `json:"resolved"`
	Fix      string          `json:"fix,omitempty"`
}

// EntityIDs returns the offending entity identifiers, sorted.
func (r *Inconsistency) EntityIDs() []string {
	ids := make([]string, 0, len(r.Entities))
	for _, e := range r.Entities {
		ids = append(ids, e.ID)
	}
	sort.Strings(ids)
	return ids
}

func (r *Inconsistency) key() string {
	return string(r.Kind) + ":" + strings.Join(r.EntityIDs(), ",")
}

// Analyze inspects the model as an undirected graph and returns all
// detected inconsistencies. Entities already tagged excluded are skipped:
// exclusion is the resolution for entities nothing connects to.
func Analyze(m *model.Model) []*Inconsistency {
	g := newModelGraph(m)

	var records []*Inconsistency
	records = append(records, disconnectedEntities(m, g)...)
	records = append(records, missingActivationLinks(m)...)
	records = append(records, compartmentCrossings(m)...)
	return records
}

// disconnectedEntities reports every entity with no incident relations or
// alone in its connected component.
func disconnectedEntities(m *model.Model, g *modelGraph) []*Inconsistency {
	var records []*Inconsistency
	for _, e := range m.Entities {
		if e.Excluded {
			continue
		}
		if g.degree[e.ID] == 0 || g.componentSize(e.ID) == 1 {
			records = append(records, &Inconsistency{
				Kind:     KindDisconnected,
				Entities: []*model.Entity{e},
				Detail:   fmt.Sprintf("entity %s has no incident relations", e.ID),
			})
		}
	}
	return records
}

// missingActivationLinks reports inactive-variant entities whose activated
// counterpart exists in the model but which take part in no activation or
// deactivation reaction, a sign of an incomplete fragment.
func missingActivationLinks(m *model.Model) []*Inconsistency {
	activation := make(map[string]bool)
	for _, rel := range m.Relations {
		if !rel.Type.IsActivationClass() {
			continue
		}
		if rel.Source != nil {
			activation[rel.Source.ID] = true
		}
		if rel.Target != nil {
			activation[rel.Target.ID] = true
		}
	}

	var records []*Inconsistency
	for _, e := range m.Entities {
		if e.Excluded || !e.Form.IsInactiveVariant() || activation[e.ID] {
			continue
		}
		active, _ := e.Form.ActiveVariant()
		counterpart := findVariant(m, e.Key, active)
		if counterpart == nil {
			continue
		}
		records = append(records, &Inconsistency{
			Kind:     KindMissingActivation,
			Entities: []*model.Entity{e, counterpart},
			Detail: fmt.Sprintf("%s occurs as both %s and %s with no activation reaction between them",
				e.Key, e.Form, active),
		})
	}
	return records
}

// compartmentCrossings reports groups of entities with the same graph key
// and form spread across compartments with no transport relation
// connecting them.
func compartmentCrossings(m *model.Model) []*Inconsistency {
	type groupKey struct {
		key  string
		form model.Form
	}
	groups := make(map[groupKey][]*model.Entity)
	var order []groupKey
	for _, e := range m.Entities {
		if e.Excluded {
			continue
		}
		k := groupKey{key: e.Key, form: e.Form}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}

	var records []*Inconsistency
	for _, k := range order {
		group := groups[k]
		if len(compartmentsOf(group)) < 2 {
			continue
		}
		if transported(m, group) {
			continue
		}
		records = append(records, &Inconsistency{
			Kind:     KindCompartmentCrossing,
			Entities: group,
			Detail: fmt.Sprintf("%s (%s) occurs in compartments %s with no transport reaction",
				k.key, k.form, strings.Join(compartmentsOf(group), ", ")),
		})
	}
	return records
}

// transported reports whether any transport relation connects two members
// of the group.
func transported(m *model.Model, group []*model.Entity) bool {
	members := make(map[string]bool, len(group))
	for _, e := range group {
		members[e.ID] = true
	}
	for _, rel := range m.Relations {
		if !rel.Type.IsTransport() || rel.Source == nil || rel.Target == nil {
			continue
		}
		if members[rel.Source.ID] && members[rel.Target.ID] {
			return true
		}
	}
	return false
}

func compartmentsOf(group []*model.Entity) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range group {
		if !seen[e.Compartment] {
			seen[e.Compartment] = true
			out = append(out, e.Compartment)
		}
	}
	sort.Strings(out)
	return out
}

func findVariant(m *model.Model, key string, form model.Form) *model.Entity {
	for _, e := range m.EntitiesForKey(key) {
		if e.Form == form {
			return e
		}
	}
	return nil
}
