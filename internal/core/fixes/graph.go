// Package fixes inspects an assembled model for structural inconsistencies
// that would leave the exported network biologically disconnected, and can
// apply narrowly scoped corrective edits under the "apply" policy.
package fixes

import (
	"github.com/skm-tools/pss-export/internal/core/model"
)

// modelGraph is an undirected view over the model: entities are vertices,
// relations connect their endpoints.
type modelGraph struct {
	entities map[string]*model.Entity
	adj      map[string][]string
	degree   map[string]int
	comp     map[string]int
}

func newModelGraph(m *model.Model) *modelGraph {
	g := &modelGraph{
		entities: make(map[string]*model.Entity, len(m.Entities)),
		adj:      make(map[string][]string),
		degree:   make(map[string]int),
		comp:     make(map[string]int),
	}

	for _, e := range m.Entities {
		g.entities[e.ID] = e
	}

	for _, rel := range m.Relations {
		if rel.Source == nil || rel.Target == nil {
			continue
		}
		s, t := rel.Source.ID, rel.Target.ID
		if _, ok := g.entities[s]; !ok {
			continue
		}
		if _, ok := g.entities[t]; !ok {
			continue
		}
		g.adj[s] = append(g.adj[s], t)
		g.adj[t] = append(g.adj[t], s)
		g.degree[s]++
		g.degree[t]++
	}

	g.label(m)
	return g
}

// label runs BFS over the undirected view and tags every entity with its
// connected component index.
func (g *modelGraph) label(m *model.Model) {
	next := 0
	for _, e := range m.Entities {
		if _, seen := g.comp[e.ID]; seen {
			continue
		}
		queue := []string{e.ID}
		g.comp[e.ID] = next
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.adj[u] {
				if _, seen := g.comp[v]; !seen {
					g.comp[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}
}

// componentSize returns the number of entities sharing an entity's
// component.
func (g *modelGraph) componentSize(id string) int {
	c, ok := g.comp[id]
	if !ok {
		return 0
	}
	n := 0
	for _, other := range g.comp {
		if other == c {
			n++
		}
	}
	return n
}
