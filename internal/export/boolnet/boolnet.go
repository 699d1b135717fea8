// Package boolnet serializes a finished export model into a BoolNet
// "targets, factors" rule table. Every reaction contributes one regulation
// term per product: activating reactions OR together, inhibiting reactions
// are negated and AND-ed onto the rule.
package boolnet

import (
	"bytes"
	"log"
	"strings"

	"github.com/skm-tools/pss-export/internal/core/model"
)

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Write renders m as a BoolNet rule file. Entities tagged excluded are
// skipped, as are reactions touching them. Species without any incoming
// regulation get a self-loop rule so the network stays closed.
func (w *Writer) Write(m *model.Model) ([]byte, error) {
	activations := make(map[string][]string)
	inhibitions := make(map[string][]string)

	for _, r := range m.Reactions() {
		factors := factorTerm(r)
		if factors == "" {
			log.Printf("boolnet: %s has no usable factors, skipping", r.Key)
			continue
		}
		for _, target := range ruleTargets(r) {
			if r.Inhibitory() {
				inhibitions[target] = append(inhibitions[target], "!("+factors+")")
			} else {
				activations[target] = append(activations[target], factors)
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("targets, factors\n")
	for _, e := range m.Entities {
		if e.Excluded {
			continue
		}
		buf.WriteString(e.ID)
		buf.WriteString(", ")
		buf.WriteString(composeRule(e.ID, activations[e.ID], inhibitions[e.ID]))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// ruleTargets picks the species a reaction regulates: its products, or its
// substrates when the reaction only consumes (degradation and the like).
func ruleTargets(r *model.Reaction) []string {
	entities := r.Products()
	if len(entities) == 0 {
		entities = r.Substrates()
	}
	var out []string
	for _, e := range entities {
		if e.Excluded {
			continue
		}
		out = append(out, e.ID)
	}
	return out
}

// factorTerm AND-joins the reaction's substrates and modifiers.
func factorTerm(r *model.Reaction) string {
	var parts []string
	seen := make(map[string]bool)
	for _, e := range append(r.Substrates(), r.Modifiers()...) {
		if e.Excluded {
			return ""
		}
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		parts = append(parts, e.ID)
	}
	return strings.Join(parts, " & ")
}

func composeRule(self string, activations, inhibitions []string) string {
	rule := self
	switch len(activations) {
	case 0:
	case 1:
		rule = activations[0]
	default:
		rule = "(" + strings.Join(activations, " | ") + ")"
	}
	if len(inhibitions) > 0 {
		rule += " & " + strings.Join(inhibitions, " & ")
	}
	return rule
}
