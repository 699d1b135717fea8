// Package ident assigns short, format-legal, collision-free identifiers to
// model entities, relations and compartments. Assignment is memoized per
// run: the same source entity always gets the same identifier back, while
// distinct sources that legalize to the same candidate are disambiguated by
// a numeric suffix in first-seen order.
package ident

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
)

// Error reports a candidate identifier that legalized to the empty string.
// This is fatal for the entity: emitting a malformed ID is worse than
// aborting.
type Error struct {
	Source string
}

func (e *Error) Error() string {
	return fmt.Sprintf("identifier for %q legalizes to an empty string", e.Source)
}

var nonAlphaNum = regexp.MustCompile(`[^0-9a-zA-Z_]+`)

// bracketSuffix matches a trailing "[...]" qualifier on display labels,
// e.g. "RBOHD[branch]".
var bracketSuffix = regexp.MustCompile(`^(.*)\[(.*)\]$`)

type Assigner struct {
	reg *mapping.Registry

	entityIDs      map[model.SpeciesKey]string
	relationIDs    map[string]string
	compartmentIDs map[string]string
	taken          map[string]bool
}

func NewAssigner(reg *mapping.Registry) *Assigner {
	return &Assigner{
		reg:            reg,
		entityIDs:      make(map[model.SpeciesKey]string),
		relationIDs:    make(map[string]string),
		compartmentIDs: make(map[string]string),
		taken:          make(map[string]bool),
	}
}

// Entity returns the identifier for e, assigning one on first encounter.
func (a *Assigner) Entity(e *model.Entity) (string, error) {
	if id, ok := a.entityIDs[e.Identity()]; ok {
		return id, nil
	}

	comp, err := a.reg.CompartmentShort(e.Compartment)
	if err != nil {
		return "", err
	}
	form, err := a.reg.FormShort(e.Form)
	if err != nil {
		return "", err
	}

	label := Legalize(DisplayLabel(labelOrKey(e)))
	if label == "" {
		return "", &Error{Source: labelOrKey(e)}
	}

	id := a.claim(fmt.Sprintf("s_%s_%s_%s", label, comp, form))
	a.entityIDs[e.Identity()] = id
	return id, nil
}

// Relation returns the identifier for rel, assigning one on first
// encounter. Relations sharing a reaction key get suffixed identifiers in
// first-seen order.
func (a *Assigner) Relation(rel *model.Relation) (string, error) {
	memo := relationKey(rel)
	if id, ok := a.relationIDs[memo]; ok {
		return id, nil
	}

	key := Legalize(rel.ReactionKey)
	if key == "" {
		return "", &Error{Source: rel.ReactionKey}
	}

	id := a.claim("r_" + key)
	a.relationIDs[memo] = id
	return id, nil
}

// Compartment returns the identifier for a compartment name.
func (a *Assigner) Compartment(compartment string) (string, error) {
	if id, ok := a.compartmentIDs[compartment]; ok {
		return id, nil
	}
	short, err := a.reg.CompartmentShort(compartment)
	if err != nil {
		return "", err
	}
	id := a.claim("c_" + short)
	a.compartmentIDs[compartment] = id
	return id, nil
}

// claim reserves candidate, appending a numeric disambiguator (starting at
// 2) when it is already owned by a different source.
func (a *Assigner) claim(candidate string) string {
	id := candidate
	for n := 2; a.taken[id]; n++ {
		id = fmt.Sprintf("%s_%d", candidate, n)
	}
	a.taken[id] = true
	return id
}

// DisplayLabel strips a trailing bracketed qualifier from a node label.
func DisplayLabel(name string) string {
	if m := bracketSuffix.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

// Legalize removes characters that are illegal in target-format
// identifiers, keeping alphanumerics and underscores.
func Legalize(name string) string {
	return nonAlphaNum.ReplaceAllString(strings.ReplaceAll(name, " ", "_"), "")
}

func labelOrKey(e *model.Entity) string {
	if e.Label != "" {
		return e.Label
	}
	return e.Key
}

func relationKey(rel *model.Relation) string {
	src, tgt := "", ""
	if rel.Source != nil {
		src = rel.Source.ID
	}
	if rel.Target != nil {
		tgt = rel.Target.ID
	}
	return strings.Join([]string{rel.ReactionKey, src, string(rel.SourceRole), tgt, string(rel.TargetRole)}, "|")
}
