package mapping

import "fmt"

// Table is one configured source-key to target-value mapping. A table may
// carry a default returned for unmapped keys; tables without a default
// surface a ConfigError on a miss instead.
type Table struct {
	Default string            `yaml:"default"`
	Values  map[string]string `yaml:"values"`
}

func (t Table) lookup(name, key string) (string, error) {
	if v, ok := t.Values[key]; ok {
		return v, nil
	}
	if t.Default != "" {
		return t.Default, nil
	}
	return "", &ConfigError{Table: name, Key: key}
}

// get returns the mapped value without falling back to the default.
func (t Table) get(key string) (string, bool) {
	v, ok := t.Values[key]
	return v, ok
}

// IntTable maps source keys to integer ontology codes.
type IntTable struct {
	Default *int           `yaml:"default"`
	Values  map[string]int `yaml:"values"`
}

func (t IntTable) lookup(name, key string) (int, error) {
	if v, ok := t.Values[key]; ok {
		return v, nil
	}
	if t.Default != nil {
		return *t.Default, nil
	}
	return 0, &ConfigError{Table: name, Key: key}
}

// ArcTable is the nested reaction-type -> endpoint-role -> arc-class table.
// The entry under "unknown" doubles as the fallback for both unmapped
// reaction types and unmapped roles.
type ArcTable map[string]map[string]string

func (t ArcTable) lookup(reactionType, role string) (string, error) {
	if roles, ok := t[reactionType]; ok {
		if arc, ok := roles[role]; ok {
			return arc, nil
		}
	}
	if roles, ok := t[fallbackKey]; ok {
		if arc, ok := roles[role]; ok {
			return arc, nil
		}
	}
	return "", &ConfigError{Table: "edge_to_arc", Key: fmt.Sprintf("%s/%s", reactionType, role)}
}

const fallbackKey = "unknown"

// Config is the full parsed mapping-table configuration, matching the
// top-level table names of the YAML file.
type Config struct {
	CompartmentToShort    Table    `yaml:"compartment_to_short"`
	NodeFormToShort       Table    `yaml:"node_form_to_short"`
	CompartmentToSBO      IntTable `yaml:"compartment_to_SBO"`
	NodeFormToSBO         IntTable `yaml:"node_form_to_SBO"`
	ReactionTypeToSBO     IntTable `yaml:"reaction_type_to_SBO"`
	NodeRoleToSBO         IntTable `yaml:"node_role_to_SBO"`
	LabelToClass          Table    `yaml:"label_to_class"`
	LabelToForm           Table    `yaml:"label_to_form"`
	FormToState           Table    `yaml:"form_to_state"`
	ReactionTypeToProcess Table    `yaml:"reaction_type_to_process"`
	EdgeToArc             ArcTable `yaml:"edge_to_arc"`
	FormToColour          Table    `yaml:"form_to_colour"`
	CompartmentToColour   Table    `yaml:"compartment_to_colour"`

	// NodesToIgnore lists graph nodes excluded at fetch time.
	NodesToIgnore []string `yaml:"nodes_to_ignore"`
}
