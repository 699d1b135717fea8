package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
	"github.com/skm-tools/pss-export/internal/export/sbgn"
	"github.com/skm-tools/pss-export/internal/export/sbml"
)

func TestEntitiesTSV(t *testing.T) {
	m := &model.Model{}
	m.AddEntity(&model.Entity{
		ID: "s_MPK6_cyt_pa", Key: "MPK6", Label: "MPK6",
		Form: model.FormProteinActive, Compartment: "cytoplasm",
		State: model.StateActive, SBOTerm: 252,
		Pathways: []string{"drought", "cold"},
	})
	m.AddEntity(&model.Entity{
		ID: "s_LONER_nuc_p", Key: "LONER", Label: "LONER",
		Form: model.FormProtein, Compartment: "nucleus",
		Excluded: true,
	})

	lines := strings.Split(strings.TrimRight(string(EntitiesTSV(m)), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id\tkey\tname\tform\tcompartment\tstate\tsbo_term\texcluded\tpathways", lines[0])
	assert.Equal(t, "s_MPK6_cyt_pa\tMPK6\tMPK6\tprotein_active\tcytoplasm\tactive\t252\tfalse\tdrought,cold", lines[1])

	// Excluded entities stay visible for auditing.
	assert.Contains(t, lines[2], "s_LONER_nuc_p")
	assert.Contains(t, lines[2], "true")
}

func TestFormatsShareCompartmentIdentifiers(t *testing.T) {
	reg, err := mapping.NewRegistry(mapping.DefaultConfig())
	require.NoError(t, err)

	// Two unmapped compartments sharing the cytoplasm short code, one of
	// them visible only to SBML because its sole entity is excluded. Both
	// formats must still name the oleosome by the same suffixed identifier.
	hidden := &model.Entity{
		ID: "s_A_cyt_met", Key: "A", Label: "A",
		Form: model.FormMetabolite, Compartment: "plastoglobule",
		DiagramClass: "simple chemical", Colour: "#A5D6A7", Excluded: true,
	}
	visible := &model.Entity{
		ID: "s_B_cyt_met", Key: "B", Label: "B",
		Form: model.FormMetabolite, Compartment: "oleosome",
		DiagramClass: "simple chemical", Colour: "#A5D6A7",
	}
	m := &model.Model{
		Name: "PSS Model",
		CompartmentIDs: map[string]string{
			"cytoplasm":     "c_cyt",
			"plastoglobule": "c_cyt_2",
			"oleosome":      "c_cyt_3",
		},
	}
	m.AddEntity(hidden)
	m.AddEntity(visible)

	sbmlOut, err := sbml.NewWriter(reg).Write(m)
	require.NoError(t, err)
	sbgnOut, err := sbgn.NewWriter(reg).Write(m)
	require.NoError(t, err)

	assert.Contains(t, string(sbmlOut), `compartment="c_cyt_3"`)
	assert.Contains(t, string(sbgnOut), `id="c_cyt_3" class="compartment"`)
	assert.Contains(t, string(sbgnOut), `compartmentRef="c_cyt_3"`)
	assert.NotContains(t, string(sbgnOut), `id="c_cyt_2"`)
}
