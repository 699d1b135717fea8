package sbgn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
)

func newTestWriter(t *testing.T) *Writer {
	t.Helper()
	reg, err := mapping.NewRegistry(mapping.DefaultConfig())
	require.NoError(t, err)
	return NewWriter(reg)
}

func testModel() *model.Model {
	kinase := &model.Entity{
		ID: "s_MPK6_cyt_pa", Key: "MPK6", Label: "MPK6",
		Form: model.FormProteinActive, Compartment: "cytoplasm",
		DiagramClass: "macromolecule", Colour: "#42A5F5", State: model.StateActive,
	}
	target := &model.Entity{
		ID: "s_ROS_cyt_met", Key: "ROS", Label: "ROS",
		Form: model.FormMetabolite, Compartment: "cytoplasm",
		DiagramClass: "simple chemical", Colour: "#A5D6A7",
	}

	m := &model.Model{
		Name:           "PSS Model",
		CompartmentIDs: map[string]string{"cytoplasm": "c_cyt"},
	}
	m.AddEntity(kinase)
	m.AddEntity(target)
	m.Relations = append(m.Relations, &model.Relation{
		ReactionKey:  "rx1",
		Type:         model.ReactionCatalysis,
		ID:           "r_rx1",
		ProcessClass: "process",
		Source:       kinase, SourceRole: model.RoleModifier, SourceArc: "CATALYSIS",
		Target: target, TargetRole: model.RoleProduct, TargetArc: "PRODUCTION",
	})
	return m
}

func TestWrite_MapAndGlyphs(t *testing.T) {
	out, err := newTestWriter(t).Write(testModel())
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, `xmlns="http://sbgn.org/libsbgn/0.2"`)
	assert.Contains(t, doc, `language="process description"`)

	assert.Contains(t, doc, `id="c_cyt" class="compartment"`)
	assert.Contains(t, doc, `id="s_MPK6_cyt_pa" class="macromolecule" compartmentRef="c_cyt"`)
	assert.Contains(t, doc, `id="s_ROS_cyt_met" class="simple chemical"`)
	assert.Contains(t, doc, `id="r_rx1" class="process"`)
}

func TestWrite_StateVariableGlyph(t *testing.T) {
	out, err := newTestWriter(t).Write(testModel())
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, `id="s_MPK6_cyt_pa_state" class="state variable"`)
	assert.Contains(t, doc, `<state value="active"`)

	// Stateless species carry no state variable.
	assert.NotContains(t, doc, `id="s_ROS_cyt_met_state"`)
}

func TestWrite_Arcs(t *testing.T) {
	out, err := newTestWriter(t).Write(testModel())
	require.NoError(t, err)
	doc := string(out)

	// Modifier arcs run entity to process, production arcs process to
	// entity, with arc-table names lowered into SBGN classes.
	assert.Contains(t, doc, `class="catalysis" source="s_MPK6_cyt_pa" target="r_rx1"`)
	assert.Contains(t, doc, `class="production" source="r_rx1" target="s_ROS_cyt_met"`)
}

func TestWrite_RenderColours(t *testing.T) {
	out, err := newTestWriter(t).Write(testModel())
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, `value="#42A5F5"`)
	assert.Contains(t, doc, `value="#A5D6A7"`)
	assert.Contains(t, doc, `idList="s_MPK6_cyt_pa"`)
}

func TestWrite_SkipsExcluded(t *testing.T) {
	m := testModel()
	m.Entities[1].Excluded = true

	out, err := newTestWriter(t).Write(m)
	require.NoError(t, err)
	doc := string(out)

	assert.NotContains(t, doc, `id="s_ROS_cyt_met"`)
	assert.NotContains(t, doc, `id="r_rx1"`)
	// The untouched entity still renders.
	assert.Contains(t, doc, `id="s_MPK6_cyt_pa"`)
}

func TestWrite_RequiresAssignedCompartmentIDs(t *testing.T) {
	m := testModel()
	m.CompartmentIDs = nil

	_, err := newTestWriter(t).Write(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `compartment "cytoplasm"`)
}

func TestArcClass(t *testing.T) {
	assert.Equal(t, "consumption", arcClass("CONSUMPTION"))
	assert.Equal(t, "necessary stimulation", arcClass("NECESSARY_STIMULATION"))
}

func TestWrite_DeduplicatesArcs(t *testing.T) {
	m := testModel()
	// A second relation row of the same reaction with the same endpoints.
	dup := *m.Relations[0]
	m.Relations = append(m.Relations, &dup)

	out, err := newTestWriter(t).Write(m)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(string(out), `source="s_MPK6_cyt_pa" target="r_rx1"`))
}
