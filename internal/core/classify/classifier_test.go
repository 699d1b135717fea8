package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	reg, err := mapping.NewRegistry(mapping.DefaultConfig())
	require.NoError(t, err)
	return NewClassifier(reg)
}

func TestClassifyEntity_ActiveProtein(t *testing.T) {
	c := newTestClassifier(t)

	e := &model.Entity{Key: "MPK6", Label: "MPK6", Form: model.FormProteinActive, Compartment: "nucleus"}
	require.NoError(t, c.Entity(e))

	assert.Equal(t, 252, e.SBOTerm)
	assert.Equal(t, 290, e.CompartmentSBO)
	assert.Equal(t, "macromolecule", e.DiagramClass)
	assert.Equal(t, "#42A5F5", e.Colour)
	assert.Equal(t, model.StateActive, e.State)
}

func TestClassifyEntity_StatelessMetabolite(t *testing.T) {
	c := newTestClassifier(t)

	e := &model.Entity{Key: "ABA", Label: "abscisic acid", Form: model.FormMetabolite, Compartment: "cytoplasm"}
	require.NoError(t, c.Entity(e))

	assert.Equal(t, 247, e.SBOTerm)
	assert.Equal(t, "simple chemical", e.DiagramClass)
	assert.Equal(t, model.StateNone, e.State)
}

func TestClassifyEntity_UnknownFormFallsToDefaults(t *testing.T) {
	c := newTestClassifier(t)

	e := &model.Entity{Key: "X", Label: "X", Form: model.FormUnknown, Compartment: "cytoplasm"}
	require.NoError(t, c.Entity(e))

	assert.Equal(t, 285, e.SBOTerm)
	assert.Equal(t, "unspecified entity", e.DiagramClass)
	assert.Equal(t, "#FFFFFF", e.Colour)
	assert.Equal(t, model.StateNone, e.State)
}

func TestClassifyRelation_Dissociation(t *testing.T) {
	c := newTestClassifier(t)

	rel := &model.Relation{
		ReactionKey: "rx1",
		Type:        model.ReactionDissociation,
		SourceRole:  model.RoleSubstrate,
		TargetRole:  model.RoleProduct,
	}
	require.NoError(t, c.Relation(rel))

	assert.Equal(t, 180, rel.SBOTerm)
	assert.Equal(t, "dissociation", rel.ProcessClass)
	assert.Equal(t, "CONSUMPTION", rel.SourceArc)
	assert.Equal(t, "PRODUCTION", rel.TargetArc)
}

func TestClassifyRelation_DissociationModifier(t *testing.T) {
	c := newTestClassifier(t)

	rel := &model.Relation{
		ReactionKey: "rx1",
		Type:        model.ReactionDissociation,
		SourceRole:  model.RoleModifier,
		TargetRole:  model.RoleProduct,
	}
	require.NoError(t, c.Relation(rel))

	assert.Equal(t, "CATALYSIS", rel.SourceArc)
}

func TestClassifyRelation_UnknownTypeUsesFallbacks(t *testing.T) {
	c := newTestClassifier(t)

	rel := &model.Relation{
		ReactionKey: "rx2",
		Type:        model.ReactionType("osmotic shock"),
		SourceRole:  model.RoleActivates,
		TargetRole:  model.RoleProduct,
	}
	require.NoError(t, c.Relation(rel))

	assert.Equal(t, 176, rel.SBOTerm)
	assert.Equal(t, "process", rel.ProcessClass)
	assert.Equal(t, "STIMULATION", rel.SourceArc)
	assert.Equal(t, "PRODUCTION", rel.TargetArc)
}
