package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
)

func testRegistry(t *testing.T) *mapping.Registry {
	t.Helper()
	reg, err := mapping.NewRegistry(mapping.DefaultConfig())
	require.NoError(t, err)
	return reg
}

func TestBuilder_BuildsEntitiesAndRelations(t *testing.T) {
	source := &MockSource{
		Nodes: []model.NodeRecord{
			{Key: "RBOHD", Label: "RBOHD", Form: "protein", Compartment: "plasma membrane"},
			{Key: "ROS", Label: "ROS", Form: "metabolite", Compartment: "apoplast"},
		},
		Edges: []model.EdgeRecord{
			{
				ReactionKey:  "rx1",
				ReactionType: "catalysis",
				SourceKey:    "RBOHD", SourceForm: "protein_active", SourceCompartment: "plasma membrane", SourceRole: "MODIFIER",
				TargetKey: "ROS", TargetForm: "metabolite", TargetCompartment: "apoplast", TargetRole: "PRODUCT",
			},
		},
	}

	b := NewBuilder(source, testRegistry(t), DanglingAbort)
	m, dangling, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dangling)
	assert.NotEmpty(t, m.RunID)
	assert.False(t, m.Exported.IsZero())

	// The two node rows plus the edge-specific active occurrence of RBOHD.
	require.Len(t, m.Entities, 3)
	assert.Equal(t, "s_RBOHD_pm_p", m.Entities[0].ID)
	assert.Equal(t, "s_ROS_apo_met", m.Entities[1].ID)
	assert.Equal(t, "s_RBOHD_pm_pa", m.Entities[2].ID)

	require.Len(t, m.Relations, 1)
	rel := m.Relations[0]
	assert.Equal(t, "r_rx1", rel.ID)
	assert.Equal(t, 172, rel.SBOTerm)
	assert.Equal(t, "CATALYSIS", rel.SourceArc)
	assert.Equal(t, "PRODUCTION", rel.TargetArc)
	assert.Same(t, m.Entities[2], rel.Source)
	assert.Same(t, m.Entities[1], rel.Target)
}

func TestBuilder_DeduplicatesOccurrences(t *testing.T) {
	source := &MockSource{
		Nodes: []model.NodeRecord{
			{Key: "MPK6", Label: "MPK6", Form: "protein", Compartment: "cytoplasm"},
		},
		Edges: []model.EdgeRecord{
			{
				ReactionKey:  "rx1",
				ReactionType: "protein activation",
				SourceKey:    "MPK6", SourceForm: "protein", SourceCompartment: "cytoplasm", SourceRole: "SUBSTRATE",
				TargetKey: "MPK6", TargetForm: "protein_active", TargetCompartment: "cytoplasm", TargetRole: "PRODUCT",
			},
			{
				ReactionKey:  "rx2",
				ReactionType: "degradation/secretion",
				SourceKey:    "MPK6", SourceForm: "protein_active", SourceCompartment: "cytoplasm", SourceRole: "SUBSTRATE",
				TargetKey: "MPK6", TargetForm: "protein_active", TargetCompartment: "cytoplasm", TargetRole: "PRODUCT",
			},
		},
	}

	b := NewBuilder(source, testRegistry(t), DanglingAbort)
	m, _, err := b.Build(context.Background())
	require.NoError(t, err)

	// One inactive and one active occurrence, shared across both edges.
	require.Len(t, m.Entities, 2)
	assert.Equal(t, "s_MPK6_cyt_p", m.Entities[0].ID)
	assert.Equal(t, "s_MPK6_cyt_pa", m.Entities[1].ID)
	assert.Same(t, m.Relations[0].Target, m.Relations[1].Source)
}

func TestBuilder_DanglingAbort(t *testing.T) {
	source := &MockSource{
		Nodes: []model.NodeRecord{
			{Key: "A", Label: "A", Form: "protein", Compartment: "cytoplasm"},
		},
		Edges: []model.EdgeRecord{
			{
				ReactionKey:  "rx1",
				ReactionType: "catalysis",
				SourceKey:    "A", SourceForm: "protein", SourceCompartment: "cytoplasm", SourceRole: "SUBSTRATE",
				TargetKey: "GHOST", TargetForm: "protein", TargetCompartment: "cytoplasm", TargetRole: "PRODUCT",
			},
		},
	}

	b := NewBuilder(source, testRegistry(t), DanglingAbort)
	_, _, err := b.Build(context.Background())
	require.Error(t, err)

	var dangling *DanglingReferenceError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, "rx1", dangling.ReactionKey)
	assert.Equal(t, "GHOST", dangling.NodeKey)
}

func TestBuilder_DanglingSkip(t *testing.T) {
	source := &MockSource{
		Nodes: []model.NodeRecord{
			{Key: "A", Label: "A", Form: "protein", Compartment: "cytoplasm"},
		},
		Edges: []model.EdgeRecord{
			{
				ReactionKey:  "rx1",
				ReactionType: "catalysis",
				SourceKey:    "A", SourceForm: "protein", SourceCompartment: "cytoplasm", SourceRole: "SUBSTRATE",
				TargetKey: "GHOST", TargetForm: "protein", TargetCompartment: "cytoplasm", TargetRole: "PRODUCT",
			},
		},
	}

	b := NewBuilder(source, testRegistry(t), DanglingSkip)
	m, dangling, err := b.Build(context.Background())
	require.NoError(t, err)

	require.Len(t, dangling, 1)
	assert.Equal(t, "GHOST", dangling[0].NodeKey)
	assert.Empty(t, m.Relations)
}

func TestBuilder_NormalizesCompartments(t *testing.T) {
	source := &MockSource{
		Nodes: []model.NodeRecord{
			{Key: "A", Label: "A", Form: "protein", Compartment: "putative:nucleus"},
			{Key: "B", Label: "B", Form: "protein", Compartment: "unknown"},
			{Key: "C", Label: "C", Form: "protein", Compartment: ""},
		},
	}

	b := NewBuilder(source, testRegistry(t), DanglingAbort)
	m, _, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "nucleus", m.Entities[0].Compartment)
	assert.Equal(t, "cytoplasm", m.Entities[1].Compartment)
	assert.Equal(t, "cytoplasm", m.Entities[2].Compartment)
}

func TestBuilder_AssignsSharedCompartmentIDs(t *testing.T) {
	source := &MockSource{
		Nodes: []model.NodeRecord{
			{Key: "A", Label: "A", Form: "metabolite", Compartment: "plastoglobule"},
			{Key: "B", Label: "B", Form: "metabolite", Compartment: "oleosome"},
		},
	}

	b := NewBuilder(source, testRegistry(t), DanglingAbort)
	m, _, err := b.Build(context.Background())
	require.NoError(t, err)

	// Unmapped compartments all legalize onto the cytoplasm short code. One
	// assignment per run keeps the suffixes identical across every format,
	// and the cytoplasm itself always owns the unsuffixed identifier.
	assert.Equal(t, "c_cyt", m.CompartmentIDs["cytoplasm"])
	assert.Equal(t, "c_cyt_2", m.CompartmentIDs["plastoglobule"])
	assert.Equal(t, "c_cyt_3", m.CompartmentIDs["oleosome"])
}

func TestBuilder_DropsGeneSubstratesByDefault(t *testing.T) {
	source := &MockSource{
		Nodes: []model.NodeRecord{
			{Key: "HSFA2", Label: "HSFA2", Form: "protein", Compartment: "nucleus"},
			{Key: "HSP70", Label: "HSP70", Form: "gene", Compartment: "nucleus"},
		},
		Edges: []model.EdgeRecord{
			{
				ReactionKey:  "rx1",
				ReactionType: "transcriptional/translational activation",
				SourceKey:    "HSP70", SourceForm: "gene", SourceCompartment: "nucleus", SourceRole: "SUBSTRATE",
				TargetKey: "HSP70", TargetForm: "mRNA", TargetCompartment: "nucleus", TargetRole: "PRODUCT",
			},
			{
				ReactionKey:  "rx1",
				ReactionType: "transcriptional/translational activation",
				SourceKey:    "HSFA2", SourceForm: "protein_active", SourceCompartment: "nucleus", SourceRole: "ACTIVATES",
				TargetKey: "HSP70", TargetForm: "mRNA", TargetCompartment: "nucleus", TargetRole: "PRODUCT",
			},
		},
	}

	b := NewBuilder(source, testRegistry(t), DanglingAbort)
	m, _, err := b.Build(context.Background())
	require.NoError(t, err)

	// Only the regulator row survives; the gene substrate participation of
	// the transcription reaction is dropped.
	require.Len(t, m.Relations, 1)
	assert.Equal(t, model.RoleActivates, m.Relations[0].SourceRole)

	b = NewBuilder(source, testRegistry(t), DanglingAbort)
	b.IncludeGenes = true
	m, _, err = b.Build(context.Background())
	require.NoError(t, err)
	assert.Len(t, m.Relations, 2)
}

func TestBuilder_IdenticalFetchYieldsIdenticalIDs(t *testing.T) {
	source := &MockSource{
		Nodes: []model.NodeRecord{
			{Key: "Ca2+", Label: "Ca2+", Form: "metabolite", Compartment: "cytoplasm"},
			{Key: "Ca2-", Label: "Ca2-", Form: "metabolite", Compartment: "cytoplasm"},
			{Key: "MPK6", Label: "MPK6", Form: "protein", Compartment: "cytoplasm"},
		},
		Edges: []model.EdgeRecord{
			{
				ReactionKey:  "rx1",
				ReactionType: "catalysis",
				SourceKey:    "MPK6", SourceForm: "protein", SourceCompartment: "cytoplasm", SourceRole: "MODIFIER",
				TargetKey: "Ca2+", TargetForm: "metabolite", TargetCompartment: "cytoplasm", TargetRole: "PRODUCT",
			},
		},
	}

	ids := func() []string {
		b := NewBuilder(source, testRegistry(t), DanglingAbort)
		m, _, err := b.Build(context.Background())
		require.NoError(t, err)
		var out []string
		for _, e := range m.Entities {
			out = append(out, e.ID)
		}
		for _, rel := range m.Relations {
			out = append(out, rel.ID)
		}
		return out
	}

	// Same fetch order, same identifiers, including collision suffixes.
	first := ids()
	assert.Contains(t, first, "s_Ca2_cyt_met")
	assert.Contains(t, first, "s_Ca2_cyt_met_2")
	assert.Equal(t, first, ids())
}

func TestBuilder_SourceErrorPropagates(t *testing.T) {
	wantErr := errors.New("bolt connection refused")
	source := &MockSource{NodesErr: wantErr}

	b := NewBuilder(source, testRegistry(t), DanglingAbort)
	_, _, err := b.Build(context.Background())
	assert.ErrorIs(t, err, wantErr)
}
