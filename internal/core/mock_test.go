package core

import (
	"context"

	"github.com/skm-tools/pss-export/internal/core/model"
)

// MockSource serves canned node and edge records in place of a live graph.
type MockSource struct {
	Nodes []model.NodeRecord
	Edges []model.EdgeRecord

	NodesErr error
	EdgesErr error

	FetchNodesCalls int
	FetchEdgesCalls int
}

func (m *MockSource) FetchNodes(ctx context.Context) ([]model.NodeRecord, error) {
	m.FetchNodesCalls++
	if m.NodesErr != nil {
		return nil, m.NodesErr
	}
	return m.Nodes, nil
}

func (m *MockSource) FetchEdges(ctx context.Context) ([]model.EdgeRecord, error) {
	m.FetchEdgesCalls++
	if m.EdgesErr != nil {
		return nil, m.EdgesErr
	}
	return m.Edges, nil
}

func (m *MockSource) Close(ctx context.Context) error {
	return nil
}
