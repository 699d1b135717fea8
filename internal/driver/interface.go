package driver

import (
	"context"

	"github.com/skm-tools/pss-export/internal/core/model"
)

// Access controls which reactions the fetch collaborator exposes. Public
// access drops reactions whose only provenance is "other:" or "invented:"
// links, unless the invented reason is allowlisted.
type Access string

const (
	AccessPublic Access = "public"
	AccessAll    Access = "all"
)

// GraphSource is the graph-fetch collaborator: it exposes the raw node and
// edge records of the pathway graph, with access-level and ignore-list
// filtering already applied.
type GraphSource interface {
	FetchNodes(ctx context.Context) ([]model.NodeRecord, error)
	FetchEdges(ctx context.Context) ([]model.EdgeRecord, error)
	Close(ctx context.Context) error
}
