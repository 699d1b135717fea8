package driver

import (
	"context"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/skm-tools/pss-export/internal/core/model"
)

// inventedReasonAllowlist names the invented-provenance reasons that still
// count as publishable.
var inventedReasonAllowlist = []string{"invented:harmonise-location"}

// Neo4jSource fetches pathway nodes and edges from a Neo4j (or Memgraph)
// instance holding the knowledge graph. Pathways and Reactions scope the
// fetch; Reactions wins when both are set.
type Neo4jSource struct {
	Driver    neo4j.DriverWithContext
	Access    Access
	Ignore    []string
	Pathways  []string
	Reactions []string
}

func NewNeo4jSource(uri, username, password string, access Access, ignore []string) (*Neo4jSource, error) {
	drv, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := drv.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to graph database")
	return &Neo4jSource{Driver: drv, Access: access, Ignore: ignore}, nil
}

func (s *Neo4jSource) Close(ctx context.Context) error {
	return s.Driver.Close(ctx)
}

func (s *Neo4jSource) FetchNodes(ctx context.Context) ([]model.NodeRecord, error) {
	query, params := s.nodesQuery()

	result, err := neo4j.ExecuteQuery(ctx, s.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nodes: %w", err)
	}

	nodes := make([]model.NodeRecord, 0, len(result.Records))
	for _, rec := range result.Records {
		row := rec.AsMap()
		nodes = append(nodes, model.NodeRecord{
			Key:         stringValue(row, "key"),
			Label:       stringValue(row, "label"),
			Form:        stringValue(row, "form"),
			Compartment: stringValue(row, "compartment"),
			Pathways:    stringList(row, "pathways"),
		})
	}
	return nodes, nil
}

func (s *Neo4jSource) FetchEdges(ctx context.Context) ([]model.EdgeRecord, error) {
	query, params := s.edgesQuery()

	result, err := neo4j.ExecuteQuery(ctx, s.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch edges: %w", err)
	}

	edges := make([]model.EdgeRecord, 0, len(result.Records))
	for _, rec := range result.Records {
		row := rec.AsMap()
		edges = append(edges, model.EdgeRecord{
			ReactionKey:       stringValue(row, "reaction_key"),
			ReactionType:      stringValue(row, "reaction_type"),
			SourceKey:         stringValue(row, "source_key"),
			SourceForm:        stringValue(row, "source_form"),
			SourceCompartment: stringValue(row, "source_compartment"),
			SourceRole:        stringValue(row, "source_role"),
			TargetKey:         stringValue(row, "target_key"),
			TargetForm:        stringValue(row, "target_form"),
			TargetCompartment: stringValue(row, "target_compartment"),
			TargetRole:        stringValue(row, "target_role"),
			Mechanism:         stringValue(row, "mechanism"),
			Effect:            stringValue(row, "effect"),
			Evidence:          stringValue(row, "evidence"),
			ExternalLinks:     stringList(row, "external_links"),
		})
	}
	return edges, nil
}

// nodesQuery assembles the node-fetch cypher, scoped to the configured
// reactions or pathways.
func (s *Neo4jSource) nodesQuery() (string, map[string]interface{}) {
	params := map[string]interface{}{
		"nodes_to_ignore": s.ignoreList(),
	}
	filter := ""
	switch {
	case len(s.Reactions) > 0:
		filter = NodeReactionFilter
		params["reaction_ids"] = s.Reactions
	case len(s.Pathways) > 0:
		filter = NodePathwayFilter
		params["pathways"] = s.Pathways
	}
	return fmt.Sprintf(FetchNodesQuery, filter), params
}

// edgesQuery assembles the edge-fetch cypher for the configured scope and
// access level. Anything but AccessAll gets the public provenance filter.
func (s *Neo4jSource) edgesQuery() (string, map[string]interface{}) {
	params := map[string]interface{}{
		"nodes_to_ignore": s.ignoreList(),
	}
	filter := ""
	switch {
	case len(s.Reactions) > 0:
		filter = EdgeReactionFilter
		params["reaction_ids"] = s.Reactions
	case len(s.Pathways) > 0:
		filter = EdgePathwayFilter
		params["pathways"] = s.Pathways
	}
	if s.Access != AccessAll {
		filter += PublicAccessFilter
		params["invented_reason_allowlist"] = inventedReasonAllowlist
	}
	return fmt.Sprintf(FetchEdgesQuery, filter), params
}

// ignoreList never returns nil so the cypher parameter is always a list.
func (s *Neo4jSource) ignoreList() []string {
	if s.Ignore == nil {
		return []string{}
	}
	return s.Ignore
}

func stringValue(row map[string]interface{}, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

func stringList(row map[string]interface{}, key string) []string {
	raw, ok := row[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
