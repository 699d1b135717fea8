package driver

const (
	// Species/process nodes. Reaction and Family nodes are structural and
	// never become model entities.
	FetchNodesQuery = `
		MATCH (n)
		WHERE NOT ('Reaction' IN labels(n) OR 'Family' IN labels(n))
			AND NOT n.name IN $nodes_to_ignore
			%s
		RETURN n.name AS key,
			n.name AS label,
			coalesce(n.form, 'unknown') AS form,
			coalesce(n.location, 'unknown') AS compartment,
			n.all_pathways AS pathways
	`

	// Each reaction is flattened into (input)->(output) pairs; the edge
	// types double as the participant roles and the forms/locations ride
	// on the edges because a node takes part in a reaction in one
	// specific form and place.
	FetchEdgesQuery = `
		MATCH (s)-[a]->(r:Reaction)-[b]->(t)
		WHERE NOT s.name IN $nodes_to_ignore
			AND NOT t.name IN $nodes_to_ignore
			%s
		RETURN r.reaction_id AS reaction_key,
			coalesce(r.reaction_type, 'unknown') AS reaction_type,
			s.name AS source_key,
			coalesce(a.source_form, 'unknown') AS source_form,
			coalesce(a.source_location, 'unknown') AS source_compartment,
			type(a) AS source_role,
			t.name AS target_key,
			coalesce(b.target_form, 'unknown') AS target_form,
			coalesce(b.target_location, 'unknown') AS target_compartment,
			type(b) AS target_role,
			r.reaction_mechanism AS mechanism,
			r.reaction_effect AS effect,
			r.evidence_sentence AS evidence,
			r.external_links AS external_links
	`

	// Pathway-scoped exports keep a node when any of its pathway
	// annotations is in the requested set. The edge fetch applies the test
	// to both endpoints.
	NodePathwayFilter = `
		AND size([p IN coalesce(n.all_pathways, []) WHERE p IN $pathways | 1]) > 0
	`
	EdgePathwayFilter = `
		AND size([p IN coalesce(s.all_pathways, []) WHERE p IN $pathways | 1]) > 0
		AND size([p IN coalesce(t.all_pathways, []) WHERE p IN $pathways | 1]) > 0
	`

	// Reaction-scoped exports restrict the edge fetch to the requested
	// reactions; the node fetch keeps nodes touching at least one of them.
	NodeReactionFilter = `
		AND size([(n)--(r:Reaction) WHERE r.reaction_id IN $reaction_ids | 1]) > 0
	`
	EdgeReactionFilter = `
		AND r.reaction_id IN $reaction_ids
	`

	// Reactions whose every provenance link is "other:" or "invented:"
	// are internal curation artifacts; they stay hidden from public
	// exports unless the invented reason is allowlisted.
	PublicAccessFilter = `
		AND (
			size([link IN r.external_links WHERE link =~ 'other:.*' | 1]) < size(r.external_links)
			OR size([link IN r.external_links WHERE link =~ 'invented:.*' | 1]) < size(r.external_links)
			OR size([link IN r.external_links WHERE link IN $invented_reason_allowlist | 1]) > 0
		)
	`
)
