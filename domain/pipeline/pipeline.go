package pipeline

// Node is a single unit of a pipeline graph, identified by a unique ID.
// Type, Position and Data come straight from the pipeline editor and are
// carried as opaque payloads; the analysis never inspects them.
type Node struct {
	ID       string
	Type     string
	Position map[string]float64
	Data     map[string]interface{}
}

// Edge is a directed connection from a source node to a target node.
// Handle labels identify which port of a node the edge attaches to and
// are ignored by the analysis.
type Edge struct {
	ID           string
	Source       string
	Target       string
	SourceHandle string
	TargetHandle string
}

// Pipeline is a full graph as submitted in one request. It carries no
// identity of its own and lives only for the duration of that request.
type Pipeline struct {
	Nodes []Node
	Edges []Edge
}
