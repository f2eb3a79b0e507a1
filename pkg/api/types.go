// Package api defines the wire contracts for API requests and responses and
// decouples them from the internal domain model.
package api

import (
	"pipeline-backend/domain/pipeline"
)

// NodePayload is a node as sent by the pipeline editor. Everything besides
// the ID is forwarded untouched to the domain layer.
type NodePayload struct {
	ID       string                 `json:"id" validate:"required"`
	Type     string                 `json:"type"`
	Position map[string]float64     `json:"position"`
	Data     map[string]interface{} `json:"data"`
}

// EdgePayload is a directed connection between two node IDs. Handle labels
// are optional and pass-through.
type EdgePayload struct {
	ID           string `json:"id" validate:"required"`
	Source       string `json:"source" validate:"required"`
	Target       string `json:"target" validate:"required"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty"`
}

// ParsePipelineRequest is the expected body for POST /pipelines/parse.
// Both lists may be empty; element shapes are enforced via validate tags.
type ParsePipelineRequest struct {
	Nodes []NodePayload `json:"nodes" validate:"dive"`
	Edges []EdgePayload `json:"edges" validate:"dive"`
}

// ParsePipelineResponse mirrors the original service contract: counts plus
// the acyclicity verdict.
type ParsePipelineResponse struct {
	NumNodes int  `json:"num_nodes"`
	NumEdges int  `json:"num_edges"`
	IsDAG    bool `json:"is_dag"`
}

// ErrorResponse is the standardized error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToDomain converts the request DTO into the domain pipeline.
func (r ParsePipelineRequest) ToDomain() pipeline.Pipeline {
	p := pipeline.Pipeline{
		Nodes: make([]pipeline.Node, 0, len(r.Nodes)),
		Edges: make([]pipeline.Edge, 0, len(r.Edges)),
	}
	for _, n := range r.Nodes {
		p.Nodes = append(p.Nodes, pipeline.Node{
			ID:       n.ID,
			Type:     n.Type,
			Position: n.Position,
			Data:     n.Data,
		})
	}
	for _, e := range r.Edges {
		p.Edges = append(p.Edges, pipeline.Edge{
			ID:           e.ID,
			Source:       e.Source,
			Target:       e.Target,
			SourceHandle: e.SourceHandle,
			TargetHandle: e.TargetHandle,
		})
	}
	return p
}

// FromAnalysis converts a domain analysis into the response DTO.
func FromAnalysis(a pipeline.Analysis) ParsePipelineResponse {
	return ParsePipelineResponse{
		NumNodes: a.NumNodes,
		NumEdges: a.NumEdges,
		IsDAG:    a.IsDAG,
	}
}
