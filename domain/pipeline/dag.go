package pipeline

// Analysis summarizes a single pipeline submission.
type Analysis struct {
	NumNodes int
	NumEdges int
	IsDAG    bool
}

// Analyze reports the node and edge counts of p and whether the directed
// graph they induce is acyclic. An empty pipeline is vacuously acyclic.
func Analyze(p Pipeline) Analysis {
	return Analysis{
		NumNodes: len(p.Nodes),
		NumEdges: len(p.Edges),
		IsDAG:    isAcyclic(p.Nodes, p.Edges),
	}
}

// isAcyclic runs a depth-first search over every node in input order,
// tracking the set of nodes on the active traversal path. An edge back to a
// node still on that path is a back-edge, which means a cycle.
//
// Edges referencing IDs absent from the node list are tolerated: an unknown
// source simply has no adjacency entry to traverse, and an unknown target
// participates in visited/on-stack tracking like any other ID. Duplicate
// node IDs collapse onto one adjacency entry and never fault.
//
// Runs in O(V+E) time with O(V) auxiliary state.
func isAcyclic(nodes []Node, edges []Edge) bool {
	adjacency := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		adjacency[n.ID] = nil
	}
	for _, e := range edges {
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
	}

	visited := make(map[string]bool, len(nodes))
	onStack := make(map[string]bool, len(nodes))

	var hasCycle func(id string) bool
	hasCycle = func(id string) bool {
		visited[id] = true
		onStack[id] = true

		for _, next := range adjacency[id] {
			if !visited[next] {
				if hasCycle(next) {
					return true
				}
			} else if onStack[next] {
				return true
			}
		}

		delete(onStack, id)
		return false
	}

	for _, n := range nodes {
		if !visited[n.ID] && hasCycle(n.ID) {
			return false
		}
	}
	return true
}
