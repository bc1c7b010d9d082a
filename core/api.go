//
// File: api.go
// Role: Thin public facade: alternate constructor and read-only summaries.
// Policy:
//   - No algorithms here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

import "fmt"

// GraphStats is a read-only snapshot of catalog sizes and policy flags.
type GraphStats struct {
	NodeCount     int   `json:"node_count" yaml:"node_count"`
	EdgeCount     int   `json:"edge_count" yaml:"edge_count"`
	IsolatedNodes int   `json:"isolated_nodes" yaml:"isolated_nodes"` // nodes with no neighbors
	MaxDegree     int   `json:"max_degree" yaml:"max_degree"`         // largest neighbor count
	TotalWeight   int64 `json:"total_weight" yaml:"total_weight"`     // sum of all undirected edge costs
	AllowsLoops   bool  `json:"allows_loops" yaml:"allows_loops"`
	Frozen        bool  `json:"frozen" yaml:"frozen"`
}

// FromAdjacency builds a Graph from the mapping form
// node → neighbor → cost, the shape external suppliers usually hand over.
// Every key (and every neighbor) becomes a node. The input must already be
// symmetric; an asymmetric or negative entry is rejected instead of being
// silently repaired.
//
// Errors:
//   - ErrAsymmetricEdge if cost(u,v) and cost(v,u) disagree or one is absent.
//   - ErrNegativeWeight for negative costs.
//   - ErrLoopNotAllowed for a self-loop without WithLoops.
//
// Complexity: O(V + E).
func FromAdjacency(adj map[NodeID]map[NodeID]int64, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(append([]GraphOption{WithCapacity(len(adj))}, opts...)...)

	for u, nbrs := range adj {
		if err := g.AddNode(u); err != nil {
			return nil, err
		}
		for v, w := range nbrs {
			if u != v {
				back, ok := adj[v][u]
				if !ok || back != w {
					return nil, fmt.Errorf("FromAdjacency: cost(%d,%d)=%d but cost(%d,%d)=%d (present=%t): %w",
						u, v, w, v, u, back, ok, ErrAsymmetricEdge)
				}
			}
			if err := g.SetEdge(u, v, w); err != nil {
				return nil, fmt.Errorf("FromAdjacency: %w", err)
			}
		}
	}

	return g, nil
}

// Stats produces a read-only summary of the graph.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		NodeCount:   len(g.adj),
		EdgeCount:   g.edgeCount,
		AllowsLoops: g.allowLoops,
		Frozen:      g.frozen,
	}
	for u, nbrs := range g.adj {
		if len(nbrs) == 0 {
			s.IsolatedNodes++
		}
		if len(nbrs) > s.MaxDegree {
			s.MaxDegree = len(nbrs)
		}
		for v, w := range nbrs {
			if u <= v {
				s.TotalWeight += w
			}
		}
	}

	return s
}
