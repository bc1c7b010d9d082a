// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Adjacency) and the read-only visitor
//       used by search.
// Determinism:
//   - Neighbors() sorts by neighbor ID asc.
// Concurrency:
//   - Read operations hold the mu read lock.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the adjacency of id sorted by neighbor ID.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
//
// Complexity: O(d log d) where d = Degree(id).
func (g *Graph) Neighbors(id NodeID) ([]Neighbor, error) {
	g.mu.RLock()
	nbrs, ok := g.adj[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]Neighbor, 0, len(nbrs))
	for v, w := range nbrs {
		out = append(out, Neighbor{ID: v, Cost: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// VisitNeighbors calls fn for every neighbor of id in map order, without
// allocating. fn must not call back into mutating methods of g. Iteration
// stops early when fn returns false.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
//
// Complexity: O(d).
func (g *Graph) VisitNeighbors(id NodeID, fn func(v NodeID, cost int64) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return fmt.Errorf("VisitNeighbors(%d): %w", id, ErrNodeNotFound)
	}
	for v, w := range nbrs {
		if !fn(v, w) {
			return nil
		}
	}

	return nil
}

// Adjacency returns a deep copy of the graph in mapping form:
// node → neighbor → cost. Isolated nodes map to an empty (non-nil) map.
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[NodeID]map[NodeID]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[NodeID]map[NodeID]int64, len(g.adj))
	for u, nbrs := range g.adj {
		cp := make(map[NodeID]int64, len(nbrs))
		for v, w := range nbrs {
			cp[v] = w
		}
		out[u] = cp
	}

	return out
}
