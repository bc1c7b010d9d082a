// File: methods_edges.go
// Role: Edge lifecycle & queries: SetEdge/Cost/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() reports each undirected edge once (From <= To), sorted by (From, To).
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// SetEdge stores the undirected edge u—v with cost w, adding missing
// endpoints. If the edge already exists its cost is overwritten for both
// directions, so symmetry holds after every call.
//
// Errors:
//   - ErrFrozen if the graph is frozen.
//   - ErrNegativeWeight if w < 0.
//   - ErrLoopNotAllowed if u == v and WithLoops was not given.
//
// Complexity: O(1) amortized.
func (g *Graph) SetEdge(u, v NodeID, w int64) error {
	if w < 0 {
		return fmt.Errorf("SetEdge(%d,%d,w=%d): %w", u, v, w, ErrNegativeWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("SetEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	from := g.ensureNode(u)
	to := g.ensureNode(v)
	if _, exists := from[v]; !exists {
		g.edgeCount++
	}
	from[v] = w
	to[u] = w

	return nil
}

// Cost returns the cost of edge u—v and whether it exists.
// Complexity: O(1).
func (g *Graph) Cost(u, v NodeID) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[u][v]

	return w, ok
}

// HasEdge reports whether u—v exists. Symmetric by construction.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v NodeID) bool {
	_, ok := g.Cost(u, v)

	return ok
}

// Edges returns every undirected edge exactly once with From <= To,
// sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			if u <= v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
