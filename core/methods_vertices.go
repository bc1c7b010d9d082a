// File: methods_vertices.go
// Role: Node lifecycle & queries: AddNode/HasNode/Nodes/NodeCount/Degree.
// Determinism:
//   - Nodes() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts id if absent. Re-adding an existing node is a no-op.
//
// Errors:
//   - ErrFrozen if the graph has been frozen.
//
// Complexity: O(1).
func (g *Graph) AddNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	g.ensureNode(id)

	return nil
}

// HasNode reports whether id is a member of the node set.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	out := make([]NodeID, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NodeCount returns |V|.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Degree returns the number of distinct neighbors of id (a self-loop counts once).
//
// Errors:
//   - ErrNodeNotFound if id is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(nbrs), nil
}

// ensureNode allocates the adjacency bucket for id. Caller holds mu.
func (g *Graph) ensureNode(id NodeID) map[NodeID]int64 {
	nbrs, ok := g.adj[id]
	if !ok {
		nbrs = make(map[NodeID]int64)
		g.adj[id] = nbrs
	}

	return nbrs
}
