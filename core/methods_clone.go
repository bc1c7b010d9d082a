// File: methods_clone.go
// Role: Freezing, cloning, and validating graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "fmt"

// Freeze makes the graph read-only. Further AddNode/SetEdge calls return
// ErrFrozen. Freezing is idempotent and cannot be undone; use Clone to get
// a mutable copy.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Clone returns a deep, unfrozen copy carrying the same loop policy.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		edgeCount:  g.edgeCount,
		adj:        make(map[NodeID]map[NodeID]int64, len(g.adj)),
	}
	for u, nbrs := range g.adj {
		cp := make(map[NodeID]int64, len(nbrs))
		for v, w := range nbrs {
			cp[v] = w
		}
		clone.adj[u] = cp
	}

	return clone
}

// Validate re-checks the model invariants over the whole graph:
// every cost is non-negative, every edge has an equal mirror, and loops
// only appear when the graph allows them.
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			if w < 0 {
				return fmt.Errorf("Validate: edge %d—%d w=%d: %w", u, v, w, ErrNegativeWeight)
			}
			if u == v {
				if !g.allowLoops {
					return fmt.Errorf("Validate: loop on %d: %w", u, ErrLoopNotAllowed)
				}
				continue
			}
			back, ok := g.adj[v][u]
			if !ok || back != w {
				return fmt.Errorf("Validate: cost(%d,%d)=%d but cost(%d,%d)=%d (present=%t): %w",
					u, v, w, v, u, back, ok, ErrAsymmetricEdge)
			}
		}
	}

	return nil
}
