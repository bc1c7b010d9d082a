// Package core provides the undirected, weighted, in-memory Graph that the
// rest of ghertil builds on.
//
// The Graph G = (V,E) is a mapping from NodeID to a mapping from neighbor
// NodeID to a non-negative int64 cost:
//
//	adj[u][v] == adj[v][u] == cost(u—v)
//
// Invariants (enforced on every insertion, re-checkable with Validate):
//
//   - Symmetry: SetEdge(u, v, w) writes both directions; FromAdjacency
//     rejects asymmetric input with ErrAsymmetricEdge.
//   - Non-negative costs: ErrNegativeWeight otherwise.
//   - No self-loops unless WithLoops() is given. Loops never shorten a path.
//   - At most one edge per unordered pair; re-setting overwrites the cost.
//
// Lifecycle:
//
//	g := core.NewGraph()          // mutable while being built
//	_ = g.SetEdge(0, 1, 4)
//	g.Freeze()                    // read-only from now on (ErrFrozen)
//	h := g.Clone()                // unfrozen deep copy
//
// Graphs produced by the builder package are returned frozen and are meant
// to be replaced wholesale rather than edited.
//
// Concurrency:
//
// A single sync.RWMutex guards the adjacency. All queries take the read lock,
// so any number of goroutines can run searches against the same graph.
//
// Core Methods:
//
//	AddNode(id) error            // O(1)
//	HasNode(id) bool             // O(1)
//	Nodes() []NodeID             // O(V log V), sorted
//	SetEdge(u, v, w) error       // O(1)
//	Cost(u, v) (int64, bool)     // O(1)
//	Edges() []Edge               // O(E log E), each edge once
//	Neighbors(id) ([]Neighbor, error)
//	VisitNeighbors(id, fn) error // allocation-free adjacency scan
//	Adjacency() map[NodeID]map[NodeID]int64
//	Freeze(), Frozen(), Clone(), Validate(), Stats()
package core
