// Package core defines the undirected weighted Graph model shared by the
// generator (builder) and the shortest-path engine (dijkstra).
//
// This file declares NodeID, Edge, Neighbor, Graph, GraphOption, the sentinel
// errors and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound    - requested node does not exist.
//	ErrNegativeWeight  - negative edge cost (out of contract for Dijkstra).
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
//	ErrFrozen          - mutation attempted on a frozen (read-only) graph.
//	ErrAsymmetricEdge  - cost(u,v) and cost(v,u) disagree or one is missing.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates a negative edge cost was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrFrozen indicates a mutation on a graph that has been frozen.
	ErrFrozen = errors.New("core: graph is frozen")

	// ErrAsymmetricEdge indicates the symmetry invariant is broken.
	ErrAsymmetricEdge = errors.New("core: asymmetric edge")
)

// NodeID identifies a node. Generated graphs number their nodes 0..n-1,
// but the model only relies on NodeID being comparable.
type NodeID int

// Edge is one undirected edge as reported by Graph.Edges.
// From is always the smaller endpoint (From <= To).
type Edge struct {
	From   NodeID `json:"from" yaml:"from"`
	To     NodeID `json:"to" yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// Neighbor is one adjacency entry: the node on the other side and the cost
// to traverse to it.
type Neighbor struct {
	ID   NodeID
	Cost int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
// Search never benefits from a loop, but the model does not forbid them.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the adjacency map for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adj = make(map[NodeID]map[NodeID]int64, n)
		}
	}
}

// Graph is the in-memory undirected weighted graph.
//
// adj[u][v] holds the cost of edge u—v; every edge is stored under both
// endpoints. mu guards adj, edgeCount and frozen. A frozen graph rejects all
// mutations, so any number of goroutines may read it without coordination.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool // allow self-loops
	frozen     bool // read-only after Freeze

	edgeCount int                          // undirected edges (a loop counts once)
	adj       map[NodeID]map[NodeID]int64 // node → neighbor → cost
}

// NewGraph creates an empty Graph. By default loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.adj == nil {
		g.adj = make(map[NodeID]map[NodeID]int64)
	}

	return g
}
