// Package bfs provides breadth-first traversal over a core.Graph by hop
// count, ignoring edge costs.
//
// What
//
//   - BFS(ctx, g, start) returns a BFSResult with the visit Order, the hop
//     Depth of every reached node and the BFS-tree Parent links.
//   - Components(ctx, g) splits a graph into its connected components.
//   - Hooks and limits: WithOnVisit, WithMaxDepth, WithFilterNeighbor and
//     WithMaxEdgeCost (the hop-count twin of dijkstra.WithInfEdgeThreshold).
//
// Why
//
//   - Generated graphs may be disconnected: reachability answers "is there
//     any path" without running the weighted engine.
//   - A fewest-hops path is a cheap upper bound check for weighted paths.
//
// Determinism
//
//	Neighbors are expanded in ascending node ID, so Order is reproducible.
//
// Complexity: O(V + E log d) time, O(V) space.
package bfs
