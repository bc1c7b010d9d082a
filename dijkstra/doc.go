// Package dijkstra computes minimum-cost paths on core.Graph with
// non-negative integer edge costs.
//
// Overview:
//
//   - FindPath(ctx, g, start, target) answers one query and stops as soon
//     as target is finalized.
//   - Dijkstra(ctx, g, Source(s), ...) returns the distance of every node
//     from s, plus an optional predecessor map (see PathTo).
//   - Both rely on a binary heap (container/heap) with lazy decrease-key:
//     improved distances are pushed again and stale entries skipped on pop.
//
// Determinism:
//
//   - Heap entries are ordered by (distance, node ID, push order), and only
//     strictly shorter distances replace a predecessor. Among several
//     minimum-cost paths the result is therefore a fixed function of the
//     graph.
//
// Unreachable targets are not errors: FindPath returns Found=false and
// Cost=Infinity; Result.Err maps that to ErrNoPath.
//
// Options:
//
//   - WithMaxDistance(d): nodes farther than d count as unreachable.
//   - WithInfEdgeThreshold(t): edges with cost ≥ t are impassable.
//   - Source(id), WithReturnPath(): Dijkstra only.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holding up to E entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNodeNotFound (wraps core.ErrNodeNotFound), ErrNoSource.
//   - ErrInconsistentPredecessors: reconstruction found a broken chain.
//   - Context cancellation: the wrapped ctx.Err(); checked on every heap pop.
//   - ErrBadMaxDistance / ErrBadInfThreshold: panics from the option constructors.
//
// Thread safety:
//
//   - Every call allocates its own tables and heap and only reads g, so any
//     number of queries may run on one graph concurrently. Mutating g while
//     a query runs is safe for memory but the answer then reflects a mix of
//     states; freeze graphs that are shared.
package dijkstra
