// Package: ghertil/dijkstra
//
// find_path.go - single-pair shortest path query.

package dijkstra

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ghertil/core"
)

// FindPath returns a minimum-cost path from start to target in g.
//
// The search stops as soon as target is popped from the heap. Equal-cost
// frontiers expand in ascending node ID, so the same graph always yields
// the same path.
//
// Unreachable target: Result{Found: false, Cost: Infinity} and a nil error.
// Use Result.Err to turn that case into ErrNoPath.
//
// Errors:
//   - ErrNilGraph for a nil graph.
//   - ErrNodeNotFound (also matching core.ErrNodeNotFound) if start or target is missing.
//   - ctx.Err(), wrapped, if ctx is done before the search finishes.
//   - ErrInconsistentPredecessors if path reconstruction fails.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func FindPath(ctx context.Context, g *core.Graph, start, target core.NodeID, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	for _, id := range [...]core.NodeID{start, target} {
		if !g.HasNode(id) {
			return Result{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
		}
	}
	if start == target {
		return Result{Path: []core.NodeID{start}, Cost: 0, Found: true}, nil
	}

	r := newRunner(ctx, g, resolve(opts), start)
	if err := r.process(target, true); err != nil {
		return Result{}, err
	}
	if !r.visited[target] {
		return Result{Cost: Infinity}, nil
	}

	path, err := reconstruct(r.prev, start, target, len(r.visited))
	if err != nil {
		return Result{}, err
	}

	return Result{Path: path, Cost: r.dist[target], Found: true}, nil
}
