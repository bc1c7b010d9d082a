// Package: ghertil/dijkstra
//
// dijkstra.go - single-source, all-targets variant.

package dijkstra

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ghertil/core"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Returns:
//
//   - dist: one entry per node of g; Infinity if unreachable (or beyond MaxDistance).
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means a shortest path to v ends with u—v. The source and
//     unreachable nodes have no entry.
//
// Preconditions (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrNodeNotFound).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(ctx context.Context, g *core.Graph, opts ...Option) (map[core.NodeID]int64, map[core.NodeID]core.NodeID, error) {
	cfg := resolve(opts)
	if !cfg.HasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrNodeNotFound, cfg.Source)
	}

	r := newRunner(ctx, g, cfg, cfg.Source)
	if err := r.process(0, false); err != nil {
		return nil, nil, err
	}

	// Entries pushed but never finalized lie beyond MaxDistance.
	dist := make(map[core.NodeID]int64, g.NodeCount())
	for _, v := range g.Nodes() {
		if r.visited[v] {
			dist[v] = r.dist[v]
		} else {
			dist[v] = Infinity
		}
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}

	prev := make(map[core.NodeID]core.NodeID, len(r.visited))
	for v := range r.visited {
		if p, ok := r.prev[v]; ok {
			prev[v] = p
		}
	}

	return dist, prev, nil
}

// PathTo rebuilds the path to target from a predecessor map returned by
// Dijkstra with WithReturnPath. It returns ErrNoPath when target was not
// reached and ErrInconsistentPredecessors on a broken chain.
func PathTo(prev map[core.NodeID]core.NodeID, source, target core.NodeID) ([]core.NodeID, error) {
	if source == target {
		return []core.NodeID{source}, nil
	}
	if _, ok := prev[target]; !ok {
		return nil, ErrNoPath
	}

	return reconstruct(prev, source, target, len(prev))
}
