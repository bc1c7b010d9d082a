// Package: ghertil/dijkstra
//
// runner.go - the shared search loop behind FindPath and Dijkstra.
//
// The runner keeps only touched nodes in its tables: a node absent from
// dist has distance Infinity. Each call owns its runner, and the graph is
// only read through VisitNeighbors, so queries never share mutable state.

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/ghertil/core"
)

// runner holds the mutable state for a single execution.
type runner struct {
	ctx     context.Context
	g       *core.Graph
	options Options
	dist    map[core.NodeID]int64
	prev    map[core.NodeID]core.NodeID
	visited map[core.NodeID]bool
	pq      nodePQ
	seq     uint64
}

func newRunner(ctx context.Context, g *core.Graph, cfg Options, source core.NodeID) *runner {
	n := g.NodeCount()
	r := &runner{
		ctx:     ctx,
		g:       g,
		options: cfg,
		dist:    make(map[core.NodeID]int64, n),
		prev:    make(map[core.NodeID]core.NodeID, n),
		visited: make(map[core.NodeID]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.dist[source] = 0
	r.push(source, 0)

	return r
}

func (r *runner) distance(id core.NodeID) int64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return Infinity
}

func (r *runner) push(id core.NodeID, d int64) {
	heap.Push(&r.pq, nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process pops nodes in (distance, id) order until the heap is empty, the
// frontier passes MaxDistance, or target (when stop is true) is finalized.
// ctx is checked before every pop.
func (r *runner) process(target core.NodeID, stop bool) error {
	for r.pq.Len() > 0 {
		if err := r.ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: search aborted: %w", err)
		}

		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if stop && u == target {
			return nil
		}
		if err := r.relax(u, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u. Only strictly
// shorter distances are recorded, so the first finalized predecessor wins
// among equal-cost alternatives.
func (r *runner) relax(u core.NodeID, du int64) error {
	err := r.g.VisitNeighbors(u, func(v core.NodeID, w int64) bool {
		if w >= r.options.InfEdgeThreshold || r.visited[v] {
			return true
		}
		if w > Infinity-du {
			return true // would overflow; unreachable in practice
		}
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.distance(v) {
			return true
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	return nil
}

// reconstruct walks prev from target back to start. A chain that ends
// anywhere but start, or runs longer than limit hops, is reported as
// ErrInconsistentPredecessors.
func reconstruct(prev map[core.NodeID]core.NodeID, start, target core.NodeID, limit int) ([]core.NodeID, error) {
	path := []core.NodeID{target}
	for cur := target; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: node %d has no predecessor on the way to %d",
				ErrInconsistentPredecessors, cur, start)
		}
		if len(path) > limit {
			return nil, fmt.Errorf("%w: chain from %d exceeds %d hops",
				ErrInconsistentPredecessors, target, limit)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
