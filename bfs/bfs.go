// Package: ghertil/bfs
//
// bfs.go - breadth-first traversal by hop count.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ghertil/core"
)

type queueItem struct {
	id    core.NodeID
	depth int
}

// walker holds the state of one traversal.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS walks g from start in non-decreasing hop count. Neighbors are taken
// in ascending ID order, so Order is reproducible.
//
// Errors: ErrGraphNil, ErrStartNotFound, ErrOptionViolation, the wrapped
// OnVisit error, or ctx.Err() when ctx is done.
//
// Complexity: O(V + E log d) where d is the maximum degree (neighbor sort).
func BFS(ctx context.Context, g *core.Graph, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID, hasParent bool) {
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, nb := range neighbors {
		if w.res.Reached(nb.ID) || !w.opts.FilterNeighbor(item.id, nb.ID, nb.Cost) {
			continue
		}
		w.enqueue(nb.ID, next, item.id, true)
	}

	return nil
}
