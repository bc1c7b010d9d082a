// Package: ghertil/bfs
//
// types.go - options, sentinel errors and the BFSResult of a traversal.

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ghertil/core"
)

var (
	// ErrStartNotFound indicates that the start node is not in the graph.
	ErrStartNotFound = fmt.Errorf("bfs: start %w", core.ErrNodeNotFound)

	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a node the traversal never reached.
	ErrUnreachable = errors.New("bfs: node not reached")
)

// Option configures BFS.
type Option func(*BFSOptions)

// BFSOptions holds the hooks and limits of one traversal.
type BFSOptions struct {
	// OnVisit runs when a node is dequeued; a non-nil error aborts the walk.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth limits hops from the start; 0 means unlimited.
	MaxDepth int

	// FilterNeighbor decides whether the edge curr—nbr may be followed.
	FilterNeighbor func(curr, nbr core.NodeID, cost int64) bool

	err error
}

// DefaultOptions returns no-op hooks and no depth limit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:        func(core.NodeID, int) error { return nil },
		FilterNeighbor: func(_, _ core.NodeID, _ int64) bool { return true },
	}
}

// WithOnVisit installs a visit hook. Nil is ignored.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal to d hops. Negative d is reported as
// ErrOptionViolation by BFS.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor restricts which edges are followed. Nil is ignored.
func WithFilterNeighbor(fn func(curr, nbr core.NodeID, cost int64) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithMaxEdgeCost follows only edges costing less than limit, mirroring
// dijkstra.WithInfEdgeThreshold.
func WithMaxEdgeCost(limit int64) Option {
	return WithFilterNeighbor(func(_, _ core.NodeID, cost int64) bool { return cost < limit })
}

// BFSResult is the traversal outcome.
type BFSResult struct {
	Order  []core.NodeID               // visit sequence
	Depth  map[core.NodeID]int         // hops from the start
	Parent map[core.NodeID]core.NodeID // BFS-tree predecessor; the start has none
}

// Reached reports whether id was discovered.
func (r *BFSResult) Reached(id core.NodeID) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo returns a fewest-hops path from the start to dest.
func (r *BFSResult) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}
	path := []core.NodeID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
