// Package: ghertil/dijkstra
//
// types.go - sentinel errors, options and the Result of a single query.
//
// Options:
//
//	– Source:           starting node of the all-targets Dijkstra (required there).
//	– ReturnPath:       if true, Dijkstra also returns the predecessor map.
//	– MaxDistance:      cap on distances to explore; nodes beyond it are not expanded.
//	– InfEdgeThreshold: edges with cost >= this threshold are impassable.
//
// FindPath takes start/target as arguments and ignores Source/ReturnPath.

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ghertil/core"
)

// Infinity is the distance of an unreachable node.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that start, target or Source is not a node of
	// the graph. It wraps core.ErrNodeNotFound, so either sentinel matches.
	ErrNodeNotFound = fmt.Errorf("dijkstra: %w", core.ErrNodeNotFound)

	// ErrNoSource indicates that Dijkstra was called without the Source option.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNoPath is what Result.Err reports when target is unreachable.
	// FindPath itself never returns it.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrInconsistentPredecessors indicates a broken predecessor chain during
	// path reconstruction. It signals a bug, never a property of the input.
	ErrInconsistentPredecessors = errors.New("dijkstra: inconsistent predecessor chain")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Result is the outcome of one FindPath query.
//
// Found=false means target is unreachable: Path is nil and Cost is Infinity.
// Otherwise Path starts at start, ends at target, and Cost is the sum of the
// edge costs along it.
type Result struct {
	Path  []core.NodeID
	Cost  int64
	Found bool
}

// Err converts an unreachable result into ErrNoPath; it is nil otherwise.
func (r Result) Err() error {
	if !r.Found {
		return ErrNoPath
	}

	return nil
}

// Hops returns the number of edges on the path (0 when not found).
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Options configures the engine.
type Options struct {
	Source           core.NodeID // The ID of the source node (Dijkstra only)
	HasSource        bool        // Whether Source was set
	ReturnPath       bool        // Whether Dijkstra returns the predecessor map
	MaxDistance      int64       // Maximum distance to explore
	InfEdgeThreshold int64       // Cost at or above which edges are non-traversable
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// Source sets the starting node of Dijkstra.
func Source(id core.NodeID) Option {
	return func(o *Options) {
		o.Source = id
		o.HasSource = true
	}
}

// WithReturnPath enables the predecessor map in Dijkstra's result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Nodes whose shortest
// distance would exceed it are treated as unreachable.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes every edge with cost ≥ threshold impassable.
// Panics with ErrBadInfThreshold on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns options with no source, no predecessor map and no
// distance or cost limits.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
