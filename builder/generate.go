// Package: ghertil/builder
//
// generate.go - the generator contract: Config, its validation, and Generate.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ghertil/core"
)

// Config is the generator contract.
//
// NonInitiators counts the trailing node indices that never initiate edges
// (they can still be chosen as neighbors). The reference application used 5.
//
// MinCost/MaxCost bound the uniform integer cost of each edge; leaving both
// at zero selects [DefaultMinCost, DefaultMaxCost].
type Config struct {
	Nodes         int   `yaml:"nodes" json:"nodes"`
	MinEdges      int   `yaml:"min_edges" json:"min_edges"`
	MaxEdges      int   `yaml:"max_edges" json:"max_edges"`
	NonInitiators int   `yaml:"non_initiators" json:"non_initiators"`
	MinCost       int64 `yaml:"min_cost" json:"min_cost"`
	MaxCost       int64 `yaml:"max_cost" json:"max_cost"`
}

// DefaultConfig mirrors the reference application: ten nodes, two to four
// initiated edges per node, the last five nodes passive, costs 1..10.
func DefaultConfig() Config {
	return Config{
		Nodes:         10,
		MinEdges:      2,
		MaxEdges:      4,
		NonInitiators: 5,
		MinCost:       DefaultMinCost,
		MaxCost:       DefaultMaxCost,
	}
}

// Validate checks that c can produce a graph. Every failure wraps
// ErrInvalidConfiguration.
func (c Config) Validate() error {
	switch {
	case c.Nodes < MinGeneratorNodes:
		return fmt.Errorf("nodes=%d < %d: %w", c.Nodes, MinGeneratorNodes, ErrInvalidConfiguration)
	case c.MinEdges < 1:
		return fmt.Errorf("min_edges=%d < 1: %w", c.MinEdges, ErrInvalidConfiguration)
	case c.MinEdges > c.MaxEdges:
		return fmt.Errorf("min_edges=%d > max_edges=%d: %w", c.MinEdges, c.MaxEdges, ErrInvalidConfiguration)
	case c.MaxEdges > c.Nodes-1:
		return fmt.Errorf("max_edges=%d exceeds the %d distinct neighbors of %d nodes: %w",
			c.MaxEdges, c.Nodes-1, c.Nodes, ErrInvalidConfiguration)
	case c.NonInitiators < 0 || c.NonInitiators > c.Nodes:
		return fmt.Errorf("non_initiators=%d not in [0,%d]: %w", c.NonInitiators, c.Nodes, ErrInvalidConfiguration)
	}
	if lo, hi := c.costRange(); lo < 0 || lo > hi {
		return fmt.Errorf("cost range [%d,%d] invalid: %w", lo, hi, ErrInvalidConfiguration)
	}

	return nil
}

// Initiators returns how many nodes (0..Initiators()-1) initiate edges.
func (c Config) Initiators() int {
	return c.Nodes - c.NonInitiators
}

// costRange resolves the zero value to the default range.
func (c Config) costRange() (int64, int64) {
	if c.MinCost == 0 && c.MaxCost == 0 {
		return DefaultMinCost, DefaultMaxCost
	}

	return c.MinCost, c.MaxCost
}

// Generate produces a fresh, frozen random graph for c.
//
// An RNG must be supplied through WithSeed or WithRand; two calls with the
// same seed and Config return identical graphs.
//
// Errors:
//   - ErrInvalidConfiguration if c.Validate fails (no sampling is attempted).
//   - ErrNeedRandSource without an RNG.
func Generate(c Config, opts ...BuilderOption) (*core.Graph, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	g, err := BuildGraph([]core.GraphOption{core.WithCapacity(c.Nodes)}, opts, RandomNeighbors(c))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}
	g.Freeze()

	return g, nil
}
