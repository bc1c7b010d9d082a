// Package: ghertil/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn     = identity          (index i → NodeID(i))
//   • rng      = nil               (pure/deterministic unless seeded)
//   • weightFn = ConstantWeightFn(DefaultEdgeWeight)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/ghertil/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn func(int) core.NodeID
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Cost generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     identityID,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// identityID maps index i to NodeID(i).
func identityID(i int) core.NodeID {
	return core.NodeID(i)
}
