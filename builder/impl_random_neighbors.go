// Package: ghertil/builder
//
// impl_random_neighbors.go - implementation of RandomNeighbors(c) constructor,
// the generator model used by Generate.
//
// Model:
//   - Nodes 0..Nodes-1 are created first.
//   - The first Nodes-NonInitiators nodes are edge initiators. Each initiator
//     draws k uniformly in [MinEdges, MaxEdges] and samples k distinct
//     neighbors uniformly without replacement among all other nodes.
//   - Every sampled neighbor gets its own cost, uniform in
//     [MinCost, MaxCost] (default [1,10]), and the edge
//     is inserted symmetrically. If the pair was already linked by an earlier
//     initiator the newer cost replaces the older one.
//
// Contract:
//   - c must pass Config.Validate (else ErrInvalidConfiguration).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(I · (n + MaxEdges)) where I is the number of initiators.
//   - Space: O(n) for the reusable candidate buffer.
//
// Determinism:
//   - Initiators are processed in ascending order; per initiator the RNG is
//     consumed as: edge count, then (swap index, cost) per sampled neighbor.
//
// Connectivity is NOT guaranteed: a non-initiator nobody samples stays isolated.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ghertil/core"
)

// RandomNeighbors returns a Constructor implementing the random k-neighbor model.
func RandomNeighbors(c Config) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%s: %w", MethodRandomNeighbors, err)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomNeighbors, ErrNeedRandSource)
		}
		if err := addNodes(MethodRandomNeighbors, g, cfg, c.Nodes); err != nil {
			return err
		}

		rng := cfg.rng
		cost := UniformWeightFn(c.costRange())
		spread := c.MaxEdges - c.MinEdges + 1
		candidates := make([]int, 0, c.Nodes-1)

		for i := 0; i < c.Initiators(); i++ {
			k := c.MinEdges + rng.Intn(spread)

			// Every node except i, in ascending order.
			candidates = candidates[:0]
			for j := 0; j < c.Nodes; j++ {
				if j != i {
					candidates = append(candidates, j)
				}
			}

			// Partial Fisher–Yates: the first k slots become a uniform sample.
			for s := 0; s < k; s++ {
				r := s + rng.Intn(len(candidates)-s)
				candidates[s], candidates[r] = candidates[r], candidates[s]
				if err := setEdge(MethodRandomNeighbors, g, cfg, cost, cfg.idFn(i), cfg.idFn(candidates[s])); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
