// Package: ghertil/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)—i for i=1..n-1 in stable increasing order.
//   - Cost per edge: cfg.weightFn(cfg.rng).
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import "github.com/katalvlaran/ghertil/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		if err := addNodes(MethodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := setEdge(MethodPath, g, cfg, cfg.weightFn, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
