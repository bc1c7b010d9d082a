// Package builder provides internal helper functions used by Constructor
// implementations.
package builder

import (
	"fmt"

	"github.com/katalvlaran/ghertil/core"
)

// addNodes inserts nodes cfg.idFn(0..n-1) into g in ascending index order.
// Complexity: O(n) time, O(1) extra space.
func addNodes(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// setEdge draws one cost from weightFn and inserts u—v.
func setEdge(method string, g *core.Graph, cfg builderConfig, weightFn WeightFn, u, v core.NodeID) error {
	w := weightFn(cfg.rng)
	if err := g.SetEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: SetEdge(%d—%d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
