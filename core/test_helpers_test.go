// Package core_test contains test helpers for ghertil/core.

package core_test

import (
	"testing"

	"github.com/katalvlaran/ghertil/core"
	"github.com/stretchr/testify/require"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight2 = 2
	Weight4 = 4
	Weight5 = 5
)

// Common concurrency sizes.
const (
	NReaders = 50
	NCloners = 20
	NWriters = 100
)

// diamond is the four-node fixture from the engine's optimality check:
// 0—1 (1), 0—2 (4), 1—2 (2), 1—3 (5), 2—3 (1).
func diamond() map[core.NodeID]map[core.NodeID]int64 {
	return map[core.NodeID]map[core.NodeID]int64{
		0: {1: 1, 2: 4},
		1: {0: 1, 2: 2, 3: 5},
		2: {0: 4, 1: 2, 3: 1},
		3: {1: 5, 2: 1},
	}
}

// mustDiamond builds the diamond fixture or fails the test.
func mustDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(diamond())
	require.NoError(t, err)

	return g
}
