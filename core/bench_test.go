package core_test

import (
	"testing"

	"github.com/katalvlaran/ghertil/core"
)

func BenchmarkSetEdge(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(1024))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.SetEdge(core.NodeID(i%1024), core.NodeID((i+1)%1024), int64(i%10+1))
	}
}

func BenchmarkVisitNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 1; i < 256; i++ {
		_ = g.SetEdge(0, core.NodeID(i), 1)
	}
	g.Freeze()
	var sum int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.VisitNeighbors(0, func(_ core.NodeID, c int64) bool {
			sum += c
			return true
		})
	}
	_ = sum
}
