package dijkstra

import "github.com/katalvlaran/ghertil/core"

// nodeItem is a tentative (node, distance) pair. seq records push order.
type nodeItem struct {
	id   core.NodeID
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id, seq). Under the
// lazy decrease-key strategy outdated entries stay in the heap and are
// skipped when popped (visited check).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.id != b.id {
		return a.id < b.id
	}

	return a.seq < b.seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
