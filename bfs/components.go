package bfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/ghertil/core"
)

// Components partitions the nodes of g into connected components. Each
// component is sorted ascending, and components are ordered by their
// smallest node. Generated graphs are not guaranteed to be connected, so
// this is how callers tell "no path" apart in advance.
func Components(ctx context.Context, g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[core.NodeID]bool, g.NodeCount())
	var out [][]core.NodeID
	for _, s := range g.Nodes() {
		if seen[s] {
			continue
		}
		res, err := BFS(ctx, g, s)
		if err != nil {
			return nil, err
		}
		comp := make([]core.NodeID, 0, len(res.Order))
		for _, id := range res.Order {
			seen[id] = true
			comp = append(comp, id)
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		out = append(out, comp)
	}

	return out, nil
}
