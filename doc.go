// Package ghertil computes minimum-cost paths between nodes of weighted
// undirected graphs and synthesizes random graphs to exercise that
// computation.
//
// Packages
//
//   - core:     undirected weighted graph with symmetric costs, freezing and validation.
//   - builder:  seeded graph constructors; Generate(Config) is the random generator.
//   - dijkstra: FindPath (single pair, early exit) and Dijkstra (all targets).
//   - bfs:      hop-count traversal and connected components.
//   - config:   YAML configuration with defaults and validation.
//   - store:    pebble-backed persistence of generated graphs as snapshots.
//   - session:  copy-on-replace holder of the current graph with cached, metered queries.
//   - cmd/ghertil: command-line front end.
//
// Quick start
//
//	g, err := builder.Generate(builder.DefaultConfig(), builder.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := dijkstra.FindPath(ctx, g, 0, 9)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("no path")
//	}
//	fmt.Println(res.Path, res.Cost)
//
// Graphs are frozen once generated, so any number of goroutines may query
// one graph. Replacing the graph is done by building a new one and
// swapping it in (see session).
package ghertil
