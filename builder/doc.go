// Package builder synthesizes graphs for the shortest-path engine.
//
// Generate(Config, opts...) is the generator proper: it validates the
// configuration, samples a random weighted undirected graph under the
// RandomNeighbors model and returns it frozen. Randomness always comes from
// an injected *rand.Rand (WithSeed / WithRand); there is no package-level
// random state, so the same seed and Config reproduce the same graph.
//
// The package also keeps the composable constructor style used for
// fixtures:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithCostRange(1, 10)},
//	    builder.RandomSparse(200, 0.02),
//	)
//
//   - Constructors: RandomNeighbors, RandomSparse, Path, Complete.
//   - Options: WithSeed, WithRand, WithWeightFn, WithCostRange,
//     WithConstantWeight, WithIDOffset.
//   - Cost functions: DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//   - Extend applies constructors to an existing graph, e.g. to place a
//     second component at WithIDOffset(100).
//
// Errors are sentinels checked with errors.Is: ErrInvalidConfiguration,
// ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed. Option constructors panic on meaningless arguments;
// constructors never panic.
package builder
