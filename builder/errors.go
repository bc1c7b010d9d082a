// Package: ghertil/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrInvalidConfiguration indicates generator parameters that cannot produce
// a valid graph (edge count above the available distinct neighbors,
// MinEdges > MaxEdges, bad cost range, ...). Not retried automatically.
var ErrInvalidConfiguration = errors.New("builder: invalid configuration")

// ErrTooFewVertices indicates that a size parameter is below the minimum for
// the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not mutate the target graph
// (nil graph, nil constructor, core rejection such as a frozen graph).
var ErrConstructFailed = errors.New("builder: construction failed")
