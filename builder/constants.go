// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomNeighbors is the canonical name for the RandomNeighbors constructor.
	MethodRandomNeighbors = "RandomNeighbors"
	// MethodGenerate is the canonical name for Generate.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinCompleteNodes is the smallest size accepted by Complete (K_1 has no edges).
const MinCompleteNodes = 1

// MinRandomSparseNodes is the smallest size accepted by RandomSparse.
const MinRandomSparseNodes = 1

// MinGeneratorNodes is the smallest node count for the generator: with one
// node there is no distinct neighbor to sample.
const MinGeneratorNodes = 2

//-----------------------------------------------------------------------------
// Default Costs and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the cost assigned to each edge when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// DefaultMinCost and DefaultMaxCost bound the generator's cost range.
const (
	DefaultMinCost int64 = 1
	DefaultMaxCost int64 = 10
)

// MinProbability and MaxProbability bound p in RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
