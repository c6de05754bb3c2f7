// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	MethodEmpty             = "Empty"
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodPlatonicSolid     = "PlatonicSolid"
	MethodTournament        = "Tournament"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle.
// A cycle with fewer than 3 nodes cannot form a ring without loops or 2-cycles.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a path.
const MinPathNodes = 2

// MinStarNodes is one hub plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is a rim of at least 3 plus one hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A 1×1 grid has no edges but is valid.
const MinGridDim = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse p.
const MaxProbability = 1.0
