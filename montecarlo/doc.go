// Package montecarlo estimates pi by sampling points in the square
// [-1, 1]² and counting those inside the unit circle, split across workers
// the same way the triangle engine splits vertices (partition.ByCount).
//
// Every worker owns a *rand.Rand seeded with seed + worker index, so a given
// (points, workers, seed) triple always yields the same estimate.
package montecarlo
