// Package triangle counts directed triangles of a core.Graph in parallel.
//
// For every edge u→v the engine intersects In(u) with Out(v), excluding u and
// v themselves; every common vertex w closes the cycle u→v→w→u. Each cyclic
// triangle is therefore seen once from each of its three edges, so
// Result.Triangles is 3× the number of distinct triangles and
// Result.Distinct() divides by 3.
//
// Strategies:
//
//	Serial          one worker on the calling goroutine
//	VertexBalanced  partition.ByCount, equal vertex counts
//	EdgeBalanced    partition.ByWeight with out-degree weights
//	Dynamic         partition.Cursor, one vertex per claim
//
// All strategies return the same global count for the same graph.
//
// Example:
//
//	res, err := triangle.Count(g, triangle.Dynamic, runtime.NumCPU(),
//		triangle.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Distinct())
package triangle
