// SPDX-License-Identifier: MIT
//
// File: intersect.go
// Role: Sorted-list intersection used once per directed edge.

package triangle

import "github.com/katalvlaran/tricount/core"

// CountCommon returns |a ∩ b \ {u, v}| for two ascending, duplicate-free
// slices. It returns 0 when u == v.
//
// Called with a = In(u), b = Out(v) for an edge u→v, every w it counts closes
// the directed cycle u→v→w→u.
//
// Complexity: O(len(a) + len(b)). Pure; safe for concurrent use.
func CountCommon(a, b []core.VertexID, u, v core.VertexID) int64 {
	if u == v {
		return 0
	}
	var (
		i, j  int
		count int64
	)
	for i < len(a) && j < len(b) {
		switch x, y := a[i], b[j]; {
		case x < y:
			i++
		case x > y:
			j++
		default:
			if x != u && x != v {
				count++
			}
			i++
			j++
		}
	}
	return count
}
