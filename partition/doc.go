// Package partition assigns index ranges [0, n) to a fixed number of workers.
//
// Three policies are provided:
//
//   - ByCount:  static, near-equal range lengths; the first n%workers ranges
//     get one extra item.
//   - ByWeight: static, near-equal summed weights via a greedy prefix walk
//     (used with vertex out-degrees for edge-balanced triangle counting).
//     ByWeightFixed keeps one total/workers target for every worker and
//     always includes the item that crosses it.
//   - Cursor:   dynamic; workers claim one index at a time from a shared
//     atomic counter until it passes n.
//
// Static policies return []Range that Check accepts: contiguous, ordered,
// non-overlapping and covering [0, n). Workers beyond n get empty ranges
// rather than an error.
//
// Errors:
//
//	ErrInvalidWorkers - workers < 1.
//	ErrInvalidSize    - n < 0.
//	ErrNilWeight      - ByWeight or ByWeightFixed without a weight function.
//	ErrNotCovering    - Check found a gap, overlap or wrong end.
package partition
