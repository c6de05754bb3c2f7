// SPDX-License-Identifier: MIT
//
// File: static.go
// Role: Precomputed partitions (ByCount, ByWeight).
// Determinism:
//   - Pure functions of their inputs; no allocation beyond the result slice.

package partition

// ByCount splits [0, n) into workers contiguous ranges of near-equal length.
//
// base = n / workers, rem = n % workers; the first rem ranges hold base+1
// items, the rest hold base. With workers > n the trailing ranges are empty.
//
// Errors: ErrInvalidWorkers, ErrInvalidSize.
// Complexity: O(workers).
func ByCount(n, workers int) ([]Range, error) {
	if err := validate(n, workers); err != nil {
		return nil, err
	}

	base, rem := n/workers, n%workers
	ranges := make([]Range, workers)
	start := 0
	for w := range ranges {
		size := base
		if w < rem {
			size++
		}
		ranges[w] = Range{Start: start, End: start + size}
		start += size
	}
	return ranges, nil
}

// ByWeight splits [0, n) into workers contiguous ranges whose summed weights
// are approximately equal, using a greedy prefix walk. Items are indivisible:
// one heavy item is never split across workers.
//
// For every worker but the last:
//   - target = remaining weight / remaining workers (total/workers for worker 0);
//   - take at least one item while items remain;
//   - keep taking items while the accumulated weight stays below target;
//   - the item that would cross the target is taken only if the overshoot is
//     no larger than the shortfall left by stopping before it.
//
// The last worker absorbs every remaining item.
//
// weight(i) must be non-negative; it is called once per item.
//
// Errors: ErrInvalidWorkers, ErrInvalidSize, ErrNilWeight.
// Complexity: O(n + workers).
func ByWeight(n, workers int, weight func(i int) int64) ([]Range, error) {
	if err := validate(n, workers); err != nil {
		return nil, err
	}
	w, remaining, err := loadWeights(n, weight)
	if err != nil {
		return nil, err
	}

	ranges := make([]Range, workers)
	cursor := 0
	for k := 0; k < workers-1; k++ {
		target := remaining / int64(workers-k)
		start := cursor
		var acc int64
		for cursor < n {
			next := acc + w[cursor]
			if cursor > start && next > target && !closer(acc, next, target) {
				break
			}
			acc = next
			cursor++
			if acc >= target {
				break
			}
		}
		ranges[k] = Range{Start: start, End: cursor}
		remaining -= acc
	}
	ranges[workers-1] = Range{Start: cursor, End: n}

	return ranges, nil
}

// ByWeightFixed is the fixed-target variant of ByWeight: every non-last
// worker aims at total/workers (floor), takes at least one item while items
// remain, and stops right after the item that brings its sum to the target.
// The crossing item is always included. The last worker absorbs the rest.
//
// With weights {1, 1, 4} and two workers this yields [0,3) [3,3), where
// ByWeight yields [0,2) [2,3).
//
// Errors: ErrInvalidWorkers, ErrInvalidSize, ErrNilWeight.
// Complexity: O(n + workers).
func ByWeightFixed(n, workers int, weight func(i int) int64) ([]Range, error) {
	if err := validate(n, workers); err != nil {
		return nil, err
	}
	w, total, err := loadWeights(n, weight)
	if err != nil {
		return nil, err
	}

	target := total / int64(workers)
	ranges := make([]Range, workers)
	cursor := 0
	for k := 0; k < workers-1; k++ {
		start := cursor
		var acc int64
		for cursor < n && (cursor == start || acc < target) {
			acc += w[cursor]
			cursor++
		}
		ranges[k] = Range{Start: start, End: cursor}
	}
	ranges[workers-1] = Range{Start: cursor, End: n}

	return ranges, nil
}

// loadWeights evaluates weight once per item and returns the values and their sum.
func loadWeights(n int, weight func(i int) int64) ([]int64, int64, error) {
	if weight == nil {
		return nil, 0, ErrNilWeight
	}
	w := make([]int64, n)
	var total int64
	for i := range w {
		w[i] = weight(i)
		total += w[i]
	}
	return w, total, nil
}

// closer reports whether taking the item that moves the sum from acc to next
// leaves it at least as close to target as stopping at acc.
func closer(acc, next, target int64) bool {
	return acc < target && next-target <= target-acc
}
