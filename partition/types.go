// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Range type, sentinel errors and the coverage check shared by all policies.

package partition

import (
	"errors"
	"fmt"
)

// Sentinel errors for partitioning.
var (
	// ErrInvalidWorkers is returned when the worker count is < 1.
	ErrInvalidWorkers = errors.New("partition: worker count must be positive")

	// ErrInvalidSize is returned when the item count is negative.
	ErrInvalidSize = errors.New("partition: item count must be non-negative")

	// ErrNilWeight is returned by ByWeight when the weight function is nil.
	ErrNilWeight = errors.New("partition: weight function is nil")

	// ErrNotCovering is returned by Check when ranges do not tile [0, n).
	ErrNotCovering = errors.New("partition: ranges do not cover [0, n) exactly once")
)

// Range is the half-open index interval [Start, End) assigned to one worker.
type Range struct {
	Start int
	End   int
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range holds no index.
func (r Range) Empty() bool { return r.End <= r.Start }

// String renders the range as "[start,end)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Check reports whether ranges are contiguous, ordered, non-overlapping and
// cover [0, n) exactly: ranges[0].Start == 0, ranges[i].End == ranges[i+1].Start,
// Start <= End everywhere and the last End == n.
// Complexity: O(len(ranges)).
func Check(ranges []Range, n int) error {
	if len(ranges) == 0 {
		return fmt.Errorf("no ranges for n=%d: %w", n, ErrNotCovering)
	}
	next := 0
	for i, r := range ranges {
		if r.Start != next || r.End < r.Start {
			return fmt.Errorf("range %d %v, expected start %d: %w", i, r, next, ErrNotCovering)
		}
		next = r.End
	}
	if next != n {
		return fmt.Errorf("ranges end at %d, n=%d: %w", next, n, ErrNotCovering)
	}
	return nil
}

func validate(n, workers int) error {
	if workers < 1 {
		return fmt.Errorf("workers=%d: %w", workers, ErrInvalidWorkers)
	}
	if n < 0 {
		return fmt.Errorf("n=%d: %w", n, ErrInvalidSize)
	}
	return nil
}
