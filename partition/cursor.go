// SPDX-License-Identifier: MIT
//
// File: cursor.go
// Role: Dynamic partitioning through one shared, monotonically increasing counter.
// Concurrency:
//   - Claim is a single atomic fetch-and-add; it is the only synchronized step.
//   - Callers do their per-item work outside of Claim.

package partition

import "sync/atomic"

// Cursor hands out every index of [0, n) exactly once to any number of
// concurrent claimers. Its value only grows; once it passes n every Claim
// reports false.
//
// A Cursor belongs to one run: create it, share it with the run's workers,
// drop it when they have joined.
type Cursor struct {
	next atomic.Uint64
	n    uint64
}

// NewCursor returns a cursor over [0, n). Negative n is treated as 0.
func NewCursor(n int) *Cursor {
	return &Cursor{n: uint64(max(n, 0))}
}

// Claim returns the next unclaimed index. ok is false when the range is
// exhausted; the caller must then stop claiming.
// Complexity: O(1), one atomic add.
func (c *Cursor) Claim() (i int, ok bool) {
	v := c.next.Add(1) - 1
	if v >= c.n {
		return 0, false
	}
	return int(v), true
}

// Claimed reports how many indices have been handed out so far, capped at n.
func (c *Cursor) Claimed() int {
	return int(min(c.next.Load(), c.n))
}

// Len returns n.
func (c *Cursor) Len() int { return int(c.n) }
