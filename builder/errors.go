// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`; sentinels carry no parameters.
//
// Priority when several validations fail:
//   1. ErrTooFewVertices       size/domain checks (n, rows, cols, degree).
//   2. ErrInvalidProbability   probability ranges.
//   3. ErrNeedRandSource       RNG presence for stochastic builders.
//   4. ErrConstructFailed      only after all retries are exhausted.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is outside the allowed domain for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempts
// (stub-matching retries for RandomRegular) or received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a parameter outside an enumerated domain,
// such as an unknown PlatonicName.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrBadSpec indicates a generator spec string ParseSpec cannot read.
var ErrBadSpec = errors.New("builder: bad generator spec")
