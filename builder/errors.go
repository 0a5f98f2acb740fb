// SPDX-License-Identifier: MIT
// Package: fastvc/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach the constructor
// name and parameters with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, k) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a graph the builder
// could not assemble.
var ErrConstructFailed = errors.New("builder: construction failed")
