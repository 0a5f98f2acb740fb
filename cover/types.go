// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, Result, sentinel errors and option validation.

package cover

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Sentinel errors for solver construction and verification.
var (
	// ErrGraphNil is returned when a nil graph is passed to the solver.
	ErrGraphNil = errors.New("cover: graph is nil")

	// ErrOptionViolation is returned when Options fail validation.
	ErrOptionViolation = errors.New("cover: invalid option supplied")

	// ErrUncoveredEdge reports an edge with no endpoint in a claimed cover.
	ErrUncoveredEdge = errors.New("cover: uncovered edge")

	// ErrSizeMismatch reports a claimed cover size that differs from the
	// number of member vertices.
	ErrSizeMismatch = errors.New("cover: claimed size differs from verified size")
)

// Default tuning values of the search engine.
const (
	// DefaultSampleSize is the number of pool draws per removal choice.
	DefaultSampleSize = 50

	// DefaultCheckInterval is the step period of the cutoff check.
	DefaultCheckInterval int64 = 10

	// elapsedResolution is the rounding applied to reported discovery times.
	elapsedResolution = 10 * time.Millisecond
)

// Options configures a Solver.
type Options struct {
	// Seed initialises the solver-owned random generator. Used verbatim,
	// 0 is a valid seed.
	Seed int64

	// Cutoff is the time budget measured by Clock. The loop stops at the
	// first check point where Elapsed() >= Cutoff; 0 stops at the first one.
	Cutoff time.Duration

	// SampleSize is the number of uniform draws (with replacement) from the
	// candidate pool when choosing the vertex to remove. Must be ≥ 1.
	SampleSize int

	// CheckInterval is the step period at which the clock is consulted for
	// the cutoff. Must be ≥ 1.
	CheckInterval int64

	// MaxSteps, if > 0, stops the search once the step counter exceeds it,
	// so at most MaxSteps repairing steps run.
	MaxSteps int64

	// TargetSize, if > 0, stops the search as soon as a cover of at most
	// this many vertices has been captured.
	TargetSize int

	// Clock measures elapsed time for the cutoff and for Best.Elapsed.
	// nil selects NewCPUClock().
	Clock Clock

	// Logger receives debug events (initial cover, improvements).
	// zerolog.Nop() discards them.
	Logger zerolog.Logger

	// OnImprove, if non-nil, is called with every captured best solution,
	// including the initial one. The Best passed in is owned by the callee.
	OnImprove func(Best)
}

// DefaultOptions returns Options with:
//   - Seed 0, Cutoff 0
//   - SampleSize DefaultSampleSize, CheckInterval DefaultCheckInterval
//   - no step limit, no target size
//   - process CPU clock, discarding logger, no hook.
func DefaultOptions() Options {
	return Options{
		Seed:          0,
		Cutoff:        0,
		SampleSize:    DefaultSampleSize,
		CheckInterval: DefaultCheckInterval,
		Clock:         NewCPUClock(),
		Logger:        zerolog.Nop(),
	}
}

// validate checks Options consistency.
// Complexity: O(1).
func (o Options) validate() error {
	if o.Cutoff < 0 {
		return fmt.Errorf("%w: Cutoff cannot be negative (%s)", ErrOptionViolation, o.Cutoff)
	}
	if o.SampleSize < 1 {
		return fmt.Errorf("%w: SampleSize must be ≥ 1 (%d)", ErrOptionViolation, o.SampleSize)
	}
	if o.CheckInterval < 1 {
		return fmt.Errorf("%w: CheckInterval must be ≥ 1 (%d)", ErrOptionViolation, o.CheckInterval)
	}
	if o.MaxSteps < 0 {
		return fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, o.MaxSteps)
	}
	if o.TargetSize < 0 {
		return fmt.Errorf("%w: TargetSize cannot be negative (%d)", ErrOptionViolation, o.TargetSize)
	}

	return nil
}

// StopReason tells why the search loop terminated.
type StopReason int

const (
	// StopCutoff means the time budget was exhausted.
	StopCutoff StopReason = iota

	// StopMaxSteps means the step limit was exceeded.
	StopMaxSteps

	// StopTargetReached means a cover of at most TargetSize was captured.
	StopTargetReached

	// StopIrreducible means the cover cannot shrink further: it is empty,
	// or it holds a single vertex while the graph has edges.
	StopIrreducible
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopCutoff:
		return "cutoff"
	case StopMaxSteps:
		return "max-steps"
	case StopTargetReached:
		return "target-reached"
	case StopIrreducible:
		return "irreducible"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Result is the outcome of one search run.
type Result struct {
	// Best is the smallest covering configuration captured.
	Best Best

	// Steps is the value of the step counter when the loop stopped.
	Steps int64

	// Elapsed is the clock reading when the loop stopped.
	Elapsed time.Duration

	// Reason tells which condition ended the loop.
	Reason StopReason
}
