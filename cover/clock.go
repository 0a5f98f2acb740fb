// SPDX-License-Identifier: MIT
//
// File: clock.go
// Role: elapsed-time sources for the cutoff check and discovery times.

package cover

import "time"

// Clock measures time elapsed since Start.
//
// The solver calls Start once before building the initial cover and then
// Elapsed at every check point and at every best-solution capture.
// Implementations need not be safe for concurrent use.
type Clock interface {
	Start()
	Elapsed() time.Duration
}

// WallClock measures wall time with the monotonic clock.
type WallClock struct {
	start time.Time
}

// NewWallClock returns a WallClock started at the current instant.
func NewWallClock() *WallClock { return &WallClock{start: time.Now()} }

// Start resets the origin to now.
func (c *WallClock) Start() { c.start = time.Now() }

// Elapsed returns the wall time since Start.
func (c *WallClock) Elapsed() time.Duration { return time.Since(c.start) }

// CPUClock measures user+system CPU time consumed by the process. On
// platforms without getrusage it degrades to wall time (see clock_other.go).
type CPUClock struct {
	start time.Duration
}

// NewCPUClock returns a CPUClock started at the current process time.
func NewCPUClock() *CPUClock {
	c := &CPUClock{}
	c.Start()

	return c
}

// Start resets the origin to the current process time.
func (c *CPUClock) Start() { c.start = processTime() }

// Elapsed returns the process time consumed since Start.
func (c *CPUClock) Elapsed() time.Duration { return processTime() - c.start }

// roundElapsed rounds d to the reporting resolution.
func roundElapsed(d time.Duration) time.Duration { return d.Round(elapsedResolution) }
