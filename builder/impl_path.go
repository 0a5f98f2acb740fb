// SPDX-License-Identifier: MIT
// Package: fastvc/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Edge order: (first,first+1), (first+1,first+2), ... and, for Cycle, the
// closing edge (last,first) at the end.

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		first := d.grow(n)
		for i := 0; i < n-1; i++ {
			d.link(first+i, first+i+1)
		}

		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		first := d.grow(n)
		for i := 0; i < n-1; i++ {
			d.link(first+i, first+i+1)
		}
		d.link(first+n-1, first)

		return nil
	}
}
