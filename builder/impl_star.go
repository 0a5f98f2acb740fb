// SPDX-License-Identifier: MIT
// Package: fastvc/builder
//
// impl_star.go - Star(n) and Wheel(n). The centre is the first vertex of
// the block.

package builder

import "fmt"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor for the star K_{1,n-1} (n ≥ 2).
// Edges: (centre, leaf) for leaves in ascending order.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		centre := d.grow(n)
		for i := 1; i < n; i++ {
			d.link(centre, centre+i)
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: a rim cycle of n-1 vertices plus a
// centre joined to all of them (n ≥ 4).
// Edges: rim cycle first, then spokes.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		var (
			centre = d.grow(n)
			rim    = n - 1
			i      int
		)
		for i = 1; i < rim; i++ {
			d.link(centre+i, centre+i+1)
		}
		d.link(centre+rim, centre+1)
		for i = 1; i <= rim; i++ {
			d.link(centre, centre+i)
		}

		return nil
	}
}
