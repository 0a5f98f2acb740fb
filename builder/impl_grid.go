// SPDX-License-Identifier: MIT
// Package: fastvc/builder
//
// impl_grid.go - Grid(rows, cols), the 4-neighbourhood lattice.
//
// Cell (r,c) gets id first + r*cols + c (row-major). For each cell the
// right edge is emitted before the bottom edge.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols orthogonal grid.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		var (
			first = d.grow(rows * cols)
			r, c  int
			u     int
		)
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = first + r*cols + c
				if c+1 < cols {
					d.link(u, u+1)
				}
				if r+1 < rows {
					d.link(u, u+cols)
				}
			}
		}

		return nil
	}
}
