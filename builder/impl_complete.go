// SPDX-License-Identifier: MIT
// Package: fastvc/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).

package builder

import "fmt"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionNodes       = 1
)

// Complete returns a Constructor for K_n (n ≥ 1).
// Edges: (i,j) for i<j, i ascending then j ascending.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		var (
			first = d.grow(n)
			i, j  int
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				d.link(first+i, first+j)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2} (n1, n2 ≥ 1). The
// left part takes the first n1 ids of the block.
// Edges: (left, right), left ascending then right ascending.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
		}
		var (
			left  = d.grow(n1 + n2)
			right = left + n1
			i, j  int
		)
		for i = 0; i < n1; i++ {
			for j = 0; j < n2; j++ {
				d.link(left+i, right+j)
			}
		}

		return nil
	}
}
