// SPDX-License-Identifier: MIT
//
// File: verify.go
// Role: from-scratch check of a reported cover.

package cover

import (
	"fmt"

	"github.com/katalvlaran/fastvc/graph"
)

// VerifyError describes a discrepancy found by Verify. It wraps either
// ErrUncoveredEdge or ErrSizeMismatch.
type VerifyError struct {
	// Edge is the first uncovered edge id, or -1.
	Edge int

	// Claimed is the size recorded in the snapshot.
	Claimed int

	// Verified is the number of member vertices counted from scratch.
	Verified int

	err error
}

func (e *VerifyError) Error() string {
	if e.Edge >= 0 {
		return fmt.Sprintf("%v %d", e.err, e.Edge)
	}

	return fmt.Sprintf("%v: claimed=%d verified=%d", e.err, e.Claimed, e.Verified)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *VerifyError) Unwrap() error { return e.err }

// Verify recomputes coverage and cardinality of b against g without using
// any solver state. It returns nil when every edge has an endpoint in b and
// b.Size equals the number of members among vertices 1..n.
//
// A non-nil result signals a defect in the incremental bookkeeping; it
// never alters b.
//
// Complexity: O(n+m).
func Verify(g *graph.Graph, b Best) error {
	if g == nil {
		return ErrGraphNil
	}

	var (
		e    int
		edge graph.Edge
	)
	for e = 0; e < g.NumEdges(); e++ {
		edge = g.Edge(e)
		if !b.Contains(edge.U) && !b.Contains(edge.V) {
			return &VerifyError{Edge: e, Claimed: b.Size, Verified: -1, err: ErrUncoveredEdge}
		}
	}

	var (
		v     int
		count int
	)
	for v = 1; v <= g.NumVertices(); v++ {
		if b.Contains(v) {
			count++
		}
	}
	if count != b.Size {
		return &VerifyError{Edge: -1, Claimed: b.Size, Verified: count, err: ErrSizeMismatch}
	}

	return nil
}
