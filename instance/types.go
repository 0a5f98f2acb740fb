// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: input formats and sentinel errors.

package instance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fastvc/graph"
)

// Sentinel errors for instance reading.
var (
	// ErrOpen wraps failures to open or decompress an instance file.
	ErrOpen = errors.New("instance: cannot open instance file")

	// ErrBadHeader indicates a missing or malformed DIMACS "p" line.
	ErrBadHeader = errors.New("instance: missing or malformed problem line")

	// ErrBadEdge indicates an edge line or token that is not a valid vertex id.
	ErrBadEdge = errors.New("instance: malformed edge")

	// ErrBadVertex indicates a negative vertex id in an edge list.
	ErrBadVertex = errors.New("instance: negative vertex id")

	// ErrTruncated indicates fewer DIMACS edge lines than announced.
	ErrTruncated = errors.New("instance: fewer edges than announced")

	// ErrDanglingToken indicates an edge list with an odd number of ids.
	ErrDanglingToken = errors.New("instance: odd number of vertex ids")

	// ErrSelfLoop is graph.ErrSelfLoop, so errors.Is matches either name.
	ErrSelfLoop = graph.ErrSelfLoop
)

// Format selects the textual input form.
type Format int

const (
	// EdgeList is the headerless pair list with inferred counts.
	EdgeList Format = iota

	// DIMACS is the header-tagged form with a "p" problem line.
	DIMACS
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case EdgeList:
		return "edgelist"
	case DIMACS:
		return "dimacs"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}
