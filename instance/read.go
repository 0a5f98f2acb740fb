// SPDX-License-Identifier: MIT
//
// File: read.go
// Role: DIMACS and edge-list parsers.

package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/fastvc/graph"
)

// maxLine bounds a single DIMACS line; problem and edge lines are short.
const maxLine = 1 << 20

// maxPrealloc caps the edge slice reserved from an untrusted "p" line;
// larger instances grow by append.
const maxPrealloc = 1 << 16

// Read parses r in format f and builds the graph.
//
// Errors: ErrBadHeader, ErrBadEdge, ErrBadVertex, ErrTruncated,
// ErrDanglingToken, ErrSelfLoop, graph construction errors, and I/O errors from r; all
// wrapped with position context.
//
// Complexity: O(size of input) time, O(n+m) space.
func Read(r io.Reader, f Format) (*graph.Graph, error) {
	switch f {
	case DIMACS:
		return readDIMACS(r)
	case EdgeList:
		return readEdgeList(r)
	default:
		return nil, fmt.Errorf("Read: unsupported format %v", f)
	}
}

// readDIMACS parses the header-tagged form.
func readDIMACS(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		line   int
		fields []string
		n, m   int
		err    error
		found  bool
	)
	for sc.Scan() {
		line++
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != "p" {
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("line %d: %w", line, ErrBadHeader)
		}
		if n, err = strconv.Atoi(fields[2]); err != nil || n < 0 {
			return nil, fmt.Errorf("line %d: vertex count %q: %w", line, fields[2], ErrBadHeader)
		}
		if m, err = strconv.Atoi(fields[3]); err != nil || m < 0 {
			return nil, fmt.Errorf("line %d: edge count %q: %w", line, fields[3], ErrBadHeader)
		}
		found = true
		break
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}
	if !found {
		return nil, ErrBadHeader
	}

	edges := make([]graph.Edge, 0, min(m, maxPrealloc))
	var u, v int
	for len(edges) < m && sc.Scan() {
		line++
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: %w", line, ErrBadEdge)
		}
		if u, err = strconv.Atoi(fields[1]); err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", line, fields[1], ErrBadEdge)
		}
		if v, err = strconv.Atoi(fields[2]); err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", line, fields[2], ErrBadEdge)
		}
		edges = append(edges, graph.Edge{U: u, V: v})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}
	if len(edges) < m {
		return nil, fmt.Errorf("read %d of %d edges: %w", len(edges), m, ErrTruncated)
	}

	return graph.New(n, edges)
}

// readEdgeList parses the headerless pair list, inferring V and E and
// normalising 0-based numbering.
func readEdgeList(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	sc.Split(bufio.ScanWords)

	var (
		edges   []graph.Edge
		pending = -1 // first id of the pair being read, or -1
		id      int
		maxID   int
		hasZero bool
		err     error
	)
	for sc.Scan() {
		if id, err = strconv.Atoi(sc.Text()); err != nil {
			return nil, fmt.Errorf("pair %d: %q: %w", len(edges)+1, sc.Text(), ErrBadEdge)
		}
		if id < 0 {
			return nil, fmt.Errorf("pair %d: node %d: %w", len(edges)+1, id, ErrBadVertex)
		}
		if id == 0 {
			hasZero = true
		}
		if id > maxID {
			maxID = id
		}
		if pending < 0 {
			pending = id
			continue
		}
		if pending == id {
			return nil, fmt.Errorf("pair %d: node %d: %w", len(edges)+1, id, ErrSelfLoop)
		}
		edges = append(edges, graph.Edge{U: pending, V: id})
		pending = -1
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if pending >= 0 {
		return nil, fmt.Errorf("trailing id %d: %w", pending, ErrDanglingToken)
	}

	n := maxID
	if hasZero {
		n++
		var i int
		for i = range edges {
			edges[i].U++
			edges[i].V++
		}
	}

	return graph.New(n, edges)
}
