// SPDX-License-Identifier: MIT

// Package instance reads vertex cover instances from text into a
// *graph.Graph.
//
// Two formats are accepted:
//
//	DIMACS (header-tagged)          EdgeList (headerless)
//	c optional comments             1 2
//	p edge 4 3                      2 3
//	e 1 2                           3 4
//	e 2 3
//	e 3 4
//
//   - DIMACS: comment and blank lines are skipped until the first line whose
//     first token is "p"; its third and fourth tokens are the vertex and edge
//     counts. Exactly that many edge lines "<tag> u v" follow (1-based ids).
//   - EdgeList: whitespace-separated integer pairs, one edge per pair. Counts
//     are inferred: V is the largest id seen. If any id is 0, numbering is
//     taken as 0-based and every id is shifted up by one (V = max+1).
//     A pair "u u" aborts the read with ErrSelfLoop before any graph exists.
//
// Load opens a path and decompresses transparently by extension: ".gz"
// (gzip), ".zst"/".zstd" (Zstandard), ".lz4" (LZ4 frame).
package instance
