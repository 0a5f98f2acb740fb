// SPDX-License-Identifier: MIT
//
// File: write.go
// Role: serialise graphs and create instance files, compressed by extension.

package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/fastvc/graph"
)

// Write serialises g in format f so that Read(…, f) yields an equal graph.
//
// DIMACS carries the vertex count in its "p edge V E" line. The edge list
// has no header, so isolated vertices above the largest endpoint are lost.
//
// Complexity: O(n+m).
func Write(w io.Writer, g *graph.Graph, f Format) error {
	if g == nil {
		return graph.ErrGraphNil
	}
	if f != DIMACS && f != EdgeList {
		return fmt.Errorf("Write: unsupported format %v", f)
	}

	var (
		bw  = bufio.NewWriter(w)
		buf = make([]byte, 0, 32)
		e   graph.Edge
	)
	if f == DIMACS {
		fmt.Fprintf(bw, "p edge %d %d\n", g.NumVertices(), g.NumEdges())
	}
	for i := 0; i < g.NumEdges(); i++ {
		e = g.Edge(i)
		buf = buf[:0]
		if f == DIMACS {
			buf = append(buf, "e "...)
		}
		buf = strconv.AppendInt(buf, int64(e.U), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.V), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Create creates path and returns a writer that compresses according to
// the extension, mirroring Open. Close flushes the codec and closes the
// file.
func Create(path string) (io.WriteCloser, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zw := gzip.NewWriter(file)
		return stackedWriter{Writer: zw, closers: []io.Closer{zw, file}}, nil
	case ".zst", ".zstd":
		enc, err := zstd.NewWriter(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("Create: %s: %w", path, err)
		}
		return stackedWriter{Writer: enc, closers: []io.Closer{enc, file}}, nil
	case ".lz4":
		lw := lz4.NewWriter(file)
		return stackedWriter{Writer: lw, closers: []io.Closer{lw, file}}, nil
	default:
		return file, nil
	}
}

// stackedWriter writes through the outermost encoder and closes every
// layer in order, encoder first.
type stackedWriter struct {
	io.Writer
	closers []io.Closer
}

func (s stackedWriter) Close() error {
	return closeAll(s.closers)
}
