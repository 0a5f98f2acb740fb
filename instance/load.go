// SPDX-License-Identifier: MIT
//
// File: load.go
// Role: open instance files and decompress them by extension.

package instance

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/fastvc/graph"
)

// Load opens path, decompresses it according to its extension and parses
// it in format f.
//
// Errors: ErrOpen (wrapping the OS or codec error) when the file cannot be
// opened or its compressed header is invalid; otherwise as Read, prefixed
// with the path.
func Load(path string, f Format) (*graph.Graph, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	g, err := Read(rc, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Open returns a reader over the decompressed contents of path.
// Extensions ".gz", ".zst", ".zstd" and ".lz4" select a codec; anything else
// is read as plain text. Closing the result closes the file.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	var rc io.ReadCloser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		var zr *gzip.Reader
		if zr, err = gzip.NewReader(file); err == nil {
			rc = stacked{Reader: zr, closers: []io.Closer{zr, file}}
		}
	case ".zst", ".zstd":
		var dec *zstd.Decoder
		if dec, err = zstd.NewReader(file); err == nil {
			zrc := dec.IOReadCloser()
			rc = stacked{Reader: zrc, closers: []io.Closer{zrc, file}}
		}
	case ".lz4":
		rc = stacked{Reader: lz4.NewReader(file), closers: []io.Closer{file}}
	default:
		rc = file
	}
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
	}

	return rc, nil
}

// stacked reads from the outermost decoder and closes every layer in order.
type stacked struct {
	io.Reader
	closers []io.Closer
}

func (s stacked) Close() error {
	return closeAll(s.closers)
}

// closeAll closes every closer and returns the first error.
func closeAll(closers []io.Closer) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
