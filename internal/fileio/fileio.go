// Package fileio opens filter sources and sinks on the local file system.
// Paths ending in ".lz4" are decompressed on read and compressed on write.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// StdoutPath selects standard output as the sink.
const StdoutPath = "-"

const lz4Ext = ".lz4"

var (
	ErrSourceNotFound   = errors.New("input file not found")
	ErrSourceUnreadable = errors.New("cannot open input file")
	ErrSinkUnwritable   = errors.New("cannot write output file")
)

// Source is an opened input stream.
type Source struct {
	io.Reader
	f *os.File
}

// Close releases the underlying file.
func (s *Source) Close() error {
	return s.f.Close()
}

// OpenSource opens path for reading.
func OpenSource(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s (%w)", ErrSourceUnreadable, path, err)
	}

	st, err := f.Stat()
	if err == nil && st.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceUnreadable, path)
	}

	var r io.Reader = f
	if isLZ4(path) {
		r = lz4.NewReader(f)
	}
	return &Source{Reader: r, f: f}, nil
}

// Sink is an opened output stream. A sink on standard output is never closed.
type Sink struct {
	io.Writer
	closers []io.Closer
}

// Owned reports whether Close releases a file created by CreateSink.
func (s *Sink) Owned() bool {
	return len(s.closers) > 0
}

// Close flushes compression and closes the file, if the sink owns one.
func (s *Sink) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// CreateSink creates (or truncates) path for writing. An empty path or
// StdoutPath returns a sink on stdout that Close leaves open.
func CreateSink(path string, stdout io.Writer) (*Sink, error) {
	if path == "" || path == StdoutPath {
		return &Sink{Writer: stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%w)", ErrSinkUnwritable, path, err)
	}

	if isLZ4(path) {
		zw := lz4.NewWriter(f)
		return &Sink{Writer: zw, closers: []io.Closer{zw, f}}, nil
	}
	return &Sink{Writer: f, closers: []io.Closer{f}}, nil
}

func isLZ4(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), lz4Ext)
}
