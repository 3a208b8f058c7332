package filter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ivoronin/csvfilter/internal/csvio"
	"github.com/ivoronin/csvfilter/internal/fileio"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Run streams records from src to dst, writing only rows that satisfy every
// binding. In header mode the first record is the header: bindings are
// checked against it before any data row is read, and it is written ahead
// of the matching rows. Output uses the same dialect with "\n" line endings.
//
// Stats reflect the rows handled before any error.
func Run(src io.Reader, dst io.Writer, bindings []Binding, opts Options) (Stats, error) {
	var stats Stats

	if err := opts.Dialect.Validate(); err != nil {
		return stats, err
	}
	log := opts.Logger
	if log == nil {
		log = discardLogger
	}

	r := csvio.NewReader(src, opts.Dialect)

	var header []string
	var c *Classifier
	var err error
	if opts.NoHeader {
		c, err = NewPositionalClassifier(bindings)
	} else {
		header, err = r.Read()
		if errors.Is(err, io.EOF) {
			return stats, ErrMissingHeader
		}
		if err != nil {
			return stats, fmt.Errorf("read header: %w", err)
		}
		c, err = NewHeaderClassifier(header, bindings)
	}
	if err != nil {
		return stats, err
	}

	w := csvio.NewWriter(dst, opts.Dialect)
	if header != nil {
		if err := w.Write(header); err != nil {
			return stats, fmt.Errorf("write header: %w", err)
		}
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read record %d: %w", r.Record()+1, err)
		}
		// Blank lines carry no data under a header.
		if header != nil && len(record) == 0 {
			continue
		}

		outcome := c.Classify(record)
		stats.record(outcome)

		switch outcome {
		case Match:
			if err := w.Write(c.Row(record)); err != nil {
				return stats, fmt.Errorf("write record %d: %w", r.Record(), err)
			}
		case Skip:
			log.Debug("skipped short row", "record", r.Record(), "fields", len(record))
		}
	}

	if err := w.Flush(); err != nil {
		return stats, fmt.Errorf("write output: %w", err)
	}
	return stats, nil
}

// FileOptions name the files for RunFiles.
type FileOptions struct {
	Options
	// Input is the source path.
	Input string
	// Output is the sink path; empty or "-" writes to Stdout.
	Output string
	// Stdout is used when Output selects standard output. It is never closed.
	Stdout io.Writer
}

// RunFiles opens the input, creates the output and runs the filter between
// them. Handles acquired here are always released; standard output is left open.
func RunFiles(bindings []Binding, opts FileOptions) (stats Stats, err error) {
	src, err := fileio.OpenSource(opts.Input)
	if err != nil {
		return stats, err
	}
	defer func() { _ = src.Close() }()

	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	sink, err := fileio.CreateSink(opts.Output, stdout)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s (%w)", fileio.ErrSinkUnwritable, opts.Output, cerr)
		}
	}()

	return Run(src, sink, bindings, opts.Options)
}
