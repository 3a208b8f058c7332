package csvio

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Reader reads records one at a time from an underlying stream.
type Reader struct {
	d      Dialect
	r      *bufio.Reader
	field  strings.Builder
	record []string
	n      int
}

// NewReader returns a Reader for d. The dialect is assumed valid.
func NewReader(r io.Reader, d Dialect) *Reader {
	return &Reader{d: d, r: bufio.NewReader(r)}
}

// Record returns the 1-based number of the record last returned by Read.
func (r *Reader) Record() int {
	return r.n
}

type readState int

const (
	stateStartRecord readState = iota
	stateStartField
	stateInField
	stateInQuoted
	stateQuoteInQuoted
)

// Read returns the next record. A blank line is returned as a record with no
// fields. io.EOF is returned once the stream is exhausted.
// The returned slice is freshly allocated for each call.
func (r *Reader) Read() ([]string, error) {
	r.record = nil
	r.field.Reset()
	state := stateStartRecord

	for {
		c, _, err := r.r.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, err
			}
			switch state {
			case stateStartRecord:
				return nil, io.EOF
			default:
				r.saveField()
				return r.finish(), nil
			}
		}

		switch state {
		case stateStartRecord:
			if c == '\n' || c == '\r' {
				r.eatCRLF(c)
				return r.finish(), nil
			}
			state = stateStartField
			fallthrough
		case stateStartField:
			switch c {
			case '\n', '\r':
				r.saveField()
				r.eatCRLF(c)
				return r.finish(), nil
			case r.d.Quote:
				state = stateInQuoted
			case r.d.Delimiter:
				r.saveField()
			default:
				r.field.WriteRune(c)
				state = stateInField
			}
		case stateInField:
			switch c {
			case '\n', '\r':
				r.saveField()
				r.eatCRLF(c)
				return r.finish(), nil
			case r.d.Delimiter:
				r.saveField()
				state = stateStartField
			default:
				r.field.WriteRune(c)
			}
		case stateInQuoted:
			if c == r.d.Quote {
				state = stateQuoteInQuoted
			} else {
				r.field.WriteRune(c)
			}
		case stateQuoteInQuoted:
			switch c {
			case r.d.Quote:
				r.field.WriteRune(c)
				state = stateInQuoted
			case r.d.Delimiter:
				r.saveField()
				state = stateStartField
			case '\n', '\r':
				r.saveField()
				r.eatCRLF(c)
				return r.finish(), nil
			default:
				// text after a closing quote is kept
				r.field.WriteRune(c)
				state = stateInField
			}
		}
	}
}

func (r *Reader) saveField() {
	r.record = append(r.record, r.field.String())
	r.field.Reset()
}

// eatCRLF consumes the LF of a CRLF pair.
func (r *Reader) eatCRLF(c rune) {
	if c != '\r' {
		return
	}
	next, _, err := r.r.ReadRune()
	if err == nil && next != '\n' {
		_ = r.r.UnreadRune()
	}
}

func (r *Reader) finish() []string {
	r.n++
	if r.record == nil {
		return []string{}
	}
	return r.record
}
