// Package filter selects CSV rows whose fields satisfy a set of conditions.
package filter

import (
	"fmt"
	"log/slog"

	"github.com/ivoronin/csvfilter/internal/condition"
	"github.com/ivoronin/csvfilter/internal/csvio"
)

// LocatorKind tells how a Locator addresses a column.
type LocatorKind int

const (
	ByName LocatorKind = iota + 1
	ByIndex
)

// Locator addresses a column by header name or by zero-based position.
type Locator struct {
	Kind  LocatorKind
	Name  string
	Index int
}

// Name returns a locator for the header column called name.
func Name(name string) Locator {
	return Locator{Kind: ByName, Name: name}
}

// Index returns a locator for the zero-based column i.
func Index(i int) Locator {
	return Locator{Kind: ByIndex, Index: i}
}

func (l Locator) String() string {
	switch l.Kind {
	case ByName:
		return l.Name
	case ByIndex:
		return fmt.Sprintf("#%d", l.Index+1)
	default:
		return "<unset>"
	}
}

// Binding pairs a column with the condition its value must satisfy.
type Binding struct {
	Locator   Locator
	Condition condition.Condition
}

// Outcome is the classification of one data row.
type Outcome int

const (
	// Match: every binding's condition holds; the row is written.
	Match Outcome = iota
	// Reject: the row was evaluated and a condition failed.
	Reject
	// Skip: the row is too short to evaluate a binding.
	Skip
)

func (o Outcome) String() string {
	switch o {
	case Match:
		return "match"
	case Reject:
		return "reject"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Stats counts rows for one run.
type Stats struct {
	Processed int `json:"processed"`
	Matched   int `json:"matched"`
	Skipped   int `json:"skipped"`
}

// Rejected is the number of rows that failed a condition.
func (s Stats) Rejected() int {
	return s.Processed - s.Matched - s.Skipped
}

func (s *Stats) record(o Outcome) {
	s.Processed++
	switch o {
	case Match:
		s.Matched++
	case Skip:
		s.Skipped++
	}
}

// Options control how records are parsed and addressed.
type Options struct {
	Dialect  csvio.Dialect
	NoHeader bool
	// Logger receives per-row debug events. Nil discards them.
	Logger *slog.Logger
}
