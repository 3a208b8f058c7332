// Package csvio reads and writes delimited records with a configurable
// delimiter and quote character.
//
// encoding/csv fixes the quote character to '"', so this package carries its
// own tokenizer. Its behavior follows the lenient "excel" dialect: quoted fields
// may span lines, doubled quotes are literal, stray quotes are kept as text.
package csvio

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Default dialect characters.
const (
	DefaultDelimiter = ','
	DefaultQuote     = '"'
)

// ErrInvalidDialect is returned for an unusable delimiter/quote combination.
var ErrInvalidDialect = errors.New("invalid dialect")

// Dialect describes how fields are separated and quoted.
type Dialect struct {
	Delimiter rune
	Quote     rune
}

// DefaultDialect returns the comma/double-quote dialect.
func DefaultDialect() Dialect {
	return Dialect{Delimiter: DefaultDelimiter, Quote: DefaultQuote}
}

// Validate checks that the dialect can round-trip records.
func (d Dialect) Validate() error {
	if !validRune(d.Delimiter) {
		return fmt.Errorf("%w: delimiter %q", ErrInvalidDialect, d.Delimiter)
	}
	if !validRune(d.Quote) {
		return fmt.Errorf("%w: quote character %q", ErrInvalidDialect, d.Quote)
	}
	if d.Delimiter == d.Quote {
		return fmt.Errorf("%w: delimiter and quote character are both %q", ErrInvalidDialect, d.Delimiter)
	}
	return nil
}

// ParseRune converts a single-character option value into a rune.
func ParseRune(name, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidDialect, name, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

func validRune(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && r != utf8.RuneError && utf8.ValidRune(r)
}
