package filter

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidFilter is returned for a malformed "column:operator:value" spec.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrMissingHeader is returned in header mode when the input has no lines.
	ErrMissingHeader = errors.New("input has no header line (use --no-header for headerless input)")
	// ErrUnknownColumns matches any *UnknownColumnsError.
	ErrUnknownColumns = errors.New("unknown columns")
	// ErrLocatorModeMismatch is returned when a binding addresses a column in the
	// wrong scheme: an index in header mode or a name without a header.
	ErrLocatorModeMismatch = errors.New("column locator does not match header mode")
)

// UnknownColumnsError lists binding names absent from the header, sorted and unique.
type UnknownColumnsError struct {
	Names []string
}

func (e *UnknownColumnsError) Error() string {
	return "columns not found in header: " + strings.Join(e.Names, ", ")
}

// Is makes errors.Is(err, ErrUnknownColumns) hold.
func (e *UnknownColumnsError) Is(target error) bool {
	return target == ErrUnknownColumns
}
