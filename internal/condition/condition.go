// Package condition provides the value predicates applied to a single CSV field.
package condition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Operator names a condition variant.
type Operator string

const (
	OpContains Operator = "contains"
	OpRegex    Operator = "regex"
)

// Operators lists the recognized operators in the order they are documented.
var Operators = []Operator{OpContains, OpRegex}

var (
	// ErrInvalidOperator is returned by Build for an unrecognized operator name.
	ErrInvalidOperator = errors.New("invalid operator")
	// ErrInvalidPattern is returned when a regex operand does not compile.
	ErrInvalidPattern = errors.New("invalid regular expression")
)

// Condition is an immutable predicate over one field value.
// The variant set is closed: a Condition is either a substring test or a regex search.
type Condition struct {
	op     Operator
	needle string
	re     *regexp2.Regexp
}

// Contains returns a condition matching values that contain needle.
// An empty needle matches every value.
func Contains(needle string) Condition {
	return Condition{op: OpContains, needle: needle}
}

// Regex compiles pattern into an unanchored search condition. The syntax is
// Perl-style with backreferences and lookaround; \d and \w match Unicode.
func Regex(pattern string) (Condition, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return Condition{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return Condition{op: OpRegex, re: re}, nil
}

// Build constructs a condition from an operator name (case-insensitive) and its operand.
func Build(operator, operand string) (Condition, error) {
	switch Operator(strings.ToLower(operator)) {
	case OpContains:
		return Contains(operand), nil
	case OpRegex:
		return Regex(operand)
	default:
		return Condition{}, fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidOperator, operator, operatorList())
	}
}

// Operator reports which variant c is.
func (c Condition) Operator() Operator {
	return c.op
}

// Matches reports whether value satisfies the condition.
func (c Condition) Matches(value string) bool {
	switch c.op {
	case OpContains:
		return strings.Contains(value, c.needle)
	case OpRegex:
		m, err := c.re.FindStringMatch(value)
		return err == nil && m != nil
	default:
		return false // zero Condition
	}
}

// String renders the condition as "operator:operand".
func (c Condition) String() string {
	switch c.op {
	case OpContains:
		return string(OpContains) + ":" + c.needle
	case OpRegex:
		return string(OpRegex) + ":" + c.re.String()
	default:
		return "<invalid>"
	}
}

func operatorList() string {
	names := make([]string, len(Operators))
	for i, op := range Operators {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}
