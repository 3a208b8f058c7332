package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ivoronin/csvfilter/internal/condition"
)

// AST types for the Participle grammar

// bindingExpr is "column:operator:value". Only the first two colons separate
// parts; the value keeps any further colons.
type bindingExpr struct {
	Column  string `parser:"@Column Colon"`
	Op      string `parser:"@Op? Colon"`
	Operand string `parser:"@Value?"`
}

// Each colon moves the lexer one state to the right, so the value state
// never sees a separator.
var bindingLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Column", Pattern: `[^:]+`},
		{Name: "Colon", Pattern: `:`, Action: lexer.Push("Operator")},
	},
	"Operator": {
		{Name: "Op", Pattern: `[^:]+`},
		{Name: "Colon", Pattern: `:`, Action: lexer.Push("Value")},
	},
	"Value": {
		{Name: "Value", Pattern: `[\s\S]+`},
	},
})

var bindingParser = participle.MustBuild[bindingExpr](
	participle.Lexer(bindingLexer),
)

// ParseBinding parses a "column:operator:value" spec.
// With noHeader the column is a 1-based position; otherwise it is a header name.
func ParseBinding(text string, noHeader bool) (Binding, error) {
	ast, err := bindingParser.ParseString("", text)
	if err != nil {
		return Binding{}, fmt.Errorf("%w %q: want column:operator:value: %w", ErrInvalidFilter, text, err)
	}

	loc, err := convertLocator(ast.Column, noHeader)
	if err != nil {
		return Binding{}, fmt.Errorf("%w %q: %w", ErrInvalidFilter, text, err)
	}

	cond, err := condition.Build(ast.Op, ast.Operand)
	if err != nil {
		return Binding{}, err
	}

	return Binding{Locator: loc, Condition: cond}, nil
}

// ParseBindings parses specs in order and stops at the first error.
func ParseBindings(texts []string, noHeader bool) ([]Binding, error) {
	bindings := make([]Binding, 0, len(texts))
	for _, text := range texts {
		b, err := ParseBinding(text, noHeader)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

// convertLocator turns the column part into a name or a zero-based index.
func convertLocator(column string, noHeader bool) (Locator, error) {
	if !noHeader {
		return Name(column), nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(column))
	if err != nil {
		return Locator{}, fmt.Errorf("column must be a number without a header, got %q", column)
	}
	if n < 1 {
		return Locator{}, fmt.Errorf("column numbers start at 1, got %d", n)
	}
	return Index(n - 1), nil
}
