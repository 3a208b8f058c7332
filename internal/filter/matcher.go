package filter

import (
	"fmt"
	"sort"
)

// Classifier decides whether rows match a set of bindings. The addressing
// scheme is fixed when the classifier is built and applies to every row.
type Classifier struct {
	bindings []Binding
	header   []string
	// positions maps a header name to its column; the last duplicate wins.
	positions map[string]int
}

// NewHeaderClassifier validates bindings against header and returns a
// classifier for named columns. Every binding must be a ByName locator for
// a column present in header.
func NewHeaderClassifier(header []string, bindings []Binding) (*Classifier, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}

	missing := make(map[string]struct{})
	for _, b := range bindings {
		if b.Locator.Kind != ByName {
			return nil, fmt.Errorf("%w: %s used with a header", ErrLocatorModeMismatch, b.Locator)
		}
		if _, ok := positions[b.Locator.Name]; !ok {
			missing[b.Locator.Name] = struct{}{}
		}
	}
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, &UnknownColumnsError{Names: names}
	}

	return &Classifier{bindings: bindings, header: header, positions: positions}, nil
}

// NewPositionalClassifier returns a classifier for headerless input. Every
// binding must be a ByIndex locator.
func NewPositionalClassifier(bindings []Binding) (*Classifier, error) {
	for _, b := range bindings {
		if b.Locator.Kind != ByIndex || b.Locator.Index < 0 {
			return nil, fmt.Errorf("%w: %s used without a header", ErrLocatorModeMismatch, b.Locator)
		}
	}
	return &Classifier{bindings: bindings}, nil
}

// Classify evaluates bindings in order against record and stops at the
// first binding that cannot be evaluated (Skip) or fails (Reject).
func (c *Classifier) Classify(record []string) Outcome {
	for _, b := range c.bindings {
		value, ok := c.lookup(record, b.Locator)
		if !ok {
			return Skip
		}
		if !b.Condition.Matches(value) {
			return Reject
		}
	}
	return Match
}

func (c *Classifier) lookup(record []string, loc Locator) (string, bool) {
	i := loc.Index
	if c.positions != nil {
		i = c.positions[loc.Name]
	}
	if i >= len(record) {
		return "", false
	}
	return record[i], true
}

// Row returns the record as it should be written. Without a header the
// record is returned unchanged. With a header the row is rebuilt column by
// column: missing values become empty strings and extra trailing values are
// dropped.
func (c *Classifier) Row(record []string) []string {
	if c.positions == nil {
		return record
	}
	row := make([]string, len(c.header))
	for i, name := range c.header {
		if j := c.positions[name]; j < len(record) {
			row[i] = record[j]
		}
	}
	return row
}
