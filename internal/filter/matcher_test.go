package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivoronin/csvfilter/internal/condition"
)

func contains(loc Locator, needle string) Binding {
	return Binding{Locator: loc, Condition: condition.Contains(needle)}
}

func regex(t *testing.T, loc Locator, pattern string) Binding {
	t.Helper()
	c, err := condition.Regex(pattern)
	require.NoError(t, err)
	return Binding{Locator: loc, Condition: c}
}

func TestHeaderClassify(t *testing.T) {
	header := []string{"name", "status", "city"}
	bindings := []Binding{
		contains(Name("name"), "Alice"),
		regex(t, Name("status"), "^active$"),
	}
	c, err := NewHeaderClassifier(header, bindings)
	require.NoError(t, err)

	tests := []struct {
		name   string
		record []string
		want   Outcome
	}{
		{"all bindings pass", []string{"Alice", "active", "Tokyo"}, Match},
		{"second binding fails", []string{"Alice", "inactive", "Osaka"}, Reject},
		{"first binding fails", []string{"Bob", "active", "Tokyo"}, Reject},
		{"short row lacks bound column", []string{"Alice"}, Skip},
		{"short row rejected before missing column", []string{"Bob"}, Reject},
		{"short row with bound columns present", []string{"Alice", "active"}, Match},
		{"extra columns ignored", []string{"Alice", "active", "Tokyo", "extra"}, Match},
		{"empty record", []string{}, Skip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.record))
		})
	}
}

func TestPositionalClassify(t *testing.T) {
	c, err := NewPositionalClassifier([]Binding{contains(Index(1), "b")})
	require.NoError(t, err)

	tests := []struct {
		name   string
		record []string
		want   Outcome
	}{
		{"match", []string{"a", "b"}, Match},
		{"short row", []string{"c"}, Skip},
		{"match again", []string{"b", "b"}, Match},
		{"reject", []string{"b", "x"}, Reject},
		{"empty record", []string{}, Skip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.record))
		})
	}
}

func TestPositionalClassifyFirstFailureWins(t *testing.T) {
	// reject on column 1 is decided before column 5 is found missing
	c, err := NewPositionalClassifier([]Binding{
		contains(Index(0), "x"),
		contains(Index(4), "y"),
	})
	require.NoError(t, err)
	assert.Equal(t, Reject, c.Classify([]string{"a", "b"}))

	// skip on column 5 is decided before column 1 is evaluated
	c, err = NewPositionalClassifier([]Binding{
		contains(Index(4), "y"),
		contains(Index(0), "x"),
	})
	require.NoError(t, err)
	assert.Equal(t, Skip, c.Classify([]string{"a", "b"}))
}

func TestClassifyNoBindingsMatchesEverything(t *testing.T) {
	c, err := NewPositionalClassifier(nil)
	require.NoError(t, err)
	assert.Equal(t, Match, c.Classify([]string{}))
	assert.Equal(t, Match, c.Classify([]string{"a"}))
}

func TestRemovingPassingBindingNeverShrinksMatches(t *testing.T) {
	records := [][]string{
		{"Alice", "active"},
		{"Alice", "inactive"},
		{"Bob", "active"},
		{"Al"},
	}
	full := []Binding{contains(Index(0), "Al"), contains(Index(1), "active")}

	for drop := range full {
		subset := append(append([]Binding{}, full[:drop]...), full[drop+1:]...)
		cFull, err := NewPositionalClassifier(full)
		require.NoError(t, err)
		cSub, err := NewPositionalClassifier(subset)
		require.NoError(t, err)

		for _, rec := range records {
			if cFull.Classify(rec) == Match {
				assert.Equal(t, Match, cSub.Classify(rec), "record %v", rec)
			}
		}
	}
}

func TestNewHeaderClassifierUnknownColumns(t *testing.T) {
	_, err := NewHeaderClassifier([]string{"name"}, []Binding{
		contains(Name("zip"), "1"),
		contains(Name("name"), "A"),
		contains(Name("city"), "T"),
		contains(Name("zip"), "2"),
	})
	require.ErrorIs(t, err, ErrUnknownColumns)

	var uc *UnknownColumnsError
	require.ErrorAs(t, err, &uc)
	assert.Equal(t, []string{"city", "zip"}, uc.Names)
	assert.Equal(t, "columns not found in header: city, zip", err.Error())
}

func TestLocatorModeMismatch(t *testing.T) {
	_, err := NewHeaderClassifier([]string{"a"}, []Binding{contains(Index(0), "x")})
	assert.ErrorIs(t, err, ErrLocatorModeMismatch)

	_, err = NewPositionalClassifier([]Binding{contains(Name("a"), "x")})
	assert.ErrorIs(t, err, ErrLocatorModeMismatch)

	_, err = NewPositionalClassifier([]Binding{contains(Locator{}, "x")})
	assert.ErrorIs(t, err, ErrLocatorModeMismatch)
}

func TestHeaderRow(t *testing.T) {
	c, err := NewHeaderClassifier([]string{"a", "b", "c"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, c.Row([]string{"1", "2", "3"}))
	assert.Equal(t, []string{"1", "", ""}, c.Row([]string{"1"}))
	assert.Equal(t, []string{"1", "2", "3"}, c.Row([]string{"1", "2", "3", "4"}))
}

func TestHeaderDuplicateNamesUseLastColumn(t *testing.T) {
	c, err := NewHeaderClassifier([]string{"x", "y", "x"}, []Binding{contains(Name("x"), "last")})
	require.NoError(t, err)

	assert.Equal(t, Match, c.Classify([]string{"first", "y", "last"}))
	assert.Equal(t, Reject, c.Classify([]string{"last", "y", "first"}))
	assert.Equal(t, Skip, c.Classify([]string{"last", "y"}))
	assert.Equal(t, []string{"last", "y", "last"}, c.Row([]string{"first", "y", "last"}))
}

func TestPositionalRowUnchanged(t *testing.T) {
	c, err := NewPositionalClassifier(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, c.Row([]string{"a", "b", "c"}))
}

func TestStatsRejected(t *testing.T) {
	var s Stats
	for _, o := range []Outcome{Match, Reject, Skip, Reject, Match} {
		s.record(o)
	}
	assert.Equal(t, Stats{Processed: 5, Matched: 2, Skipped: 1}, s)
	assert.Equal(t, 2, s.Rejected())
}

func TestLocatorAndOutcomeStrings(t *testing.T) {
	assert.Equal(t, "city", Name("city").String())
	assert.Equal(t, "#2", Index(1).String())
	assert.Equal(t, "<unset>", Locator{}.String())
	assert.Equal(t, "match", Match.String())
	assert.Equal(t, "reject", Reject.String())
	assert.Equal(t, "skip", Skip.String())
}
