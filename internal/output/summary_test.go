package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivoronin/csvfilter/internal/filter"
)

func TestSummaryFormatText(t *testing.T) {
	s := &Summary{Input: "in.csv", Stats: filter.Stats{Processed: 5, Matched: 2, Skipped: 1}}

	lines := strings.Split(s.FormatText(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"INPUT", "OUTPUT", "PROCESSED", "MATCHED", "SKIPPED", "REJECTED"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"in.csv", "<stdout>", "5", "2", "1", "2"}, strings.Fields(lines[1]))
}

func TestSummaryFormatJSON(t *testing.T) {
	s := &Summary{Input: "in.csv", Output: "out.csv", Stats: filter.Stats{Processed: 3, Matched: 2, Skipped: 1}}

	data, err := s.FormatJSON()
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "in.csv", parsed["input"])
	assert.Equal(t, "out.csv", parsed["output"])
	assert.EqualValues(t, 3, parsed["processed"])
	assert.EqualValues(t, 2, parsed["matched"])
	assert.EqualValues(t, 1, parsed["skipped"])
	assert.EqualValues(t, 0, parsed["rejected"])
}

func TestSummaryFormatJSONKeepsAngleBrackets(t *testing.T) {
	s := &Summary{Input: "a&b.csv"}

	data, err := s.FormatJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"input":"a&b.csv","output":"<stdout>","processed":0,"matched":0,"skipped":0,"rejected":0}`,
		string(data))
}

func TestPrint(t *testing.T) {
	s := &Summary{Input: "in.csv", Output: "-"}

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, s, FormatJSON))
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
	assert.False(t, strings.HasSuffix(buf.String(), "\n\n"))
	assert.Contains(t, buf.String(), `"output":"<stdout>"`)

	buf.Reset()
	require.NoError(t, Print(&buf, s, FormatText))
	assert.Contains(t, buf.String(), "PROCESSED")
}
