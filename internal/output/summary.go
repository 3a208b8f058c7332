package output

import (
	"strconv"

	"github.com/ivoronin/csvfilter/internal/filter"
)

// Summary describes a finished filter run.
type Summary struct {
	Input  string
	Output string
	Stats  filter.Stats
}

type summaryJSON struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	Processed int    `json:"processed"`
	Matched   int    `json:"matched"`
	Skipped   int    `json:"skipped"`
	Rejected  int    `json:"rejected"`
}

// FormatText returns a one-row table of the counters.
func (s *Summary) FormatText() string {
	return table{
		{"INPUT", "OUTPUT", "PROCESSED", "MATCHED", "SKIPPED", "REJECTED"},
		{
			s.Input,
			s.outputName(),
			strconv.Itoa(s.Stats.Processed),
			strconv.Itoa(s.Stats.Matched),
			strconv.Itoa(s.Stats.Skipped),
			strconv.Itoa(s.Stats.Rejected()),
		},
	}.String()
}

// FormatJSON returns the counters as a flat JSON object.
func (s *Summary) FormatJSON() ([]byte, error) {
	return marshal(summaryJSON{
		Input:     s.Input,
		Output:    s.outputName(),
		Processed: s.Stats.Processed,
		Matched:   s.Stats.Matched,
		Skipped:   s.Stats.Skipped,
		Rejected:  s.Stats.Rejected(),
	})
}

func (s *Summary) outputName() string {
	if s.Output == "" || s.Output == "-" {
		return "<stdout>"
	}
	return s.Output
}
