package output

import (
	"strings"
	"text/tabwriter"
)

// table lays out rows in space-padded columns. The first row is the header.
type table [][]string

// String renders the table without a trailing newline.
func (t table) String() string {
	if len(t) == 0 {
		return ""
	}
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)
	for _, row := range t {
		_, _ = tw.Write([]byte(strings.Join(row, "\t") + "\n"))
	}
	_ = tw.Flush()
	return strings.TrimSuffix(sb.String(), "\n")
}
