// Package output renders run summaries for the terminal or for machines.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Format selects how a summary is rendered.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Formatter is implemented by values that render as text or JSON.
type Formatter interface {
	FormatText() string
	FormatJSON() ([]byte, error)
}

// Print writes f to w in the given format, followed by a newline.
func Print(w io.Writer, f Formatter, format Format) error {
	var s string
	switch format {
	case FormatJSON:
		data, err := f.FormatJSON()
		if err != nil {
			return err
		}
		s = string(data)
	default:
		s = f.FormatText()
	}
	_, err := fmt.Fprintln(w, s)
	return err
}

// marshal encodes v as compact JSON without escaping <, > and &.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
