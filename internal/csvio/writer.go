package csvio

import (
	"bufio"
	"io"
	"strings"
)

// Writer writes records using minimal quoting and "\n" line endings.
type Writer struct {
	d Dialect
	w *bufio.Writer
}

// NewWriter returns a Writer for d. The dialect is assumed valid.
func NewWriter(w io.Writer, d Dialect) *Writer {
	return &Writer{d: d, w: bufio.NewWriter(w)}
}

// Write writes a single record. Output is buffered; call Flush before
// inspecting the destination.
func (w *Writer) Write(record []string) error {
	// A lone empty field would otherwise read back as a blank line.
	if len(record) == 1 && record[0] == "" {
		_, err := w.w.WriteString(string(w.d.Quote) + string(w.d.Quote) + "\n")
		return err
	}

	for i, field := range record {
		if i > 0 {
			if _, err := w.w.WriteRune(w.d.Delimiter); err != nil {
				return err
			}
		}
		if err := w.writeField(field); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

func (w *Writer) writeField(field string) error {
	if !w.needsQuotes(field) {
		_, err := w.w.WriteString(field)
		return err
	}

	q := string(w.d.Quote)
	escaped := strings.ReplaceAll(field, q, q+q)
	_, err := w.w.WriteString(q + escaped + q)
	return err
}

func (w *Writer) needsQuotes(field string) bool {
	return strings.ContainsRune(field, w.d.Delimiter) ||
		strings.ContainsRune(field, w.d.Quote) ||
		strings.ContainsAny(field, "\r\n")
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Error reports any error from a previous Write or Flush.
func (w *Writer) Error() error {
	_, err := w.w.Write(nil)
	return err
}
