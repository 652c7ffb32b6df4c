package simio

import (
	"fmt"
	"io"
	"strings"
)

// WriteTable renders a run's raw output text as a tab-delimited table:
// the header line, then one line of numOutputs values per save point, in
// variable-declaration order.
func WriteTable(w io.Writer, header, raw string, numOutputs int) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	if numOutputs <= 0 {
		return nil
	}
	// The raw stream is "%g"-formatted values, each with a trailing tab.
	values := strings.Split(strings.TrimRight(raw, "\t"), "\t")
	if raw == "" {
		return nil
	}
	for start := 0; start < len(values); start += numOutputs {
		end := start + numOutputs
		if end > len(values) {
			end = len(values)
		}
		if _, err := fmt.Fprintln(w, strings.Join(values[start:end], "\t")); err != nil {
			return err
		}
	}
	return nil
}

// WriteRaw emits the output text untouched: all values tab-separated on
// a single unterminated line, the format used to embed reference data.
func WriteRaw(w io.Writer, raw string) error {
	_, err := io.WriteString(w, raw)
	return err
}
