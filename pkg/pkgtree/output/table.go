package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// TSVFormatter formats output as tab-separated values.
// It produces a simple table with a header row followed by data rows.
type TSVFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *TSVFormatter) Format(w *bytes.Buffer, r *Result) error {
	// Write header
	w.WriteString("TYPE\tMODE\tSIZE\tPATH\n")

	// Write data rows
	for _, e := range r.Entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Type, e.Mode, sizeColumn(e), e.Path)
	}

	return nil
}

func init() {
	Register("tsv", func() Formatter {
		return &TSVFormatter{}
	})
}

// Ensure TSVFormatter implements Formatter.
var _ Formatter = (*TSVFormatter)(nil)

// CSVFormatter formats output as comma-separated values with proper
// quoting. It uses encoding/csv for RFC 4180 compliant output.
type CSVFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *CSVFormatter) Format(w *bytes.Buffer, r *Result) error {
	writer := csv.NewWriter(w)

	// Write header
	if err := writer.Write([]string{"TYPE", "MODE", "SIZE", "PATH"}); err != nil {
		return err
	}

	// Write data rows
	for _, e := range r.Entries {
		if err := writer.Write([]string{e.Type, e.Mode, sizeColumn(e), e.Path}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func init() {
	Register("csv", func() Formatter {
		return &CSVFormatter{}
	})
}

// Ensure CSVFormatter implements Formatter.
var _ Formatter = (*CSVFormatter)(nil)

// sizeColumn renders the raw byte count for machine-readable tables,
// empty when the size is unset.
func sizeColumn(e EntryInfo) string {
	if e.Size == nil {
		return ""
	}
	return strconv.FormatUint(*e.Size, 10)
}
