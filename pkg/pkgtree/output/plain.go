package output

import (
	"bytes"
	"text/tabwriter"
)

// PlainFormatter formats output as a simple space-aligned table.
// It produces plain text output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	// Use tabwriter for aligned columns
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	_, err := tw.Write([]byte("TYPE\tMODE\tSIZE\tPATH\n"))
	if err != nil {
		return err
	}

	for _, e := range r.Entries {
		row := orDash(e.Type) + "\t" + orDash(e.Mode) + "\t" +
			orDash(e.SizeHuman) + "\t" + e.Path + "\n"
		if _, err := tw.Write([]byte(row)); err != nil {
			return err
		}
	}

	// Flush tabwriter to buffer
	return tw.Flush()
}

// orDash substitutes "-" for unset fields so columns stay aligned.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
