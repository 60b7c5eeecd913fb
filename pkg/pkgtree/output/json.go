package output

import (
	"bytes"
	"encoding/json"
	"time"
)

// JSONFormatter formats output as a single indented JSON object.
// It produces a complete JSON document with entries, diagnostics, stats
// and meta sections.
type JSONFormatter struct{}

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Entries     []EntryInfo      `json:"entries"`
	Diagnostics []DiagnosticInfo `json:"diagnostics,omitempty"`
	Stats       jsonStats        `json:"stats"`
	Meta        jsonMeta         `json:"meta"`
}

// jsonStats represents parse statistics in JSON output.
type jsonStats struct {
	Entries     int    `json:"entries"`
	Diagnostics int    `json:"diagnostics"`
	Duration    string `json:"duration,omitempty"`
}

// jsonMeta represents metadata in JSON output.
type jsonMeta struct {
	Source      string `json:"source"`
	Compression string `json:"compression"`
	TotalSize   uint64 `json:"total_size"`
	Truncated   bool   `json:"truncated"`
}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	output := jsonOutput{
		Entries:     r.Entries,
		Diagnostics: r.Diagnostics,
		Stats: jsonStats{
			Entries:     r.Stats.Entries,
			Diagnostics: r.Stats.Diagnostics,
			Duration:    formatDurationString(r.Stats.Duration),
		},
		Meta: jsonMeta{
			Source:      r.Source,
			Compression: r.Compression,
			TotalSize:   r.TotalSize(),
			Truncated:   r.Truncated,
		},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// formatDurationString formats a duration as a string for JSON output.
func formatDurationString(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)

// JSONLFormatter formats output as newline-delimited JSON (one entry per
// line). Each entry is written as a compact JSON object on its own line.
// This format is suitable for streaming processing with tools like jq.
type JSONLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONLFormatter) Format(w *bytes.Buffer, r *Result) error {
	for _, e := range r.Entries {
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	return nil
}

func init() {
	Register("jsonl", func() Formatter {
		return &JSONLFormatter{}
	})
}

// Ensure JSONLFormatter implements Formatter.
var _ Formatter = (*JSONLFormatter)(nil)
