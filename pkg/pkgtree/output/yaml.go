package output

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// yamlOutput represents the full YAML output structure.
type yamlOutput struct {
	Entries     []EntryInfo      `yaml:"entries"`
	Diagnostics []DiagnosticInfo `yaml:"diagnostics,omitempty"`
	Stats       yamlStats        `yaml:"stats"`
	Meta        yamlMeta         `yaml:"meta"`
}

// yamlStats represents parse statistics in YAML output.
type yamlStats struct {
	Entries     int    `yaml:"entries"`
	Diagnostics int    `yaml:"diagnostics"`
	Duration    string `yaml:"duration,omitempty"`
}

// yamlMeta represents metadata in YAML output.
type yamlMeta struct {
	Source      string `yaml:"source"`
	Compression string `yaml:"compression"`
	TotalSize   uint64 `yaml:"total_size"`
	Truncated   bool   `yaml:"truncated"`
}

// YAMLFormatter formats output as a YAML document.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Result) error {
	output := yamlOutput{
		Entries:     r.Entries,
		Diagnostics: r.Diagnostics,
		Stats: yamlStats{
			Entries:     r.Stats.Entries,
			Diagnostics: r.Stats.Diagnostics,
			Duration:    formatDurationString(r.Stats.Duration),
		},
		Meta: yamlMeta{
			Source:      r.Source,
			Compression: r.Compression,
			TotalSize:   r.TotalSize(),
			Truncated:   r.Truncated,
		},
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(output); err != nil {
		return err
	}
	return encoder.Close()
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
