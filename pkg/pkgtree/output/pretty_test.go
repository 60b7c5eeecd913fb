package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyFormatter_Format_BasicOutput(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{
			{Path: "./usr/bin/zstd", Type: "file", Mode: "0755", Size: uptr(1101248), SizeHuman: "1.1 MiB"},
			{Path: "./usr/lib", Type: "dir", Mode: "0755"},
		},
		Stats: ParseStats{
			Entries:  2,
			Duration: 3 * time.Millisecond,
		},
		Source:      "pkg.mtree",
		Compression: "gzip",
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	output := buf.String()

	// Header should contain source info
	assert.Contains(t, output, "pkg.mtree")
	assert.Contains(t, output, "gzip")
	assert.Contains(t, output, "2 entries")

	// Should contain entry paths and sizes
	assert.Contains(t, output, "./usr/bin/zstd")
	assert.Contains(t, output, "1.1 MiB")
	assert.Contains(t, output, "./usr/lib")

	// Should contain column headers
	assert.Contains(t, output, "TYPE")
	assert.Contains(t, output, "MODE")
	assert.Contains(t, output, "SIZE")
	assert.Contains(t, output, "PATH")

	// Footer
	assert.Contains(t, output, "Entries:")
	assert.Contains(t, output, "Total:")
}

func TestPrettyFormatter_Format_NoEntries(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	result := &Result{Source: "empty.mtree"}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No entries in manifest")
}

func TestPrettyFormatter_Format_ProblemStatus(t *testing.T) {
	formatter := &PrettyFormatter{}

	t.Run("clean parse", func(t *testing.T) {
		var buf bytes.Buffer
		result := &Result{Source: "ok.mtree"}
		require.NoError(t, formatter.Format(&buf, result))
		assert.Contains(t, buf.String(), "problems: none")
	})

	t.Run("with diagnostics", func(t *testing.T) {
		var buf bytes.Buffer
		result := &Result{
			Source: "bad.mtree",
			Stats:  ParseStats{Diagnostics: 3},
		}
		require.NoError(t, formatter.Format(&buf, result))
		assert.Contains(t, buf.String(), "problems: 3")
	})
}

func TestPrettyFormatter_Format_TruncatedNotice(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	result := &Result{
		Source:    "broken.mtree",
		Truncated: true,
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Parse stopped at a fatal error")
}

func TestPrettyFormatter_Format_RawCompressionHidden(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	result := &Result{Source: "x.mtree", Compression: "raw"}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Compression:")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ms", formatDuration(500*time.Millisecond))
	assert.Equal(t, "2.5s", formatDuration(2500*time.Millisecond))
	assert.Equal(t, "1m 30s", formatDuration(90*time.Second))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "   x", padLeft("x", 4))
	assert.Equal(t, "x   ", padRight("x", 4))
	assert.Equal(t, "xxxxx", padLeft("xxxxx", 4))
	assert.Equal(t, "xxxxx", padRight("xxxxx", 4))
}
