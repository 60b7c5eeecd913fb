package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_Format_BasicOutput(t *testing.T) {
	formatter := &JSONFormatter{}
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

	// Should be valid JSON
	var parsed map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	// Should have entries, stats, and meta sections
	assert.Contains(t, parsed, "entries")
	assert.Contains(t, parsed, "stats")
	assert.Contains(t, parsed, "meta")

	// Verify entries
	entries := parsed["entries"].([]interface{})
	assert.Len(t, entries, 2)

	entry1 := entries[0].(map[string]interface{})
	assert.Equal(t, "./usr/bin/zstd", entry1["path"])
	assert.Equal(t, "file", entry1["type"])
	assert.Equal(t, float64(1101248), entry1["size"])

	// Verify meta
	meta := parsed["meta"].(map[string]interface{})
	assert.Equal(t, "pkg.mtree", meta["source"])
	assert.Equal(t, "gzip", meta["compression"])
	assert.Equal(t, float64(1101248), meta["total_size"])
	assert.Equal(t, false, meta["truncated"])
}

func TestJSONFormatter_Format_EmptyResult(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, &Result{})
	require.NoError(t, err)

	var parsed map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	stats := parsed["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["entries"])
}

func TestJSONFormatter_Format_Diagnostics(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	result := &Result{
		Diagnostics: []DiagnosticInfo{
			{Offset: 10, Length: 3, Message: `unknown path property "foo"`, Severity: "warning"},
		},
		Stats:     ParseStats{Diagnostics: 1},
		Truncated: true,
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

	diags := parsed["diagnostics"].([]interface{})
	require.Len(t, diags, 1)
	diag := diags[0].(map[string]interface{})
	assert.Equal(t, float64(10), diag["offset"])
	assert.Equal(t, "warning", diag["severity"])

	meta := parsed["meta"].(map[string]interface{})
	assert.Equal(t, true, meta["truncated"])
}

func TestJSONFormatter_Format_Indented(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, &Result{})
	require.NoError(t, err)

	// Output should be indented for readability
	assert.Contains(t, buf.String(), "\n  ")
}

func TestJSONLFormatter_Format(t *testing.T) {
	formatter := &JSONLFormatter{}
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{
			{Path: "./a", Type: "dir"},
			{Path: "./b", Type: "file", Size: uptr(42)},
		},
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	// Each line is an independent JSON object
	for i, line := range lines {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %d", i)
	}

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "./a", first["path"])
}

func TestJSONLFormatter_Format_Empty(t *testing.T) {
	formatter := &JSONLFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, &Result{})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestFormatDurationString(t *testing.T) {
	assert.Equal(t, "", formatDurationString(0))
	assert.Equal(t, "5ms", formatDurationString(5*time.Millisecond))
	assert.Equal(t, "2s", formatDurationString(2*time.Second))
}
