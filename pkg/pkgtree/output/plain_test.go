package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFormatter_Format_BasicOutput(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{
			{Path: "./usr/bin/zstd", Type: "file", Mode: "0755", SizeHuman: "1.1 MiB"},
			{Path: "./usr/lib", Type: "dir", Mode: "0755"},
		},
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	output := buf.String()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 3)

	// Header row
	assert.Contains(t, lines[0], "TYPE")
	assert.Contains(t, lines[0], "MODE")
	assert.Contains(t, lines[0], "SIZE")
	assert.Contains(t, lines[0], "PATH")

	// Data rows keep manifest order
	assert.Contains(t, lines[1], "./usr/bin/zstd")
	assert.Contains(t, lines[1], "1.1 MiB")
	assert.Contains(t, lines[2], "./usr/lib")
}

func TestPlainFormatter_Format_UnsetFieldsDashed(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{{Path: "./opt"}},
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	// Type, mode and size columns all fall back to "-"
	assert.Equal(t, 3, strings.Count(lines[1], "-"))
}

func TestPlainFormatter_Format_NoStyling(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{{Path: "./a", Type: "file"}},
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	// No ANSI escape sequences
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPlainFormatter_Format_Empty(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, &Result{})
	require.NoError(t, err)

	// Just the header
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", orDash(""))
	assert.Equal(t, "file", orDash("file"))
}
