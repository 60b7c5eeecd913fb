package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTSVFormatter_Format(t *testing.T) {
	formatter := &TSVFormatter{}
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{
			{Path: "./usr/bin/zstd", Type: "file", Mode: "0755", Size: uptr(1101248)},
			{Path: "./opt"},
		},
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "TYPE\tMODE\tSIZE\tPATH", lines[0])
	assert.Equal(t, "file\t0755\t1101248\t./usr/bin/zstd", lines[1])
	// Unset fields stay empty in machine-readable output
	assert.Equal(t, "\t\t\t./opt", lines[2])
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{
			{Path: "./usr/share/a, b", Type: "file", Mode: "0644", Size: uptr(10)},
		},
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	// Output must parse back with encoding/csv, quoting included
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"TYPE", "MODE", "SIZE", "PATH"}, records[0])
	assert.Equal(t, []string{"file", "0644", "10", "./usr/share/a, b"}, records[1])
}

func TestSizeColumn(t *testing.T) {
	assert.Equal(t, "", sizeColumn(EntryInfo{}))
	assert.Equal(t, "0", sizeColumn(EntryInfo{Size: uptr(0)}))
	assert.Equal(t, "1101248", sizeColumn(EntryInfo{Size: uptr(1101248)}))
}
