package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFormatter_Format_DefaultTemplate(t *testing.T) {
	formatter := NewTemplateFormatter(defaultTemplate)
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{
			{Path: "./usr", Type: "dir"},
			{Path: "./usr/bin/zstd", Type: "file"},
		},
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	assert.Equal(t, "dir\t./usr\nfile\t./usr/bin/zstd\n", buf.String())
}

func TestTemplateFormatter_Format_CustomTemplate(t *testing.T) {
	formatter := NewTemplateFormatter(`{{range .Entries}}{{.Path}}{{"\n"}}{{end}}`)
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{{Path: "./a"}, {Path: "./b"}},
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)
	assert.Equal(t, "./a\n./b\n", buf.String())
}

func TestTemplateFormatter_Format_BytesFunction(t *testing.T) {
	formatter := NewTemplateFormatter(`{{range .Entries}}{{bytes .Size}}{{end}}`)
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{{Path: "./a", Size: uptr(1536)}},
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)
	assert.Equal(t, "1.5 KiB", buf.String())
}

func TestTemplateFormatter_Format_BytesFunctionNilSize(t *testing.T) {
	formatter := NewTemplateFormatter(`{{range .Entries}}[{{bytes .Size}}]{{end}}`)
	var buf bytes.Buffer

	result := &Result{Entries: []EntryInfo{{Path: "./a"}}}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)
	assert.Equal(t, "[]", buf.String())
}

func TestTemplateFormatter_Format_DateFunction(t *testing.T) {
	formatter := NewTemplateFormatter(`{{range .Entries}}{{date .ModTime "2006-01-02"}}{{end}}`)
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{
			{Path: "./a", ModTime: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01", buf.String())
}

func TestTemplateFormatter_Format_DateFunctionZeroTime(t *testing.T) {
	formatter := NewTemplateFormatter(`{{range .Entries}}[{{date .ModTime "2006-01-02"}}]{{end}}`)
	var buf bytes.Buffer

	result := &Result{Entries: []EntryInfo{{Path: "./a"}}}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)
	assert.Equal(t, "[]", buf.String())
}

func TestTemplateFormatter_Format_TotalSize(t *testing.T) {
	formatter := NewTemplateFormatter(`{{.TotalSize}}`)
	var buf bytes.Buffer

	result := &Result{
		Entries: []EntryInfo{
			{Path: "./a", Size: uptr(100)},
			{Path: "./b", Size: uptr(28)},
		},
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)
	assert.Equal(t, "128", buf.String())
}

func TestTemplateFormatter_Format_InvalidTemplate(t *testing.T) {
	formatter := NewTemplateFormatter(`{{range`)
	var buf bytes.Buffer

	err := formatter.Format(&buf, &Result{})
	assert.Error(t, err)
}

func TestTemplateFormatter_SetTemplate(t *testing.T) {
	formatter := NewTemplateFormatter(`old`)
	var buf bytes.Buffer

	require.NoError(t, formatter.Format(&buf, &Result{}))
	assert.Equal(t, "old", buf.String())

	formatter.SetTemplate(`new`)
	buf.Reset()
	require.NoError(t, formatter.Format(&buf, &Result{}))
	assert.Equal(t, "new", buf.String())
}
