// Package stream materialises a possibly-compressed manifest into a single
// in-memory buffer. Package archives ship their .MTREE either gzip- or
// zstd-compressed depending on the packaging tool's vintage; the parser
// itself never streams, so this package fully decompresses before handing
// the buffer over.
package stream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Magic byte prefixes for the supported compression formats.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Format identifies how a manifest buffer is encoded on disk.
type Format int

const (
	// FormatRaw is uncompressed manifest text.
	FormatRaw Format = iota
	// FormatGzip is gzip-compressed.
	FormatGzip
	// FormatZstd is zstd-compressed.
	FormatZstd
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatGzip:
		return "gzip"
	case FormatZstd:
		return "zstd"
	default:
		return "raw"
	}
}

// Detect sniffs the compression format from the leading magic bytes.
// Anything unrecognised is treated as raw text.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return FormatGzip
	case bytes.HasPrefix(data, zstdMagic):
		return FormatZstd
	default:
		return FormatRaw
	}
}

// Materialize returns the uncompressed manifest text for data, sniffing
// the compression format first. Raw input is returned as-is.
func Materialize(data []byte) ([]byte, Format, error) {
	format := Detect(data)
	switch format {
	case FormatGzip:
		text, err := gunzip(data)
		return text, format, err
	case FormatZstd:
		text, err := unzstd(data)
		return text, format, err
	default:
		return data, FormatRaw, nil
	}
}

func gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	defer r.Close()

	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing gzip stream: %w", err)
	}
	return text, nil
}

func unzstd(data []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening zstd stream: %w", err)
	}
	defer r.Close()

	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing zstd stream: %w", err)
	}
	return text, nil
}
