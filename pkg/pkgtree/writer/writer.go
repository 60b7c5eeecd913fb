// Package writer renders a parsed manifest back to .MTREE text.
//
// The output is fully explicit: every entry carries all of its resolved
// fields on its own line, so no /set or /unset directives are emitted and
// re-parsing the rendered text reproduces the same manifest.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/jamesainslie/pkgtree/pkg/pkgtree/types"
)

// Write renders m to w as manifest text, one path line per entry, headed
// by the `#mtree` marker.
func Write(w io.Writer, m *types.Manifest) error {
	var sb strings.Builder
	sb.WriteString("#mtree\n")
	for i := range m.Entries {
		writeEntry(&sb, &m.Entries[i])
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Render returns the manifest text as a string.
func Render(m *types.Manifest) string {
	var sb strings.Builder
	sb.WriteString("#mtree\n")
	for i := range m.Entries {
		writeEntry(&sb, &m.Entries[i])
	}
	return sb.String()
}

// writeEntry emits one path line. Field order is fixed so output is
// deterministic: type, mode, size, link, sha256digest, time.
func writeEntry(sb *strings.Builder, e *types.Entry) {
	sb.WriteString(e.Path)
	if e.Type != "" {
		fmt.Fprintf(sb, " type=%s", e.Type)
	}
	if e.Mode != "" {
		fmt.Fprintf(sb, " mode=%s", e.Mode)
	}
	if e.Size != nil {
		fmt.Fprintf(sb, " size=%d", *e.Size)
	}
	if e.Link != "" {
		fmt.Fprintf(sb, " link=%s", e.Link)
	}
	if e.Digest != "" {
		fmt.Fprintf(sb, " sha256digest=%s", e.Digest)
	}
	if e.Time != nil {
		// The format requires a fractional suffix; the parser discards
		// it, so a zero fraction round-trips.
		fmt.Fprintf(sb, " time=%d.0", *e.Time)
	}
	sb.WriteByte('\n')
}
