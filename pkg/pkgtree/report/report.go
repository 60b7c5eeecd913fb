// Package report renders parse diagnostics as human-readable terminal
// text: the offending source line with a caret span underneath, located by
// line and column.
//
// The renderer depends only on the (offset, length, message) triple of
// each diagnostic plus the original source buffer, never on parser
// internals.
package report

import (
	"fmt"
	"strings"

	"github.com/jamesainslie/pkgtree/pkg/pkgtree/types"
)

// Renderer formats diagnostics against one source buffer.
type Renderer struct {
	// Source is the original manifest text the diagnostics refer to.
	Source string

	// Name labels the source in location lines, typically the file path.
	Name string

	// Color enables lipgloss styling. Plain text is emitted otherwise.
	Color bool
}

// New returns a renderer for the given source buffer.
func New(source, name string) *Renderer {
	return &Renderer{Source: source, Name: name}
}

// Render formats every diagnostic, one block per diagnostic, separated by
// blank lines.
func (r *Renderer) Render(diags []types.Diagnostic) string {
	var sb strings.Builder
	for i, d := range diags {
		if i > 0 {
			sb.WriteByte('\n')
		}
		r.renderOne(&sb, d)
	}
	return sb.String()
}

// renderOne writes a single diagnostic block:
//
//	error: unknown path property "foo"
//	  --> pkg.mtree:3:9
//	   3 | ./bin/x foo=bar mode=0755
//	     |         ^^^
func (r *Renderer) renderOne(sb *strings.Builder, d types.Diagnostic) {
	line, col := r.locate(d.Offset)
	text := r.lineText(d.Offset)

	severity := "warning"
	if d.Fatal() {
		severity = "error"
	}

	label := fmt.Sprintf("%s: %s", severity, d.Message)
	if r.Color {
		style := warningStyle
		if d.Fatal() {
			style = errorStyle
		}
		label = style.Render(severity) + ": " + messageStyle.Render(d.Message)
	}
	sb.WriteString(label)
	sb.WriteByte('\n')

	gutter := fmt.Sprintf("%4d", line)
	location := fmt.Sprintf("  --> %s:%d:%d", r.Name, line, col)
	if r.Color {
		location = mutedStyle.Render(location)
	}
	sb.WriteString(location)
	sb.WriteByte('\n')

	fmt.Fprintf(sb, "%s | %s\n", gutter, text)

	carets := caretSpan(col, d.Length, len(text))
	if r.Color {
		carets = errorStyle.Render(carets)
	}
	fmt.Fprintf(sb, "%s | %s%s\n", strings.Repeat(" ", len(gutter)),
		strings.Repeat(" ", col-1), carets)
}

// locate converts a byte offset into a 1-based line and column.
func (r *Renderer) locate(offset int) (line, col int) {
	if offset > len(r.Source) {
		offset = len(r.Source)
	}
	line, col = 1, 1
	for i := 0; i < offset; i++ {
		if r.Source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// lineText returns the full text of the line containing offset, without
// its terminator.
func (r *Renderer) lineText(offset int) string {
	if offset > len(r.Source) {
		offset = len(r.Source)
	}
	start := strings.LastIndexByte(r.Source[:offset], '\n') + 1
	end := strings.IndexByte(r.Source[start:], '\n')
	if end < 0 {
		end = len(r.Source)
	} else {
		end += start
	}
	return strings.TrimSuffix(r.Source[start:end], "\r")
}

// caretSpan sizes the caret marker: at least one caret, clipped to the
// visible line so zero-length spans and spans past the terminator still
// render sensibly.
func caretSpan(col, length, lineLen int) string {
	if length < 1 {
		length = 1
	}
	if max := lineLen - (col - 1); length > max && max > 0 {
		length = max
	}
	return strings.Repeat("^", length)
}
