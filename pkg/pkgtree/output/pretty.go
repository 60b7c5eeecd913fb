package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// PrettyFormatter formats output with colors and styling using lipgloss.
// It produces a visually appealing output suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	// Build header
	header := f.formatHeader(r)
	w.WriteString(header)
	w.WriteString("\n")

	// Build entry table
	table := f.formatTable(r)
	w.WriteString(table)

	// Build footer
	footer := f.formatFooter(r)
	w.WriteString(footer)

	return nil
}

// formatHeader builds the header box with source metadata.
func (f *PrettyFormatter) formatHeader(r *Result) string {
	var lines []string

	// Source line
	sourceLabel := LabelStyle.Render("Source:")
	sourceValue := ValueStyle.Render(r.Source)
	lines = append(lines, fmt.Sprintf("%s %s", sourceLabel, sourceValue))

	// Compression and parse info line
	var infoParts []string

	if r.Compression != "" && r.Compression != "raw" {
		compLabel := LabelStyle.Render("Compression:")
		compValue := MutedStyle.Render(r.Compression)
		infoParts = append(infoParts, fmt.Sprintf("%s %s", compLabel, compValue))
	}

	parsedLabel := LabelStyle.Render("Parsed:")
	parsedValue := ValueStyle.Render(fmt.Sprintf("%d entries in %s",
		r.Stats.Entries, formatDuration(r.Stats.Duration)))
	infoParts = append(infoParts, fmt.Sprintf("%s %s", parsedLabel, parsedValue))

	infoParts = append(infoParts, f.formatProblemStatus(r))

	lines = append(lines, strings.Join(infoParts, "  "))

	// Truncation notice
	if r.Truncated {
		truncatedStyle := ErrorStyle.Bold(true)
		lines = append(lines, truncatedStyle.Render("Parse stopped at a fatal error; entries are partial"))
	}

	content := strings.Join(lines, "\n")
	return HeaderBox.Render(content)
}

// formatProblemStatus returns a styled string summarising diagnostics.
func (f *PrettyFormatter) formatProblemStatus(r *Result) string {
	if r.Stats.Diagnostics == 0 {
		return MutedStyle.Render("problems: none")
	}
	return WarningStyle.Render(fmt.Sprintf("problems: %d", r.Stats.Diagnostics))
}

// formatTable builds the entry table with TYPE, MODE, SIZE and PATH columns.
func (f *PrettyFormatter) formatTable(r *Result) string {
	if len(r.Entries) == 0 {
		return MutedStyle.Render("  No entries in manifest\n")
	}

	var sb strings.Builder

	// Column headers
	typeHeader := TableHeaderStyle.Render("TYPE")
	modeHeader := TableHeaderStyle.Render("MODE")
	sizeHeader := TableHeaderStyle.Render("SIZE")
	pathHeader := TableHeaderStyle.Render("PATH")
	sb.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n", typeHeader, modeHeader, sizeHeader, pathHeader))

	// Calculate max size width for alignment
	maxSizeWidth := 8
	for _, e := range r.Entries {
		if len(e.SizeHuman) > maxSizeWidth {
			maxSizeWidth = len(e.SizeHuman)
		}
	}

	// Entry rows
	for _, e := range r.Entries {
		typeStr := TypeStyle.Render(padRight(orDash(e.Type), 4))
		modeStr := ValueStyle.Render(padRight(orDash(e.Mode), 4))
		sizeStr := SizeStyle.Render(padLeft(orDash(e.SizeHuman), maxSizeWidth))
		pathStr := PathStyle.Render(e.Path)
		sb.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n", typeStr, modeStr, sizeStr, pathStr))
	}

	return sb.String()
}

// formatFooter builds the footer box with summary information.
func (f *PrettyFormatter) formatFooter(r *Result) string {
	var parts []string

	// Entry count
	entryCountLabel := LabelStyle.Render("Entries:")
	entryCountValue := ValueStyle.Render(fmt.Sprintf("%d", r.Stats.Entries))
	parts = append(parts, fmt.Sprintf("%s %s", entryCountLabel, entryCountValue))

	// Total size
	totalSizeLabel := LabelStyle.Render("Total:")
	totalSizeValue := SizeStyle.Render(humanize.IBytes(r.TotalSize()))
	parts = append(parts, fmt.Sprintf("%s %s", totalSizeLabel, totalSizeValue))

	// Hints
	hint := MutedStyle.Render("Use -o plain for unformatted output")
	parts = append(parts, hint)

	content := strings.Join(parts, "  ")
	return FooterBox.Render(content)
}

// padLeft pads a string with spaces on the left to achieve the desired width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// padRight pads a string with spaces on the right to achieve the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// formatDuration formats a time.Duration as a human-friendly string.
func formatDuration(d time.Duration) string {
	sec := d.Seconds()
	if sec < 1 {
		return fmt.Sprintf("%.0fms", sec*1000)
	}
	if sec < 60 {
		return fmt.Sprintf("%.1fs", sec)
	}
	minutes := int(sec) / 60
	seconds := int(sec) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
