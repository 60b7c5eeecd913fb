package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jamesainslie/pkgtree/pkg/pkgtree/logging"
	"github.com/jamesainslie/pkgtree/pkg/pkgtree/output"
	"github.com/jamesainslie/pkgtree/pkg/pkgtree/parser"
	"github.com/jamesainslie/pkgtree/pkg/pkgtree/report"
	"github.com/jamesainslie/pkgtree/pkg/pkgtree/stream"
	"github.com/jamesainslie/pkgtree/pkg/pkgtree/types"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrManifestProblems is returned when diagnostics make the run fail:
// always for a fatal diagnostic, for any diagnostic under --strict.
var ErrManifestProblems = errors.New("manifest has problems")

// runParse is the main parse command handler.
func runParse(_ *cobra.Command, args []string) error {
	logger := logging.Get("cli")

	source, text, format, err := readManifest(args[0])
	if err != nil {
		return err
	}
	printVerbose("Read %s (%s, %d bytes decompressed)", source, format, len(text))

	start := time.Now()
	res := parser.Parse(string(text))
	elapsed := time.Since(start)

	logger.Info("parse finished",
		"source", source,
		"entries", res.Manifest.Len(),
		"diagnostics", len(res.Diagnostics),
		"duration", elapsed)

	// Format entries to stdout
	result := buildResult(source, format, res, elapsed)

	formatter, err := selectFormatter()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, result); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	fmt.Print(buf.String())

	// Render diagnostics to stderr
	if len(res.Diagnostics) > 0 && !getQuiet() {
		renderer := report.New(string(text), source)
		renderer.Color = colorEnabled()
		fmt.Fprint(os.Stderr, renderer.Render(res.Diagnostics))
	}

	if res.Fatal() || (viper.GetBool("strict") && !res.Ok()) {
		return fmt.Errorf("%w: %s", ErrManifestProblems, source)
	}
	return nil
}

// readManifest reads and decompresses a manifest file.
func readManifest(path string) (source string, text []byte, format stream.Format, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, stream.FormatRaw, fmt.Errorf("reading manifest: %w", err)
	}

	text, format, err = stream.Materialize(data)
	if err != nil {
		return "", nil, format, fmt.Errorf("decompressing %s: %w", path, err)
	}
	return path, text, format, nil
}

// selectFormatter picks the formatter from flags and config, wiring a
// custom template string into the template formatter when given.
func selectFormatter() (output.Formatter, error) {
	name := viper.GetString("output")

	formatter, err := output.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%v (available: %v)", err, output.Available())
	}

	if tmplStr := viper.GetString("template"); tmplStr != "" {
		tf, ok := formatter.(*output.TemplateFormatter)
		if !ok {
			return nil, fmt.Errorf("--template requires -o template, not %q", name)
		}
		tf.SetTemplate(tmplStr)
	}
	return formatter, nil
}

// buildResult converts a parse result into the output package's model.
func buildResult(source string, format stream.Format, res *parser.Result, elapsed time.Duration) *output.Result {
	entries := make([]output.EntryInfo, 0, res.Manifest.Len())
	for _, e := range res.Manifest.Entries {
		info := output.EntryInfo{
			Path:      e.Path,
			Type:      string(e.Type),
			Mode:      e.Mode,
			Size:      e.Size,
			SizeHuman: e.HumanSize(),
			Link:      e.Link,
			Digest:    e.Digest,
		}
		if e.Time != nil {
			info.ModTime = time.Unix(*e.Time, 0).UTC()
		}
		entries = append(entries, info)
	}

	diags := make([]output.DiagnosticInfo, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		severity := "warning"
		if d.Fatal() {
			severity = "error"
		}
		diags = append(diags, output.DiagnosticInfo{
			Offset:   d.Offset,
			Length:   d.Length,
			Message:  d.Message,
			Severity: severity,
		})
	}

	return &output.Result{
		Entries:     entries,
		Diagnostics: diags,
		Stats: output.ParseStats{
			Entries:     res.Manifest.Len(),
			Diagnostics: len(res.Diagnostics),
			Duration:    elapsed,
		},
		Source:      source,
		Compression: format.String(),
		Truncated:   res.Fatal(),
	}
}

// colorEnabled decides colored diagnostic rendering from the color mode
// and whether stderr is a terminal.
func colorEnabled() bool {
	switch viper.GetString("color") {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd())
	}
}

// severityCounts tallies diagnostics by severity for lint summaries.
func severityCounts(diags []types.Diagnostic) (warnings, fatals int) {
	for _, d := range diags {
		if d.Fatal() {
			fatals++
		} else {
			warnings++
		}
	}
	return warnings, fatals
}
