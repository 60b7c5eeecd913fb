package main

import (
	"fmt"
	"os"

	"github.com/jamesainslie/pkgtree/pkg/pkgtree/parser"
	"github.com/jamesainslie/pkgtree/pkg/pkgtree/report"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Check a manifest for problems without printing entries",
	Long: `Lint parses the manifest and reports every problem found, with its
source position. The exit code is non-zero when any problem exists.`,
	Args: cobra.ExactArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

// runLint parses the manifest and reports diagnostics only.
func runLint(_ *cobra.Command, args []string) error {
	source, text, _, err := readManifest(args[0])
	if err != nil {
		return err
	}

	res := parser.Parse(string(text))
	if res.Ok() {
		if !getQuiet() {
			fmt.Printf("%s: no problems, %d entries\n", source, res.Manifest.Len())
		}
		return nil
	}

	renderer := report.New(string(text), source)
	renderer.Color = colorEnabled()
	fmt.Fprint(os.Stderr, renderer.Render(res.Diagnostics))

	warnings, fatals := severityCounts(res.Diagnostics)
	switch {
	case fatals > 0:
		fmt.Fprintf(os.Stderr, "\n%s: %d warnings, %d errors (parse truncated)\n",
			source, warnings, fatals)
	default:
		fmt.Fprintf(os.Stderr, "\n%s: %d warnings\n", source, warnings)
	}

	return fmt.Errorf("%w: %s", ErrManifestProblems, source)
}
