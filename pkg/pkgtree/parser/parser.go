// Package parser turns .MTREE manifest text into an ordered list of
// resolved path entries plus a list of structured diagnostics.
//
// The grammar is line oriented and context sensitive: /set and /unset
// directives mutate an ambient default scope that silently fills in the
// attributes of later path entries. Parsing is tolerant by design — every
// problem short of an unterminated directive is recorded as a diagnostic
// and the parse continues at the next field or line, so a slightly
// malformed manifest still yields the best possible partial result.
//
// Basic usage:
//
//	res := parser.Parse(string(buf))
//	for _, e := range res.Manifest.Entries {
//		fmt.Println(e.Path, e.Type, e.Mode)
//	}
//	for _, d := range res.Diagnostics {
//		fmt.Printf("%d+%d: %s\n", d.Offset, d.Length, d.Message)
//	}
package parser

import (
	"strings"

	"github.com/jamesainslie/pkgtree/pkg/pkgtree/scan"
	"github.com/jamesainslie/pkgtree/pkg/pkgtree/types"
)

// Result is the outcome of parsing one manifest buffer: the ordered
// manifest of resolved entries and every diagnostic encountered, in source
// order. On a fatal diagnostic the manifest holds the entries resolved
// before the failure.
type Result struct {
	Manifest    types.Manifest
	Diagnostics []types.Diagnostic
}

// Ok reports whether the parse produced no diagnostics at all.
func (r *Result) Ok() bool { return len(r.Diagnostics) == 0 }

// Fatal reports whether the parse was aborted by a fatal diagnostic.
func (r *Result) Fatal() bool {
	return len(r.Diagnostics) > 0 && r.Diagnostics[len(r.Diagnostics)-1].Fatal()
}

// Parse parses a complete manifest buffer. It owns all state for the
// invocation: two concurrent parses of two buffers share nothing.
func Parse(src string) *Result {
	p := &parser{sc: scan.New(src)}
	p.run()
	return &Result{
		Manifest:    p.manifest,
		Diagnostics: p.diags.diags,
	}
}

// parser threads the scanner, the ambient scope, the diagnostics collector
// and the growing manifest through one linear scan of the input.
type parser struct {
	sc       *scan.Scanner
	scope    defaultScope
	diags    collector
	manifest types.Manifest

	// seen flips once any statement has been produced; the header is
	// only legal before that.
	seen bool
}

func (p *parser) run() {
	for {
		ln, ok := p.sc.Next()
		if !ok {
			return
		}
		if !ln.Terminated && strings.TrimSpace(ln.Text) != "" {
			// A directive running into end of input has no trailing
			// delimiter; the grammar cannot resynchronise past it.
			p.diags.record(types.UnterminatedDirective, ln.Offset, len(ln.Text),
				"directive runs to end of input without a newline")
			return
		}
		st := parseStatement(ln, &p.diags)
		if st == nil {
			continue
		}
		p.apply(st, ln)
	}
}

// apply performs the resolver transition for one statement. The switch is
// total over the statement sum: adding a directive kind without handling
// it here is a compile-time visible omission.
func (p *parser) apply(st types.Statement, ln scan.Line) {
	switch st := st.(type) {
	case types.Init:
		if p.seen {
			p.diags.record(types.MisplacedHeader, ln.Offset, len(headerToken),
				"%s header must be the first statement", headerToken)
		}
	case types.Set:
		p.scope.set(st.Defaults)
	case types.Unset:
		p.scope.unset(st)
	case types.Path:
		p.manifest.Entries = append(p.manifest.Entries, p.scope.resolve(st))
	}
	p.seen = true
}
