package parser

import (
	"fmt"

	"github.com/jamesainslie/pkgtree/pkg/pkgtree/types"
)

// collector gathers diagnostics in source order. Recording never fails and
// never aborts the parse on its own; the driver decides when a fatal kind
// stops the scan.
type collector struct {
	diags []types.Diagnostic
}

// record appends a diagnostic spanning length bytes at offset.
func (c *collector) record(kind types.DiagnosticKind, offset, length int, format string, args ...any) {
	c.diags = append(c.diags, types.Diagnostic{
		Offset:  offset,
		Length:  length,
		Message: fmt.Sprintf(format, args...),
		Kind:    kind,
	})
}
