package parser

import (
	"strings"

	"github.com/jamesainslie/pkgtree/pkg/pkgtree/scan"
	"github.com/jamesainslie/pkgtree/pkg/pkgtree/types"
)

// Directive prefixes recognised by the grammar.
const (
	headerToken = "#mtree"
	setToken    = "/set"
	unsetToken  = "/unset"
)

// ParseStatement classifies one line and parses its fields into a typed
// statement. The returned statement is nil when the line contributes none
// (blank or unrecognised lines). Field-level problems are reported as
// diagnostics while the rest of the line still parses, so a single bad
// value never discards its neighbours.
func ParseStatement(ln scan.Line) (types.Statement, []types.Diagnostic) {
	var diags collector
	st := parseStatement(ln, &diags)
	return st, diags.diags
}

// parseStatement dispatches on the first field of the line:
// `#mtree` header, `/set`, `/unset`, a `.`-prefixed path entry, or an
// unrecognised line.
func parseStatement(ln scan.Line, diags *collector) types.Statement {
	fields := ln.Fields()
	if len(fields) == 0 {
		diags.record(types.UnrecognizedLine, ln.Offset, len(ln.Text), "blank line")
		return nil
	}

	head := fields[0]
	switch {
	case head.Text == headerToken:
		// The header is the bare token; the resolver rejects a header
		// that is not the first statement.
		if len(fields) > 1 {
			extra := fields[1]
			diags.record(types.UnrecognizedLine, extra.Offset,
				fields[len(fields)-1].End()-extra.Offset,
				"%s header takes no fields", headerToken)
		}
		return types.Init{}
	case head.Text == setToken:
		return parseSet(fields[1:], diags)
	case head.Text == unsetToken:
		return parseUnset(fields[1:], diags)
	case head.Text[0] == '.':
		return parsePath(fields, diags)
	default:
		diags.record(types.UnrecognizedLine, ln.Offset, len(ln.Text),
			"expected %s, %s, %s or a path entry", headerToken, setToken, unsetToken)
		return nil
	}
}

// parseSet parses the key=value fields of a /set directive, restricted to
// the default-property keys uid, gid, mode and type. Fields that fail to
// parse are dropped individually; the directive still produces a partial
// Set from the fields that did parse.
func parseSet(fields []scan.Field, diags *collector) types.Set {
	var d types.Defaults
	for _, f := range fields {
		kv, ok := splitKeyValue(f)
		if !ok {
			diags.record(types.UnknownKey, f.Offset, len(f.Text),
				"expected key=value, got %q", f.Text)
			continue
		}
		// Last occurrence of a repeated key wins.
		switch types.DefaultKey(kv.key) {
		case types.KeyUID:
			if id, ok := parseID(kv, diags); ok {
				d.UID = &id
			}
		case types.KeyGID:
			if id, ok := parseID(kv, diags); ok {
				d.GID = &id
			}
		case types.KeyMode:
			if mode, ok := parseMode(kv, diags); ok {
				d.Mode = mode
			}
		case types.KeyType:
			if pt, ok := parseType(kv, diags); ok {
				d.Type = pt
			}
		default:
			diags.record(types.UnknownKey, kv.keyOff, len(kv.key),
				"unknown default property %q", kv.key)
		}
	}
	return types.Set{Defaults: d}
}

// parseUnset parses the bare keys of a /unset directive. A directive
// written with no fields clears the whole scope; one whose fields all fail
// to parse clears nothing, since each bad field is scoped to itself.
func parseUnset(fields []scan.Field, diags *collector) types.Unset {
	var keys []types.DefaultKey
	for _, f := range fields {
		if strings.ContainsRune(f.Text, '=') {
			diags.record(types.UnknownKey, f.Offset, len(f.Text),
				"expected a bare key, got %q", f.Text)
			continue
		}
		if !types.IsDefaultKey(f.Text) {
			diags.record(types.UnknownKey, f.Offset, len(f.Text),
				"unknown default property %q", f.Text)
			continue
		}
		keys = append(keys, types.DefaultKey(f.Text))
	}
	return types.Unset{Keys: keys, Clear: len(fields) == 0}
}

// Path-property keys valid on a path entry line.
const (
	propMode   = "mode"
	propType   = "type"
	propSize   = "size"
	propLink   = "link"
	propDigest = "sha256digest"
	propTime   = "time"
)

// parsePath parses a path entry: the path token followed by key=value
// property fields. Unknown keys and bad values are diagnostics; the entry
// is still produced from the fields that parsed.
func parsePath(fields []scan.Field, diags *collector) types.Path {
	p := types.Path{Path: canonicalPath(fields[0].Text)}
	for _, f := range fields[1:] {
		kv, ok := splitKeyValue(f)
		if !ok {
			diags.record(types.UnknownKey, f.Offset, len(f.Text),
				"expected key=value, got %q", f.Text)
			continue
		}
		switch kv.key {
		case propMode:
			if mode, ok := parseMode(kv, diags); ok {
				p.Props.Mode = mode
			}
		case propType:
			if pt, ok := parseType(kv, diags); ok {
				p.Props.Type = pt
			}
		case propSize:
			if n, ok := parseSize(kv, diags); ok {
				p.Props.Size = &n
			}
		case propLink:
			p.Props.Link = kv.value
		case propDigest:
			if digest, ok := parseDigest(kv, diags); ok {
				p.Props.Digest = digest
			}
		case propTime:
			if secs, ok := parseTime(kv, diags); ok {
				p.Props.Time = &secs
			}
		default:
			diags.record(types.UnknownKey, kv.keyOff, len(kv.key),
				"unknown path property %q", kv.key)
		}
	}
	return p
}

// canonicalPath roots a path token at "./". Manifests normally spell paths
// that way already; the shorthand ".name" is accepted and canonicalised so
// equal paths compare equal.
func canonicalPath(p string) string {
	if p == "." || strings.HasPrefix(p, "./") {
		return p
	}
	return "./" + p[1:]
}
