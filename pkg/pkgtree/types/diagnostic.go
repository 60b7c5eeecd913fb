package types

// DiagnosticKind classifies a parse problem.
type DiagnosticKind int

// Diagnostic kinds, from line-level recognition failures down to
// field-level value errors. UnterminatedDirective is the only fatal kind.
const (
	// UnrecognizedLine marks a line that is not a header, /set, /unset
	// or path entry.
	UnrecognizedLine DiagnosticKind = iota

	// MisplacedHeader marks a `#mtree` header after the first statement.
	MisplacedHeader

	// UnknownKey marks a key=value field whose key is not valid for the
	// directive it appears on.
	UnknownKey

	// InvalidNumber marks a uid, gid, size or time value that is not a
	// non-negative base-10 integer.
	InvalidNumber

	// InvalidOctalMode marks a mode value that is not 1-4 octal digits.
	InvalidOctalMode

	// InvalidDigestLength marks a digest value that is not exactly
	// 64 hex characters.
	InvalidDigestLength

	// InvalidType marks a type value outside {dir, file, link}.
	InvalidType

	// UnterminatedDirective marks a directive that runs to end of input
	// without its trailing newline. The grammar cannot resynchronise past
	// it, so the parse stops.
	UnterminatedDirective
)

var diagnosticKindNames = map[DiagnosticKind]string{
	UnrecognizedLine:      "unrecognized line",
	MisplacedHeader:       "misplaced header",
	UnknownKey:            "unknown key",
	InvalidNumber:         "invalid number",
	InvalidOctalMode:      "invalid octal mode",
	InvalidDigestLength:   "invalid digest length",
	InvalidType:           "invalid type",
	UnterminatedDirective: "unterminated directive",
}

// String returns a human-readable name for the kind.
func (k DiagnosticKind) String() string {
	if name, ok := diagnosticKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Fatal reports whether the kind aborts the parse. All kinds except
// UnterminatedDirective are recoverable: parsing continues at the next
// field or line so the caller sees every problem, not just the first.
func (k DiagnosticKind) Fatal() bool {
	return k == UnterminatedDirective
}

// Diagnostic is a structured, position-tagged description of a parse
// problem. Offset and Length span the offending bytes in the original
// buffer; together with Message they are the entire contract a report
// renderer needs.
type Diagnostic struct {
	// Offset is the byte index into the original input buffer.
	Offset int `json:"offset" yaml:"offset"`

	// Length is the span length in bytes.
	Length int `json:"length" yaml:"length"`

	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`

	// Kind classifies the problem.
	Kind DiagnosticKind `json:"kind" yaml:"kind"`
}

// Fatal reports whether this diagnostic aborted the parse.
func (d Diagnostic) Fatal() bool { return d.Kind.Fatal() }
