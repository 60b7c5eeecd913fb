// Package types provides the core data model for pkgtree: the statement
// kinds recognised in an .MTREE manifest, the resolved entry produced for
// each path line, and the diagnostic records emitted for malformed input.
package types

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// PathType classifies what kind of filesystem object a path entry describes.
type PathType string

const (
	// TypeDir marks a directory entry.
	TypeDir PathType = "dir"
	// TypeFile marks a regular file entry.
	TypeFile PathType = "file"
	// TypeLink marks a symbolic link entry.
	TypeLink PathType = "link"
)

// ErrInvalidPathType indicates a type value outside {dir, file, link}.
var ErrInvalidPathType = errors.New("invalid path type")

// ParsePathType parses a type value from a manifest field.
// Unrecognised values are an error, never a default fallback.
func ParsePathType(s string) (PathType, error) {
	switch s {
	case "dir":
		return TypeDir, nil
	case "file":
		return TypeFile, nil
	case "link":
		return TypeLink, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPathType, s)
	}
}

// DefaultKey names a property that /set and /unset directives may adjust.
type DefaultKey string

// The four keys permitted in the ambient default scope.
const (
	KeyUID  DefaultKey = "uid"
	KeyGID  DefaultKey = "gid"
	KeyMode DefaultKey = "mode"
	KeyType DefaultKey = "type"
)

// DefaultKeys lists every valid default-scope key.
var DefaultKeys = []DefaultKey{KeyUID, KeyGID, KeyMode, KeyType}

// IsDefaultKey reports whether s names a default-scope property.
func IsDefaultKey(s string) bool {
	switch DefaultKey(s) {
	case KeyUID, KeyGID, KeyMode, KeyType:
		return true
	}
	return false
}

// Defaults is the payload of a /set directive and the shape of the ambient
// default scope. Zero values mean the property is not set: uid and gid use
// pointers because 0 is a legitimate id, mode and type use the empty string.
type Defaults struct {
	// UID is the owning user id.
	UID *uint64

	// GID is the owning group id.
	GID *uint64

	// Mode is the permission mode as the raw octal digit string from the
	// source (e.g. "0644"), kept textual for byte-exact round-trips.
	Mode string

	// Type is the path type default.
	Type PathType
}

// IsZero reports whether no property is set.
func (d Defaults) IsZero() bool {
	return d.UID == nil && d.GID == nil && d.Mode == "" && d.Type == ""
}

// Properties is the set of explicit fields on one path line. As with
// Defaults, zero values mean the field was absent; Size and Time use
// pointers because 0 is a legitimate value for both.
type Properties struct {
	// Mode is the permission mode as the raw octal digit string.
	Mode string

	// Type is the path type.
	Type PathType

	// Size is the file size in bytes.
	Size *uint64

	// Link is the symlink target, an arbitrary non-whitespace string.
	Link string

	// Digest is the hex SHA-256 digest of the file contents
	// (64 hex characters).
	Digest string

	// Time is the modification time in whole seconds since the epoch.
	// The manifest format carries a fractional suffix which is discarded
	// during parsing.
	Time *int64
}

// Statement is one semantically meaningful manifest line. It is a closed
// sum: the concrete types are Init, Set, Unset and Path, and consumers
// switch exhaustively over them.
type Statement interface {
	stmt()
}

// Init is the `#mtree` header line. It may appear at most once and must be
// the first statement; the resolver enforces that, not the grammar.
type Init struct{}

// Set is a `/set` directive carrying default properties to merge into the
// ambient scope.
type Set struct {
	Defaults Defaults
}

// Unset is a `/unset` directive. Clear is set only when the directive was
// written with no fields at all, which clears the entire ambient scope; a
// directive whose fields all failed to parse clears nothing.
type Unset struct {
	Keys  []DefaultKey
	Clear bool
}

// Path is a path entry line: the path token plus its explicit properties.
type Path struct {
	Path  string
	Props Properties
}

func (Init) stmt()  {}
func (Set) stmt()   {}
func (Unset) stmt() {}
func (Path) stmt()  {}

// Entry is a fully resolved path entry: the ambient defaults in force when
// the path line was encountered, merged with the line's explicit fields
// (explicit always wins). Entries are immutable once produced.
//
// Only mode and type are carried over from the ambient scope; uid and gid
// are default-only properties with no counterpart on path lines.
type Entry struct {
	// Path is the entry path as written in the manifest, rooted at "./".
	Path string `json:"path" yaml:"path"`

	// Type is the path type, or "" when set by neither scope nor line.
	Type PathType `json:"type,omitempty" yaml:"type,omitempty"`

	// Mode is the raw octal mode string, or "" when unset.
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Size is the file size in bytes, or nil when unset.
	Size *uint64 `json:"size,omitempty" yaml:"size,omitempty"`

	// Link is the symlink target, or "" when unset.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`

	// Digest is the hex SHA-256 digest, or "" when unset.
	Digest string `json:"sha256digest,omitempty" yaml:"sha256digest,omitempty"`

	// Time is the modification time in seconds since the epoch,
	// or nil when unset.
	Time *int64 `json:"time,omitempty" yaml:"time,omitempty"`
}

// HumanSize returns the entry size formatted with binary (IEC) units,
// or "" when the size is unset.
func (e *Entry) HumanSize() string {
	if e.Size == nil {
		return ""
	}
	return humanize.IBytes(*e.Size)
}

// Manifest is the complete ordered result of a parse: one Entry per path
// line, in source order. Entries are never removed or reordered.
type Manifest struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Len returns the number of resolved entries.
func (m *Manifest) Len() int { return len(m.Entries) }
