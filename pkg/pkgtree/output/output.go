// Package output provides formatters for displaying parsed manifests in
// various output formats (pretty, plain, json, yaml, etc.).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, result); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"
)

// EntryInfo contains one resolved manifest entry prepared for output
// formatting, with computed fields like the human-readable size alongside
// the raw values.
type EntryInfo struct {
	// Path is the entry path, rooted at "./".
	Path string `json:"path" yaml:"path"`

	// Type is the path type (dir, file or link), or "" when unset.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Mode is the raw octal mode string, or "" when unset.
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Size is the file size in bytes, or nil when unset.
	Size *uint64 `json:"size,omitempty" yaml:"size,omitempty"`

	// SizeHuman is the human-readable file size (e.g. "1.5 MiB"),
	// or "" when the size is unset.
	SizeHuman string `json:"size_human,omitempty" yaml:"size_human,omitempty"`

	// Link is the symlink target, or "" when the entry is not a link.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`

	// Digest is the hex SHA-256 digest, or "" when unset.
	Digest string `json:"sha256digest,omitempty" yaml:"sha256digest,omitempty"`

	// ModTime is the modification time, zero when unset.
	ModTime time.Time `json:"mod_time,omitempty" yaml:"mod_time,omitempty"`
}

// DiagnosticInfo is one parse diagnostic prepared for output formatting.
type DiagnosticInfo struct {
	// Offset is the byte offset of the problem in the manifest text.
	Offset int `json:"offset" yaml:"offset"`

	// Length is the span length in bytes.
	Length int `json:"length" yaml:"length"`

	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`

	// Severity is "warning" for recoverable problems, "error" for the
	// fatal one.
	Severity string `json:"severity" yaml:"severity"`
}

// ParseStats contains statistics about a parse operation.
type ParseStats struct {
	// Entries is the number of resolved path entries.
	Entries int `json:"entries" yaml:"entries"`

	// Diagnostics is the number of problems recorded.
	Diagnostics int `json:"diagnostics" yaml:"diagnostics"`

	// Duration is the time taken to read and parse the manifest.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Result contains the complete output data for formatting: every resolved
// entry, the diagnostics, parse statistics, and metadata about the source.
type Result struct {
	// Entries contains all resolved entries in manifest order.
	Entries []EntryInfo `json:"entries" yaml:"entries"`

	// Diagnostics contains all parse problems in source order.
	Diagnostics []DiagnosticInfo `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`

	// Stats contains parse statistics.
	Stats ParseStats `json:"stats" yaml:"stats"`

	// Source is the manifest file that was parsed.
	Source string `json:"source" yaml:"source"`

	// Compression is the on-disk encoding of the source
	// (raw, gzip or zstd).
	Compression string `json:"compression" yaml:"compression"`

	// Truncated indicates the parse stopped early on a fatal diagnostic.
	Truncated bool `json:"truncated" yaml:"truncated"`
}

// TotalSize returns the sum of all known entry sizes in the result.
func (r *Result) TotalSize() uint64 {
	var total uint64
	for _, e := range r.Entries {
		if e.Size != nil {
			total += *e.Size
		}
	}
	return total
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
