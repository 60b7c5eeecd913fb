// Package config provides configuration management for pkgtree.
package config

// Default configuration values for pkgtree.
const (
	// DefaultOutput is the output format used when none is specified.
	DefaultOutput = "pretty"

	// DefaultColor controls colored diagnostic rendering: auto, always
	// or never.
	DefaultColor = "auto"

	// DefaultConfigDir is the default configuration directory path.
	DefaultConfigDir = "~/.config/pkgtree"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"
)

// ValidColorModes lists the accepted values for the color setting.
var ValidColorModes = []string{"auto", "always", "never"}
