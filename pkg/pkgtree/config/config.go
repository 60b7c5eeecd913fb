package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level      string            `mapstructure:"level"`
	Path       string            `mapstructure:"path"`
	Components map[string]string `mapstructure:"components"`
}

// Config represents the application configuration.
type Config struct {
	// Output is the default output format (pretty, plain, json, ...).
	Output string `mapstructure:"output"`

	// Color controls colored diagnostic rendering: auto, always, never.
	Color string `mapstructure:"color"`

	// Strict makes any diagnostic a non-zero exit, not just fatal ones.
	Strict bool `mapstructure:"strict"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/pkgtree/config.yaml
//   - $HOME/.config/pkgtree/config.yaml
//
// Environment variables are prefixed with PKGTREE_
// (e.g. PKGTREE_OUTPUT).
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "pkgtree"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "pkgtree"))

	// Set environment variable prefix and enable auto env binding
	v.SetEnvPrefix("PKGTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("color", DefaultColor)
	v.SetDefault("strict", false)

	// Logging defaults
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "") // Empty means use the default XDG path
	v.SetDefault("logging.components", map[string]string{
		"parser": "info",
		"stream": "info",
		"cli":    "info",
	})

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable; we use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ErrInvalidColorMode indicates a color setting outside auto/always/never.
var ErrInvalidColorMode = errors.New("invalid color mode")

// Validate checks settings that viper cannot verify structurally.
func (c *Config) Validate() error {
	for _, mode := range ValidColorModes {
		if c.Color == mode {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidColorMode,
		c.Color, strings.Join(ValidColorModes, ", "))
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	// Check XDG_CONFIG_HOME first
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "pkgtree"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "pkgtree"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// WriteDefault writes a commented default config file, unless one already
// exists.
func WriteDefault() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		// Config file exists, do nothing
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# Pkgtree Configuration

# Default output format: pretty, plain, json, jsonl, yaml, tsv, csv, template
output: %s

# Colored diagnostic rendering: auto, always, never
color: %s

# Exit non-zero on any diagnostic, not just fatal ones
strict: false

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  level: %s
  # Log file path (empty means use default: $XDG_STATE_HOME/pkgtree/pkgtree.log)
  path: ""
  # Per-component log levels
  components:
    parser: info
    stream: info
    cli: info
`, DefaultOutput, DefaultColor, DefaultLogLevel)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ExpandPath expands ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// StateDir returns $XDG_STATE_HOME/pkgtree/ for log files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "pkgtree")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), "pkgtree.log")
}
