package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Use a temp directory that doesn't have a config file
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}

	if cfg.Color != DefaultColor {
		t.Errorf("Color = %q, want %q", cfg.Color, DefaultColor)
	}

	if cfg.Strict {
		t.Error("Strict = true, want false")
	}

	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, DefaultLogLevel)
	}

	if _, ok := cfg.Logging.Components["parser"]; !ok {
		t.Error("Logging.Components missing parser entry")
	}
}

func TestLoad_FromFile(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, ".config", "pkgtree")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configContent := `
output: json
color: never
strict: true
logging:
  level: debug
`

	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want never", cfg.Color)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("PKGTREE_OUTPUT", "plain")
	t.Setenv("PKGTREE_COLOR", "always")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "plain" {
		t.Errorf("Output = %q, want plain from environment", cfg.Output)
	}
	if cfg.Color != "always" {
		t.Errorf("Color = %q, want always from environment", cfg.Color)
	}
}

func TestLoad_XDGConfigHome(t *testing.T) {
	tempDir := t.TempDir()
	xdgDir := filepath.Join(tempDir, "xdg")
	configDir := filepath.Join(xdgDir, "pkgtree")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"),
		[]byte("output: yaml\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", xdgDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output != "yaml" {
		t.Errorf("Output = %q, want yaml from XDG config", cfg.Output)
	}
}

func TestConfig_Validate(t *testing.T) {
	for _, mode := range ValidColorModes {
		cfg := &Config{Color: mode}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() with color %q error = %v, want nil", mode, err)
		}
	}

	cfg := &Config{Color: "sometimes"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want error for invalid color mode")
	}
	if !strings.Contains(err.Error(), "sometimes") {
		t.Errorf("error = %v, want it to name the bad value", err)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() error = %v", err)
		}
		want := filepath.Join("/custom/config", "pkgtree")
		if dir != want {
			t.Errorf("ConfigDir() = %q, want %q", dir, want)
		}
	})

	t.Run("falls back to home directory", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", tempDir)

		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() error = %v", err)
		}
		want := filepath.Join(tempDir, ".config", "pkgtree")
		if dir != want {
			t.Errorf("ConfigDir() = %q, want %q", dir, want)
		}
	})
}

func TestWriteDefault(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	if err := WriteDefault(); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	configPath := filepath.Join(tempDir, ".config", "pkgtree", "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading written config: %v", err)
	}
	if !strings.Contains(string(data), "output: "+DefaultOutput) {
		t.Errorf("default config missing output setting: %q", data)
	}

	// The written file loads cleanly
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() after WriteDefault() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	// A second call leaves an existing file alone
	if err := os.WriteFile(configPath, []byte("output: json\n"), 0o644); err != nil {
		t.Fatalf("overwriting config: %v", err)
	}
	if err := WriteDefault(); err != nil {
		t.Fatalf("second WriteDefault() error = %v", err)
	}
	data, err = os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("re-reading config: %v", err)
	}
	if string(data) != "output: json\n" {
		t.Error("WriteDefault() clobbered an existing config file")
	}
}

func TestExpandPath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	t.Run("expands tilde", func(t *testing.T) {
		got, err := ExpandPath("~/logs/pkgtree.log")
		if err != nil {
			t.Fatalf("ExpandPath() error = %v", err)
		}
		want := filepath.Join(tempDir, "logs", "pkgtree.log")
		if got != want {
			t.Errorf("ExpandPath() = %q, want %q", got, want)
		}
	})

	t.Run("leaves absolute paths alone", func(t *testing.T) {
		got, err := ExpandPath("/var/log/pkgtree.log")
		if err != nil {
			t.Fatalf("ExpandPath() error = %v", err)
		}
		if got != "/var/log/pkgtree.log" {
			t.Errorf("ExpandPath() = %q, want input unchanged", got)
		}
	})
}
