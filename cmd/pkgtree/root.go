package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/pkgtree/pkg/pkgtree/config"
	"github.com/jamesainslie/pkgtree/pkg/pkgtree/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "pkgtree <file>",
		Short: "Parse and inspect package file-tree manifests",
		Long: `Pkgtree parses .MTREE package manifests and lists the files,
directories and symlinks they describe, with permissions, sizes, digests
and modification times resolved against the manifest's /set defaults.

Compressed manifests (gzip or zstd) are decompressed transparently.
Malformed input does not stop the parse: every problem is reported with
its exact source position and the remaining entries are still produced.

Examples:
  pkgtree .MTREE                 # Pretty-print a manifest
  pkgtree -o json .MTREE         # Machine-readable JSON output
  pkgtree -o plain .MTREE        # Aligned text for scripting
  pkgtree lint .MTREE            # Report problems only
  pkgtree version                # Show version information`,
		Args:              cobra.ExactArgs(1),
		RunE:              runParse,
		PersistentPreRunE: initLogging,
		PersistentPostRun: func(*cobra.Command, []string) { _ = logging.Close() },
	}
)

// initLogging starts the file logger before any command runs. Verbose mode
// additionally mirrors debug output to the console.
func initLogging(*cobra.Command, []string) error {
	cfg := logging.Config{
		Level:      viper.GetString("logging.level"),
		Path:       viper.GetString("logging.path"),
		Components: viper.GetStringMapString("logging.components"),
	}
	if getVerbose() {
		cfg.Level = "debug"
		cfg.ConsoleLevel = "debug"
	}
	if err := logging.Init(cfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/pkgtree/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (pretty, plain, json, jsonl, yaml, tsv, csv, template)")
	rootCmd.PersistentFlags().String("template", "", "Go text/template for -o template")
	rootCmd.PersistentFlags().String("color", "", "colored diagnostics: auto, always, never")
	rootCmd.PersistentFlags().Bool("strict", false, "exit non-zero on any diagnostic, not just fatal ones")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("template", rootCmd.PersistentFlags().Lookup("template"))
	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Set config name and type
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// Add config paths in order of precedence
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "pkgtree"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "pkgtree"))
		}
	}

	// Set environment variable prefix and enable auto env binding
	viper.SetEnvPrefix("PKGTREE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Set defaults from config package
	viper.SetDefault("output", config.DefaultOutput)
	viper.SetDefault("color", config.DefaultColor)
	viper.SetDefault("strict", false)
	viper.SetDefault("logging.level", config.DefaultLogLevel)

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
