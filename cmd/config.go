package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timetxt/timetxt/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display configuration settings",
	Long: `Display the current effective configuration for timetxt.

timetxt works without a configuration file; every setting has a
default:
  - log_file: ~/time.txt
  - show_elapsed: false

To customize settings, create a config.toml in the location shown by
this command, or run 'timetxt config init' to generate a commented
sample file there.`,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the file is valid TOML: %s\n", configPath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for timetxt")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:  %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:       File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:       No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	if cfg.LogFile == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Log file:     ~/time.txt (default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Log file:     %s\n", cfg.LogFile)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Show elapsed: %v\n", cfg.ShowElapsed)
}

// initConfig writes the sample config file
func initConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if _, err := os.Stat(configPath); err == nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Config file already exists at %s\n", configPath)
		deps.Exit(1)
		return
	}

	if err := os.WriteFile(configPath, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write config file: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Wrote sample config to %s\n", configPath)
}
