package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/timetxt/timetxt/internal/cli"
	"github.com/timetxt/timetxt/internal/storage"
	"github.com/timetxt/timetxt/internal/timelog"
)

var rootCmd = &cobra.Command{
	Use:   "timetxt [file]",
	Short: "Parse and display time.txt logs",
	Long: `timetxt reads plain-text time tracking logs in the time.txt format
and displays, formats, checks and exports them.

The format is line oriented:

  // Lines starting with // are comments.
  1822-01-15                  A date starts a new block.
  3:00 4:00 Sketched ideas    Entries are "start end description".

Times are 24-hour wall-clock. Without a file argument the log is read
from the configured log_file, or ~/time.txt.

Usage:
  timetxt [file]                  Display the log
  timetxt --elapsed               Display with per-entry elapsed time
  timetxt add "3:00 4:00 work"    Append an entry for today
  timetxt fmt [file] --write      Rewrite the file in canonical form
  timetxt check [file]            Verify the file parses
  timetxt total [file]            Per-date and overall totals
  timetxt export json [file]      Export entries (json, csv, yaml)`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showLog(cmd, args)
	},
}

func init() {
	rootCmd.Flags().Bool("elapsed", false, "Show per-entry elapsed time as HH:MM")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"timetxt version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// showLog parses the log file and prints it
func showLog(cmd *cobra.Command, args []string) {
	path, err := resolveLogPath(args)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine log file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	log, ok := loadLog(path)
	if !ok {
		return
	}

	if log.Len() == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries in %s\n", path)
		return
	}

	elapsed, _ := cmd.Flags().GetBool("elapsed")
	if err := cli.RenderLog(deps.Stdout, log, elapsed || deps.Config.ShowElapsed); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write output: %v\n", err)
		deps.Exit(1)
	}
}

// loadLog reads and parses the log at path, reporting failures in the
// standard Error/Details/Hint form. The second return value is false
// when loading failed and the command should stop.
func loadLog(path string) (*timelog.TimeLog, bool) {
	log, err := storage.LoadLog(path)
	if err == nil {
		return log, true
	}

	if os.IsNotExist(err) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: No log file found at %s\n", path)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Create one with 'timetxt add \"3:00 4:00 description\"' or pass a file argument")
		deps.Exit(1)
		return nil, false
	}

	var pe *timelog.ParseError
	if errors.As(err, &pe) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to parse %s\n", path)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", pe)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Entry lines must look like 'HH:MM HH:MM description'")
		deps.Exit(1)
		return nil, false
	}

	_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read %s\n", path)
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	deps.Exit(1)
	return nil, false
}
