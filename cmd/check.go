package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timetxt/timetxt/internal/storage"
	"github.com/timetxt/timetxt/internal/timelog"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Verify that the log parses",
	Long: `Parse the log file and report whether it is well formed.

The time.txt parser is strict: the first malformed entry line aborts
the parse. check reports that line and what is wrong with it, or a
summary of the log when everything parses.

Examples:
  timetxt check                Check the default log
  timetxt check project.txt    Check a specific file`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		checkLog(args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkLog parses the file and reports its health
func checkLog(args []string) {
	path, err := resolveLogPath(args)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine log file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Log file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	log, err := storage.LoadLog(path)
	if err != nil {
		if os.IsNotExist(err) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No log file found at %s\n", path)
			deps.Exit(1)
			return
		}

		var pe *timelog.ParseError
		if errors.As(err, &pe) {
			_, _ = fmt.Fprintf(deps.Stdout, "Line:   %d\n", pe.Line)
			_, _ = fmt.Fprintf(deps.Stdout, "Kind:   %s\n", pe.Kind)
			_, _ = fmt.Fprintf(deps.Stdout, "Detail: %v\n", pe.Err)
			_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
			_, _ = fmt.Fprintf(deps.Stderr, "Status: ✗ %s does not parse\n", path)
			deps.Exit(1)
			return
		}

		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read %s\n", path)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	dates := log.Dates()
	_, _ = fmt.Fprintf(deps.Stdout, "Dates:   %d\n", len(dates))
	_, _ = fmt.Fprintf(deps.Stdout, "Entries: %d\n", log.Len())
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Log file parses cleanly")
}
