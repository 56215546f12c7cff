package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/timetxt/timetxt/internal/storage"
	"github.com/timetxt/timetxt/internal/timelog"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <entry line>",
	Short: "Append an entry to the log",
	Long: `Append a time tracking entry to the log file.

The entry is written in the same form it appears in the file:
"HH:MM HH:MM description". It is validated with the same parser that
reads the file, so anything add accepts will parse back.

The entry goes under today's date unless --date is given. If the file's
last date block already matches, the line is appended to it; otherwise
a new date header is started. Comments in the file are left untouched.

Examples:
  timetxt add "3:00 4:00 Sketched ideas"
  timetxt add 15:30 17:30 Reviewed gear tolerances
  timetxt add --date 1822-01-15 "3:00 4:00 back-dated work"
  timetxt add --file project.txt "9:00 9:30 standup"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addEntry(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().String("date", "", "Date for the entry (YYYY-MM-DD, default today)")
	addCmd.Flags().String("file", "", "Log file to append to (default: configured log_file or ~/time.txt)")
}

// addEntry validates and appends a new entry
func addEntry(cmd *cobra.Command, args []string) {
	dateStr, _ := cmd.Flags().GetString("date")
	fileFlag, _ := cmd.Flags().GetString("file")

	date := today()
	if dateStr != "" {
		d, err := time.Parse(timelog.DateLayout, dateStr)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", dateStr)
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use the format YYYY-MM-DD, e.g. 1822-01-15")
			deps.Exit(1)
			return
		}
		date = d
	}

	line := strings.Join(args, " ")
	e, err := timelog.ParseEntry(date, line)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid entry '%s'\n", line)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Entries look like 'HH:MM HH:MM description' with 24-hour times")
		deps.Exit(1)
		return
	}

	var pathArgs []string
	if fileFlag != "" {
		pathArgs = []string{fileFlag}
	}
	path, err := resolveLogPath(pathArgs)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine log file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if err := storage.AppendEntry(path, e); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to append to %s\n", path)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that the file and its directory are writable")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s (%s)\n", e.String(), e.Date.Format(timelog.DateLayout))
}

// today returns the current date with the time-of-day zeroed, in UTC
// to match dates produced by the parser.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
