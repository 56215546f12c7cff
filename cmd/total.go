package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timetxt/timetxt/internal/cli"
	"github.com/timetxt/timetxt/internal/stats"
)

// totalCmd represents the total command
var totalCmd = &cobra.Command{
	Use:   "total [file]",
	Short: "Show elapsed time per date",
	Long: `Sum the elapsed time of every entry, grouped by date, plus the
overall total. Each entry contributes its simple end minus start span;
an entry whose end is before its start counts negative.

Examples:
  timetxt total                Totals for the default log
  timetxt total project.txt    Totals for a specific file`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showTotals(args)
	},
}

func init() {
	rootCmd.AddCommand(totalCmd)
}

// showTotals prints per-date and overall totals
func showTotals(args []string) {
	path, err := resolveLogPath(args)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine log file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
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

	if err := cli.RenderTotals(deps.Stdout, stats.Summarize(log)); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write output: %v\n", err)
		deps.Exit(1)
	}
}
