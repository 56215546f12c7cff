package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timetxt/timetxt/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Browse the log interactively",
	Long: `Open the log in an interactive terminal viewer.

Keyboard shortcuts:
  j/k or arrows: scroll
  g/G: jump to top or bottom
  e: toggle the elapsed column
  r: reload the file
  q: quit`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(args)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI resolves the log path and starts the viewer
func runTUI(args []string) {
	path, err := resolveLogPath(args)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine log file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if err := tui.Run(path, deps.Config.ShowElapsed); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to run the viewer: %v\n", err)
		deps.Exit(1)
	}
}
