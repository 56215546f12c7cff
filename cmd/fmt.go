package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timetxt/timetxt/internal/storage"
)

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Rewrite the log in canonical form",
	Long: `Render the log in canonical time.txt form: dates sorted ascending,
times zero-padded to HH:MM, descriptions trimmed.

By default the canonical text is printed to stdout. With --write the
file is rewritten in place; a rotating backup (.bak.1..3) is taken
first and the write is atomic. Rewriting drops comment lines, since
they are not part of the parsed log.

Examples:
  timetxt fmt                  Print the canonical rendering
  timetxt fmt --write          Rewrite ~/time.txt in place
  timetxt fmt project.txt      Print project.txt canonically`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		formatLog(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().Bool("write", false, "Rewrite the file instead of printing to stdout")
}

// formatLog renders the log canonically, to stdout or back to the file
func formatLog(cmd *cobra.Command, args []string) {
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

	write, _ := cmd.Flags().GetBool("write")
	if !write {
		_, _ = fmt.Fprint(deps.Stdout, log.Render())
		return
	}

	if err := storage.WriteLog(path, log); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to rewrite %s\n", path)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that the file and its directory are writable")
		deps.Exit(1)
		return
	}

	word := "entries"
	if log.Len() == 1 {
		word = "entry"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Formatted %s (%d %s)\n", path, log.Len(), word)
}
