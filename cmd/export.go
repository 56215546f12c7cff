package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/timetxt/timetxt/internal/stats"
	"github.com/timetxt/timetxt/internal/timelog"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries to other formats",
	Long: `Export the parsed log as flat records for programmatic use.

Available formats:
  json    One document with metadata and an entries array
  csv     One row per entry with a header row
  yaml    Same document shape as json

Each record carries the date, start, end, elapsed minutes and the
description.

Examples:
  timetxt export json                 Export the default log as JSON
  timetxt export csv > entries.csv    Export as CSV to a file
  timetxt export yaml project.txt     Export a specific file as YAML`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Export entries as JSON",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exportLog(args, encodeJSON)
	},
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv [file]",
	Short: "Export entries as CSV",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exportLog(args, encodeCSV)
	},
}

// exportYAMLCmd represents the export yaml command
var exportYAMLCmd = &cobra.Command{
	Use:   "yaml [file]",
	Short: "Export entries as YAML",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exportLog(args, encodeYAML)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportYAMLCmd)
}

// exportEntry is one flat record in the export output.
type exportEntry struct {
	Date        string `json:"date" yaml:"date"`
	Start       string `json:"start" yaml:"start"`
	End         string `json:"end" yaml:"end"`
	Minutes     int    `json:"minutes" yaml:"minutes"`
	Description string `json:"description" yaml:"description"`
}

// exportDocument wraps the records with export metadata.
type exportDocument struct {
	ExportedAt   string        `json:"exported_at" yaml:"exported_at"`
	TotalEntries int           `json:"total_entries" yaml:"total_entries"`
	Entries      []exportEntry `json:"entries" yaml:"entries"`
}

// exportLog loads the log and hands the flat records to an encoder
func exportLog(args []string, encode func(exportDocument) error) {
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

	doc := exportDocument{
		ExportedAt:   time.Now().UTC().Format(time.RFC3339),
		TotalEntries: log.Len(),
		Entries:      make([]exportEntry, 0, log.Len()),
	}
	for _, e := range log.All() {
		doc.Entries = append(doc.Entries, exportEntry{
			Date:        e.Date.Format(timelog.DateLayout),
			Start:       e.Start.Format(timelog.ClockLayout),
			End:         e.End.Format(timelog.ClockLayout),
			Minutes:     stats.Minutes(e),
			Description: e.Description,
		})
	}

	if err := encode(doc); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to encode export: %v\n", err)
		deps.Exit(1)
	}
}

func encodeJSON(doc exportDocument) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func encodeCSV(doc exportDocument) error {
	w := csv.NewWriter(deps.Stdout)
	if err := w.Write([]string{"date", "start", "end", "minutes", "description"}); err != nil {
		return err
	}
	for _, e := range doc.Entries {
		record := []string{e.Date, e.Start, e.End, strconv.Itoa(e.Minutes), e.Description}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func encodeYAML(doc exportDocument) error {
	enc := yaml.NewEncoder(deps.Stdout)
	defer func() { _ = enc.Close() }()
	return enc.Encode(doc)
}
