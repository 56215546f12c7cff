// Package cli provides the output formatting shared by the timetxt
// commands.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/timetxt/timetxt/internal/stats"
	"github.com/timetxt/timetxt/internal/timelog"
)

// FormatElapsed formats a span as zero-padded HH:MM. Negative spans
// keep their sign, since the parser never rejects end before start.
func FormatElapsed(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	minutes := int(d / time.Minute)
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// FormatEntry renders one entry line, optionally with the elapsed
// column appended. Without the column the line is canonical time.txt.
func FormatEntry(e timelog.Entry, withElapsed bool) string {
	if !withElapsed {
		return e.String()
	}
	return fmt.Sprintf("%s (%s)", e.String(), FormatElapsed(e.Elapsed()))
}

// RenderLog writes the log date block by date block. With withElapsed
// false the output is byte-identical to timelog's canonical render.
func RenderLog(w io.Writer, log *timelog.TimeLog, withElapsed bool) error {
	for _, d := range log.Dates() {
		if _, err := fmt.Fprintln(w, d.Format(timelog.DateLayout)); err != nil {
			return err
		}
		for _, e := range log.Entries[d] {
			if _, err := fmt.Fprintln(w, FormatEntry(e, withElapsed)); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderTotals writes the per-date totals and the grand total.
func RenderTotals(w io.Writer, s stats.Summary) error {
	for _, day := range s.Days {
		entries := "entries"
		if day.Entries == 1 {
			entries = "entry"
		}
		_, err := fmt.Fprintf(w, "%s  %s  (%d %s)\n",
			day.Date.Format(timelog.DateLayout),
			FormatElapsed(time.Duration(day.Minutes)*time.Minute),
			day.Entries, entries)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total: %s\n", FormatElapsed(time.Duration(s.TotalMinutes)*time.Minute))
	return err
}
