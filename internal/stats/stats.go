// Package stats aggregates elapsed time per date block. The numbers
// are simple end minus start sums; nothing here validates that an
// entry's end is after its start.
package stats

import (
	"time"

	"github.com/timetxt/timetxt/internal/timelog"
)

// DayTotal is the aggregate for one date block.
type DayTotal struct {
	Date    time.Time
	Minutes int
	Entries int
}

// Summary is the aggregate for a whole log.
type Summary struct {
	Days         []DayTotal
	TotalMinutes int
	EntryCount   int
}

// Minutes returns an entry's span in whole minutes. Negative spans
// (end before start) pass through as negative minutes.
func Minutes(e timelog.Entry) int {
	return int(e.Elapsed() / time.Minute)
}

// Totals computes per-date totals, sorted by date ascending.
func Totals(log *timelog.TimeLog) []DayTotal {
	dates := log.Dates()
	totals := make([]DayTotal, 0, len(dates))
	for _, d := range dates {
		day := DayTotal{Date: d}
		for _, e := range log.Entries[d] {
			day.Minutes += Minutes(e)
			day.Entries++
		}
		totals = append(totals, day)
	}
	return totals
}

// Summarize computes the per-date totals and the overall sum in one
// pass over the log.
func Summarize(log *timelog.TimeLog) Summary {
	s := Summary{Days: Totals(log)}
	for _, day := range s.Days {
		s.TotalMinutes += day.Minutes
		s.EntryCount += day.Entries
	}
	return s
}
