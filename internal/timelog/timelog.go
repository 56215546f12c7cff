// Package timelog implements the time.txt format: parsing raw text
// into entries grouped by date, and rendering them back to canonical
// text.
package timelog

import (
	"sort"
	"strings"
	"time"
)

const (
	// DateLayout is the format of a date header line.
	DateLayout = "2006-01-02"
	// ClockLayout is the format of a start or end time. Parsing
	// accepts a 1- or 2-digit hour; rendering always zero-pads.
	ClockLayout = "15:04"
)

// Entry represents a single time-tracked activity under a date block.
type Entry struct {
	Date        time.Time `json:"date" yaml:"date"`
	Start       time.Time `json:"start" yaml:"start"`
	End         time.Time `json:"end" yaml:"end"`
	Description string    `json:"description" yaml:"description"`
}

// Elapsed returns the simple difference between end and start.
// End before start is not rejected anywhere in this package, so the
// result may be negative.
func (e Entry) Elapsed() time.Duration {
	return e.End.Sub(e.Start)
}

// String renders the entry as a canonical time.txt line.
func (e Entry) String() string {
	return e.Start.Format(ClockLayout) + " " + e.End.Format(ClockLayout) + " " + e.Description
}

// duration carries the extracted start/end pair from extractDuration
// back to the parse loop. It never leaves this package.
type duration struct {
	start time.Time
	end   time.Time
}

// TimeLog holds all parsed entries grouped by date. Within a date,
// entries keep the order they appeared in the source text.
type TimeLog struct {
	Entries map[time.Time][]Entry
}

// New returns an empty TimeLog ready to be populated.
func New() *TimeLog {
	return &TimeLog{Entries: make(map[time.Time][]Entry)}
}

// Add appends an entry to its date block, creating the block if this
// is the first entry for that date.
func (t *TimeLog) Add(e Entry) {
	t.Entries[e.Date] = append(t.Entries[e.Date], e)
}

// Dates returns all dates that have at least one entry, sorted
// ascending. The map itself has no order; rendering and reporting go
// through this to stay deterministic.
func (t *TimeLog) Dates() []time.Time {
	dates := make([]time.Time, 0, len(t.Entries))
	for d := range t.Entries {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Len returns the total number of entries across all dates.
func (t *TimeLog) Len() int {
	n := 0
	for _, entries := range t.Entries {
		n += len(entries)
	}
	return n
}

// All returns every entry ordered by date, then by position within the
// date block.
func (t *TimeLog) All() []Entry {
	all := make([]Entry, 0, t.Len())
	for _, d := range t.Dates() {
		all = append(all, t.Entries[d]...)
	}
	return all
}

// Render emits the log as canonical time.txt text: each date header on
// its own line followed by its entries, dates sorted ascending, times
// zero-padded. Rendering a log parsed from canonical text reproduces
// the input byte for byte.
func (t *TimeLog) Render() string {
	var b strings.Builder
	for _, d := range t.Dates() {
		b.WriteString(d.Format(DateLayout))
		b.WriteByte('\n')
		for _, e := range t.Entries[d] {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}
