package timelog

import (
	"errors"
	"strings"
	"time"
)

// Minimum and maximum widths of the time pair at the head of an entry
// line. A time is H:MM at its narrowest and HH:MM at its widest.
const (
	minClockWidth = 4  // H:MM
	minPairWidth  = 9  // H:MM H:MM
	maxPairWidth  = 11 // HH:MM HH:MM
)

// Parse reads time.txt text into a TimeLog.
//
// Lines starting with // and blank lines are comments. Lines shorter
// than the minimum time-pair width are silently ignored. A line that
// parses as a YYYY-MM-DD date starts a new date block; every other
// line must be an entry of the form "HH:MM HH:MM description". The
// first malformed entry line aborts the whole parse; entry lines seen
// before any date header are dropped without error.
func Parse(text string) (*TimeLog, error) {
	t := New()

	// Current date block, established by the most recent date header.
	var current *time.Time

	for i, line := range strings.Split(text, "\n") {
		// Windows-authored files end lines with \r\n.
		line = strings.TrimSuffix(line, "\r")

		if strings.HasPrefix(line, "//") || line == "" {
			continue
		}

		// Date headers and entry lines are both at least as long as
		// the minimum time pair. Anything shorter cannot be either.
		if len(line) < minPairWidth {
			continue
		}

		if d, err := time.Parse(DateLayout, line); err == nil {
			current = &d
			continue
		}

		offset, dur, err := extractDuration(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}

		// No date header yet: the entry has no block to live in.
		if current == nil {
			continue
		}

		t.Add(Entry{
			Date:        *current,
			Start:       dur.start,
			End:         dur.end,
			Description: strings.TrimSpace(line[offset:]),
		})
	}

	return t, nil
}

// ParseEntry parses a single entry line under the given date. It is
// the same validation Parse applies, for callers that build entries
// one at a time.
func ParseEntry(date time.Time, line string) (Entry, error) {
	offset, dur, err := extractDuration(line)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Date:        date,
		Start:       dur.start,
		End:         dur.end,
		Description: strings.TrimSpace(line[offset:]),
	}, nil
}

// extractDuration scans an entry line for its leading time pair. It
// returns the byte offset of the space after the end time; everything
// past that offset is the description.
//
// The scan is positional: spaces are counted left to right, the first
// space must sit at index >= 4 (a time is at least H:MM wide) and the
// second at index >= 9. Scanning stops after the second space, or once
// the index passes the widest possible pair (HH:MM HH:MM).
func extractDuration(line string) (int, duration, error) {
	numSpaces := 0
	var start, end time.Time
	startSpace, endSpace := 0, 0

	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			continue
		}
		numSpaces++

		if numSpaces == 1 && startSpace == 0 {
			if i < minClockWidth {
				return 0, duration{}, &ParseError{Kind: KindTimeNotFound, Err: ErrStartTimeNotFound}
			}
			startSpace = i
			st, err := time.Parse(ClockLayout, line[:startSpace])
			if err != nil {
				return 0, duration{}, &ParseError{Kind: KindTimeParse, Err: err}
			}
			start = st
		}

		if numSpaces == 2 && endSpace == 0 {
			if i < minPairWidth {
				return 0, duration{}, &ParseError{Kind: KindTimeNotFound, Err: ErrEndTimeNotFound}
			}
			endSpace = i
			et, err := time.Parse(ClockLayout, line[startSpace+1:endSpace])
			if err != nil {
				return 0, duration{}, &ParseError{Kind: KindTimeParse, Err: err}
			}
			end = et
		}

		if numSpaces > 2 || i > maxPairWidth {
			break
		}
	}

	if numSpaces < 2 {
		return 0, duration{}, &ParseError{Kind: KindTimeNotFound, Err: ErrNoTimesFound}
	}

	return endSpace, duration{start: start, end: end}, nil
}
