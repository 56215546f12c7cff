package timelog

import (
	"errors"
	"fmt"
)

// Structural failure reasons for duration extraction. These mirror the
// three ways a line can fail before any time parsing happens.
var (
	ErrStartTimeNotFound = errors.New("start time not found")
	ErrEndTimeNotFound   = errors.New("end time not found")
	ErrNoTimesFound      = errors.New("neither start nor end time found")
)

// ErrorKind classifies what went wrong on a line.
type ErrorKind int

const (
	// KindTimeNotFound means the line structure ruled out a valid
	// time pair (missing or misplaced spaces).
	KindTimeNotFound ErrorKind = iota
	// KindTimeParse means a candidate time substring was not a valid
	// wall-clock time.
	KindTimeParse
	// KindDateParse means a date header candidate failed strict date
	// parsing. Malformed date lines normally fall through to entry
	// parsing instead, so this kind rarely surfaces.
	KindDateParse
)

// String returns a short label for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindTimeNotFound:
		return "time not found"
	case KindTimeParse:
		return "invalid time"
	case KindDateParse:
		return "invalid date"
	default:
		return "unknown"
	}
}

// ParseError is the single error type returned by Parse. It carries
// the 1-based line number of the offending line so callers can point
// at the authoring mistake. Line is zero for errors from ParseEntry,
// where no source line exists.
type ParseError struct {
	Line int
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
