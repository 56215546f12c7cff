package timelog

import (
	"errors"
	"strings"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Line: 7, Kind: KindTimeNotFound, Err: ErrStartTimeNotFound}

	msg := err.Error()
	if !strings.Contains(msg, "line 7") {
		t.Errorf("Error() = %q, expected it to name line 7", msg)
	}
	if !strings.Contains(msg, "start time not found") {
		t.Errorf("Error() = %q, expected it to carry the reason", msg)
	}
}

func TestParseErrorMessage_NoLine(t *testing.T) {
	err := &ParseError{Kind: KindTimeParse, Err: ErrEndTimeNotFound}

	msg := err.Error()
	if strings.Contains(msg, "line") {
		t.Errorf("Error() = %q, expected no line prefix when Line is unset", msg)
	}
	if !strings.Contains(msg, "invalid time") {
		t.Errorf("Error() = %q, expected the kind label", msg)
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	err := &ParseError{Line: 1, Kind: KindTimeNotFound, Err: ErrNoTimesFound}
	if !errors.Is(err, ErrNoTimesFound) {
		t.Errorf("errors.Is failed to match the wrapped sentinel")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindTimeNotFound, "time not found"},
		{KindTimeParse, "invalid time"},
		{KindDateParse, "invalid date"},
		{ErrorKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, expected %q", tt.kind, got, tt.want)
		}
	}
}
