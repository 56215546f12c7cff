// Package storage reads and writes the time.txt file. The parser in
// internal/timelog does no I/O; everything that touches the disk
// lives here.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/timetxt/timetxt/internal/osutil"
	"github.com/timetxt/timetxt/internal/timelog"
)

// LogFile is the default name of the log file in the user's home
// directory.
const LogFile = "time.txt"

// DefaultLogPath returns the default location of the log file,
// ~/time.txt.
func DefaultLogPath() (string, error) {
	home, err := osutil.Provider.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogFile), nil
}

// ReadLog reads the whole log file into memory. The caller hands the
// text to timelog.Parse; a missing file surfaces as an os.IsNotExist
// error so commands can decide whether that is fatal.
func ReadLog(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadLog reads and parses the log file in one step.
func LoadLog(path string) (*timelog.TimeLog, error) {
	text, err := ReadLog(path)
	if err != nil {
		return nil, err
	}
	log, err := timelog.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return log, nil
}

// WriteLog replaces the log file with the canonical rendering of the
// given log. A backup is taken first and the write goes through a
// temp file and rename so a crash never leaves a half-written file.
// Comments in the original file do not survive a rewrite.
func WriteLog(path string, log *timelog.TimeLog) error {
	if err := CreateBackup(path); err != nil {
		return fmt.Errorf("backing up %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(log.Render()), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// AppendEntry adds one entry to the log file without touching the
// rest of it, so comments and hand formatting are preserved. If the
// file's last date header already matches the entry's date the line is
// appended to that block; otherwise a new date header is started.
// The file is created if it doesn't exist.
func AppendEntry(path string, e timelog.Entry) error {
	text, err := ReadLog(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	var b strings.Builder
	if text != "" && !strings.HasSuffix(text, "\n") {
		b.WriteByte('\n')
	}
	if !lastDateIs(text, e.Date) {
		b.WriteString(e.Date.Format(timelog.DateLayout))
		b.WriteByte('\n')
	}
	b.WriteString(e.String())
	b.WriteByte('\n')

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	_, err = file.WriteString(b.String())
	return err
}

// lastDateIs reports whether the last date header in the text equals
// the given date.
func lastDateIs(text string, date time.Time) bool {
	last := time.Time{}
	found := false
	for _, line := range strings.Split(text, "\n") {
		if d, err := time.Parse(timelog.DateLayout, line); err == nil {
			last = d
			found = true
		}
	}
	return found && last.Equal(date)
}
