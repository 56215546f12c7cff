package storage

import (
	"fmt"
	"io"
	"os"
)

const (
	// BackupSuffix is the extension appended to backup files.
	BackupSuffix = ".bak"
	// MaxBackupCount is how many rotated backups are kept.
	MaxBackupCount = 3
)

// BackupPath returns the path of the n-th backup of the given log
// file. Lower numbers are more recent: time.txt.bak.1 is the newest.
func BackupPath(logPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", logPath, BackupSuffix, n)
}

// rotateBackups shifts existing backups up one slot, dropping the
// oldest, so slot 1 is free for a fresh backup.
func rotateBackups(logPath string) error {
	oldest := BackupPath(logPath, MaxBackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		from := BackupPath(logPath, i)
		to := BackupPath(logPath, i+1)
		if err := os.Rename(from, to); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies the current log file to the .bak.1 slot after
// rotating older backups. A missing log file is not an error; there is
// simply nothing to back up.
func CreateBackup(logPath string) error {
	if _, err := os.Stat(logPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(logPath); err != nil {
		return err
	}

	src, err := os.Open(logPath)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(BackupPath(logPath, 1), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = dst.Close() }()

	_, err = io.Copy(dst, src)
	return err
}
