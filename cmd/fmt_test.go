package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/timetxt/timetxt/internal/storage"
)

func setWriteFlag(t *testing.T, value string) {
	t.Helper()
	if err := fmtCmd.Flags().Set("write", value); err != nil {
		t.Fatalf("setting write flag failed: %v", err)
	}
	t.Cleanup(func() { _ = fmtCmd.Flags().Set("write", "false") })
}

func TestFormatLog_PrintsCanonical(t *testing.T) {
	path := writeTempLog(t, "1822-01-16\n9:00 9:30 later day\n1822-01-15\n3:00 4:00 earlier day\n")
	d, stdout, stderr, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()

	formatLog(fmtCmd, nil)

	if *exitCode != -1 {
		t.Fatalf("formatLog exited with %d, stderr: %s", *exitCode, stderr.String())
	}
	want := "1822-01-15\n03:00 04:00 earlier day\n1822-01-16\n09:00 09:30 later day\n"
	if stdout.String() != want {
		t.Errorf("formatLog output = %q, expected %q", stdout.String(), want)
	}

	// Without --write the file itself is untouched.
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "9:00 9:30") {
		t.Error("formatLog rewrote the file without --write")
	}
}

func TestFormatLog_WriteRewritesInPlace(t *testing.T) {
	original := "1822-01-15\n3:00 4:00 unpadded\n"
	path := writeTempLog(t, original)
	d, stdout, stderr, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()
	setWriteFlag(t, "true")

	formatLog(fmtCmd, nil)

	if *exitCode != -1 {
		t.Fatalf("formatLog exited with %d, stderr: %s", *exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Formatted "+path+" (1 entry)") {
		t.Errorf("stdout = %q, expected a Formatted confirmation", stdout.String())
	}

	data, _ := os.ReadFile(path)
	if string(data) != "1822-01-15\n03:00 04:00 unpadded\n" {
		t.Errorf("file = %q, expected canonical form", data)
	}

	backup, err := os.ReadFile(storage.BackupPath(path, 1))
	if err != nil {
		t.Fatalf("reading backup failed: %v", err)
	}
	if string(backup) != original {
		t.Errorf("backup = %q, expected the original content", backup)
	}
}

func TestFormatLog_ParseErrorAborts(t *testing.T) {
	path := writeTempLog(t, "1822-01-15\n25:99 4:00 bad\n")
	d, _, _, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()
	setWriteFlag(t, "true")

	formatLog(fmtCmd, nil)

	if *exitCode != 1 {
		t.Errorf("formatLog exit code = %d, expected 1", *exitCode)
	}
	// The broken file must not be rewritten.
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "25:99") {
		t.Error("formatLog rewrote a file that failed to parse")
	}
}
