package cmd

import (
	"os"
	"strings"
	"testing"
)

func setAddFlags(t *testing.T, date, file string) {
	t.Helper()
	if err := addCmd.Flags().Set("date", date); err != nil {
		t.Fatalf("setting date flag failed: %v", err)
	}
	if err := addCmd.Flags().Set("file", file); err != nil {
		t.Fatalf("setting file flag failed: %v", err)
	}
	t.Cleanup(func() {
		_ = addCmd.Flags().Set("date", "")
		_ = addCmd.Flags().Set("file", "")
	})
}

func TestAddEntry_AppendsToLog(t *testing.T) {
	path := writeTempLog(t, "1822-01-15\n03:00 04:00 earlier\n")
	d, stdout, stderr, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()
	setAddFlags(t, "1822-01-15", "")

	addEntry(addCmd, []string{"4:00", "5:00", "later work"})

	if *exitCode != -1 {
		t.Fatalf("addEntry exited with %d, stderr: %s", *exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Logged: 04:00 05:00 later work (1822-01-15)") {
		t.Errorf("stdout = %q, expected a Logged confirmation", stdout.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log failed: %v", err)
	}
	want := "1822-01-15\n03:00 04:00 earlier\n04:00 05:00 later work\n"
	if string(data) != want {
		t.Errorf("log = %q, expected %q", data, want)
	}
}

func TestAddEntry_FileFlagWins(t *testing.T) {
	path := writeTempLog(t, "")
	d, _, stderr, exitCode := testDeps("/nonexistent/default")
	SetDeps(d)
	defer ResetDeps()
	setAddFlags(t, "1822-01-15", path)

	addEntry(addCmd, []string{"3:00 4:00 flagged file"})

	if *exitCode != -1 {
		t.Fatalf("addEntry exited with %d, stderr: %s", *exitCode, stderr.String())
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "flagged file") {
		t.Errorf("entry was not written to the --file target, log: %q", data)
	}
}

func TestAddEntry_InvalidDate(t *testing.T) {
	path := writeTempLog(t, "")
	d, _, stderr, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()
	setAddFlags(t, "15/01/1822", "")

	addEntry(addCmd, []string{"3:00 4:00 work"})

	if *exitCode != 1 {
		t.Errorf("addEntry exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Invalid date") {
		t.Errorf("stderr = %q, expected an invalid date message", stderr.String())
	}
}

func TestAddEntry_InvalidEntryLine(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no times", []string{"just a description"}},
		{"bad hour", []string{"25:99 4:00 bad"}},
		{"start too narrow", []string{"3:0 4:00 bad width"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempLog(t, "")
			d, _, stderr, exitCode := testDeps(path)
			SetDeps(d)
			defer ResetDeps()
			setAddFlags(t, "1822-01-15", "")

			addEntry(addCmd, tt.args)

			if *exitCode != 1 {
				t.Errorf("addEntry exit code = %d, expected 1", *exitCode)
			}
			if !strings.Contains(stderr.String(), "Invalid entry") {
				t.Errorf("stderr = %q, expected an invalid entry message", stderr.String())
			}
			// Single-line validation has no source line to point at.
			if strings.Contains(stderr.String(), "line 0") {
				t.Errorf("stderr = %q, should not name a line number", stderr.String())
			}

			data, _ := os.ReadFile(path)
			if len(data) != 0 {
				t.Errorf("invalid entry was written anyway: %q", data)
			}
		})
	}
}
