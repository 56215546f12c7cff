package cmd

import (
	"strings"
	"testing"
)

func TestShowTotals(t *testing.T) {
	path := writeTempLog(t, "1822-01-15\n"+
		"3:00 4:00 sketching\n"+
		"4:00 11:00 building\n"+
		"1822-01-16\n"+
		"15:30 17:30 naming\n")
	d, stdout, stderr, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()

	showTotals(nil)

	if *exitCode != -1 {
		t.Fatalf("showTotals exited with %d, stderr: %s", *exitCode, stderr.String())
	}
	want := "1822-01-15  08:00  (2 entries)\n" +
		"1822-01-16  02:00  (1 entry)\n" +
		"Total: 10:00\n"
	if stdout.String() != want {
		t.Errorf("showTotals output = %q, expected %q", stdout.String(), want)
	}
}

func TestShowTotals_EmptyLog(t *testing.T) {
	path := writeTempLog(t, "// nothing yet\n")
	d, stdout, _, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()

	showTotals(nil)

	if *exitCode != -1 {
		t.Fatalf("showTotals exited with %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "No entries") {
		t.Errorf("stdout = %q, expected a no-entries message", stdout.String())
	}
}

func TestShowTotals_ParseError(t *testing.T) {
	path := writeTempLog(t, "1822-01-15\nnot an entry line\n")
	d, _, stderr, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()

	showTotals(nil)

	if *exitCode != 1 {
		t.Errorf("showTotals exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Failed to parse") {
		t.Errorf("stderr = %q, expected a parse failure", stderr.String())
	}
}
