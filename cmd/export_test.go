package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const exportFixture = "1822-01-15\n" +
	"3:00 4:00 Sketched ideas\n" +
	"4:00 11:00 Created the first computer\n"

func TestExportJSON(t *testing.T) {
	path := writeTempLog(t, exportFixture)
	d, stdout, stderr, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()

	exportLog(nil, encodeJSON)

	if *exitCode != -1 {
		t.Fatalf("export exited with %d, stderr: %s", *exitCode, stderr.String())
	}

	var doc exportDocument
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.TotalEntries != 2 || len(doc.Entries) != 2 {
		t.Fatalf("document has %d/%d entries, expected 2", doc.TotalEntries, len(doc.Entries))
	}

	first := doc.Entries[0]
	if first.Date != "1822-01-15" || first.Start != "03:00" || first.End != "04:00" {
		t.Errorf("first record = %+v, expected padded times and the date", first)
	}
	if first.Minutes != 60 {
		t.Errorf("first record minutes = %d, expected 60", first.Minutes)
	}
	if doc.ExportedAt == "" {
		t.Error("exported_at metadata is empty")
	}
}

func TestExportCSV(t *testing.T) {
	path := writeTempLog(t, exportFixture)
	d, stdout, stderr, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()

	exportLog(nil, encodeCSV)

	if *exitCode != -1 {
		t.Fatalf("export exited with %d, stderr: %s", *exitCode, stderr.String())
	}

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, expected header plus 2 records", len(lines))
	}
	if lines[0] != "date,start,end,minutes,description" {
		t.Errorf("CSV header = %q", lines[0])
	}
	if lines[1] != "1822-01-15,03:00,04:00,60,Sketched ideas" {
		t.Errorf("first CSV record = %q", lines[1])
	}
	if lines[2] != "1822-01-15,04:00,11:00,420,Created the first computer" {
		t.Errorf("second CSV record = %q", lines[2])
	}
}

func TestExportYAML(t *testing.T) {
	path := writeTempLog(t, exportFixture)
	d, stdout, stderr, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()

	exportLog(nil, encodeYAML)

	if *exitCode != -1 {
		t.Fatalf("export exited with %d, stderr: %s", *exitCode, stderr.String())
	}

	var doc exportDocument
	if err := yaml.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(doc.Entries) != 2 {
		t.Fatalf("document has %d entries, expected 2", len(doc.Entries))
	}
	if doc.Entries[1].Description != "Created the first computer" {
		t.Errorf("second record description = %q", doc.Entries[1].Description)
	}
}

func TestExport_ParseError(t *testing.T) {
	path := writeTempLog(t, "1822-01-15\n25:99 4:00 bad\n")
	d, stdout, _, exitCode := testDeps(path)
	SetDeps(d)
	defer ResetDeps()

	exportLog(nil, encodeJSON)

	if *exitCode != 1 {
		t.Errorf("export exit code = %d, expected 1", *exitCode)
	}
	if stdout.Len() != 0 {
		t.Errorf("export wrote output despite the parse error: %q", stdout.String())
	}
}
