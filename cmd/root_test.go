package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yic95/expense-input-format/internal/entry"
	"github.com/yic95/expense-input-format/internal/storage"
)

// testDeps creates test dependencies with captured output and temp paths.
func testDeps(t *testing.T) (*Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0
	d := &Deps{
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  strings.NewReader(""),
		Exit:   func(code int) { exitCode = code },
		StoragePath: func() (string, error) {
			return filepath.Join(dir, storage.EntriesFile), nil
		},
		ConfigPath: func() (string, error) {
			return filepath.Join(dir, "config.toml"), nil
		},
	}
	return d, stdout, stderr, &exitCode
}

// writeTestConfig writes a config file at the path the deps resolve to.
func writeTestConfig(t *testing.T, d *Deps, content string) {
	t.Helper()
	path, err := d.ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() returned unexpected error: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
}

func TestAddEntries_SingleEntryWithProseTitle(t *testing.T) {
	d, stdout, _, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	addEntries([]string{"12.50", "coffee", "with", "friends"})

	if *exitCode != 0 {
		t.Fatalf("addEntries() exited with code %d", *exitCode)
	}

	path, _ := d.StoragePath()
	entries, err := storage.ReadEntries(path, false)
	if err != nil {
		t.Fatalf("ReadEntries() returned unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("stored %d entries, expected 1", len(entries))
	}
	if entries[0].Expense != "12.50" {
		t.Errorf("Expense = %q, expected %q", entries[0].Expense, "12.50")
	}
	if entries[0].Title != "coffee/with/friends" {
		t.Errorf("Title = %q, expected %q", entries[0].Title, "coffee/with/friends")
	}
	if entries[0].Seq != "1" {
		t.Errorf("Seq = %q, expected %q", entries[0].Seq, "1")
	}
	if !strings.Contains(stdout.String(), "Recorded 1 entry") {
		t.Errorf("stdout = %q, expected confirmation message", stdout.String())
	}
}

func TestAddEntries_MultipleEntriesGetUniqueSeq(t *testing.T) {
	d, _, _, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	path, _ := d.StoragePath()
	seed := []entry.Entry{{Expense: "1.00", Seq: "1"}}
	if err := storage.AppendEntries(path, seed, false); err != nil {
		t.Fatalf("failed to seed storage: %v", err)
	}

	addEntries([]string{"12.50:food", "20.00@2024-01-02"})

	if *exitCode != 0 {
		t.Fatalf("addEntries() exited with code %d", *exitCode)
	}

	entries, err := storage.ReadEntries(path, false)
	if err != nil {
		t.Fatalf("ReadEntries() returned unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("stored %d entries, expected 3", len(entries))
	}
	if entries[1].Seq != "2" || entries[2].Seq != "3" {
		t.Errorf("new seqs = %q, %q, expected 2 and 3", entries[1].Seq, entries[2].Seq)
	}
}

func TestAddEntries_AppliesDefaultsAndHierarchy(t *testing.T) {
	d, _, _, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	writeTestConfig(t, d, `
[defaults]
title = "--untitled--"

[hierarchy]
espresso = "coffee"
coffee = "drink"
`)

	addEntries([]string{"3.00:espresso"})

	if *exitCode != 0 {
		t.Fatalf("addEntries() exited with code %d", *exitCode)
	}

	path, _ := d.StoragePath()
	entries, err := storage.ReadEntries(path, false)
	if err != nil {
		t.Fatalf("ReadEntries() returned unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("stored %d entries, expected 1", len(entries))
	}
	e := entries[0]
	if e.Title != "--untitled--" {
		t.Errorf("Title = %q, expected default applied", e.Title)
	}
	for _, tag := range []string{"espresso", "coffee", "drink"} {
		if !e.HasTag(tag) {
			t.Errorf("Tags = %v, expected %q from hierarchy expansion", e.Tags, tag)
		}
	}
}

func TestAddEntries_InvalidConfigFails(t *testing.T) {
	d, _, stderr, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	writeTestConfig(t, d, `
[hierarchy]
a = "b"
b = "a"
`)

	addEntries([]string{"3.00"})

	if *exitCode != 1 {
		t.Errorf("addEntries() exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Failed to load configuration") {
		t.Errorf("stderr = %q, expected config error", stderr.String())
	}
}

func TestListEntries_Empty(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	listEntries()

	if !strings.Contains(stdout.String(), "No entries recorded") {
		t.Errorf("stdout = %q, expected empty-storage message", stdout.String())
	}
}

func TestListEntries_ShowsStoredEntries(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	path, _ := d.StoragePath()
	seed := []entry.Entry{
		{Expense: "12.50", Title: "lunch", Seq: "1"},
		{Expense: "3.00", Title: "espresso", Seq: "2"},
	}
	if err := storage.AppendEntries(path, seed, false); err != nil {
		t.Fatalf("failed to seed storage: %v", err)
	}

	listEntries()

	out := stdout.String()
	for _, expected := range []string{"12.50", "lunch", "3.00", "espresso", "Total: 2 entries"} {
		if !strings.Contains(out, expected) {
			t.Errorf("stdout = %q, expected it to contain %q", out, expected)
		}
	}
}

func TestListEntries_WarnsOnSuspectRows(t *testing.T) {
	d, _, stderr, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	path, _ := d.StoragePath()
	if err := os.WriteFile(path, []byte("2024-05-01\t1\n"), 0644); err != nil {
		t.Fatalf("failed to seed storage: %v", err)
	}

	listEntries()

	if !strings.Contains(stderr.String(), "suspect row") {
		t.Errorf("stderr = %q, expected suspect row warning", stderr.String())
	}
}

func TestListEntries_SkipHeaderConfig(t *testing.T) {
	d, stdout, stderr, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	writeTestConfig(t, d, "skip_header = true\n")

	path, _ := d.StoragePath()
	content := "date\tseq\texpense\ttitle\ttags\n" +
		"2024-05-01\t1\t12.50\tlunch\t::food::\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to seed storage: %v", err)
	}

	listEntries()

	if *exitCode != 0 {
		t.Fatalf("listEntries() exited with code %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Total: 1 entry") {
		t.Errorf("stdout = %q, expected the header row excluded from the listing", stdout.String())
	}
	if strings.Contains(stderr.String(), "suspect row") {
		t.Errorf("stderr = %q, expected no warning for the header row", stderr.String())
	}
}

func TestAddEntries_SkipHeaderConfigCreatesHeader(t *testing.T) {
	d, _, _, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	writeTestConfig(t, d, "skip_header = true\n")

	addEntries([]string{"12.50:food"})

	if *exitCode != 0 {
		t.Fatalf("addEntries() exited with code %d", *exitCode)
	}

	path, _ := d.StoragePath()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read storage: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("file has %d lines, expected header plus 1 row", len(lines))
	}
	if lines[0] != "date\tseq\texpense\ttitle\ttags" {
		t.Errorf("first line = %q, expected the header row", lines[0])
	}

	entries, err := storage.ReadEntries(path, true)
	if err != nil {
		t.Fatalf("ReadEntries() returned unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Expense != "12.50" {
		t.Errorf("entries = %+v, expected the single recorded entry", entries)
	}
}
