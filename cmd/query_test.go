package cmd

import (
	"strings"
	"testing"

	"github.com/yic95/expense-input-format/internal/entry"
	"github.com/yic95/expense-input-format/internal/storage"
)

func seedQueryEntries(t *testing.T, d *Deps) {
	t.Helper()
	path, _ := d.StoragePath()
	seed := []entry.Entry{
		{Expense: "12.50", Title: "lunch at the market", Date: "2024-05-01", Tags: []string{"food"}, Seq: "1"},
		{Expense: "20.00", Title: "concert tickets", Date: "2024-06-15", Tags: []string{"leisure"}, Seq: "2"},
	}
	if err := storage.AppendEntries(path, seed, false); err != nil {
		t.Fatalf("failed to seed storage: %v", err)
	}
}

func TestQueryEntries_ByTag(t *testing.T) {
	d, stdout, _, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()
	seedQueryEntries(t, d)

	queryEntries([]string{":food"})

	if *exitCode != 0 {
		t.Fatalf("queryEntries() exited with code %d", *exitCode)
	}
	out := stdout.String()
	if !strings.Contains(out, "12.50") {
		t.Errorf("stdout = %q, expected the food entry", out)
	}
	if strings.Contains(out, "20.00") {
		t.Errorf("stdout = %q, expected the leisure entry filtered out", out)
	}
	if !strings.Contains(out, "Total: 1 entry") {
		t.Errorf("stdout = %q, expected total line", out)
	}
}

func TestQueryEntries_ByDatePrefix(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()
	seedQueryEntries(t, d)

	queryEntries([]string{"@2024-06"})

	out := stdout.String()
	if !strings.Contains(out, "20.00") || strings.Contains(out, "12.50") {
		t.Errorf("stdout = %q, expected only the June entry", out)
	}
}

func TestQueryEntries_Alternatives(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()
	seedQueryEntries(t, d)

	queryEntries([]string{"12.50,20.00"})

	out := stdout.String()
	if !strings.Contains(out, "Total: 2 entries") {
		t.Errorf("stdout = %q, expected both entries matched", out)
	}
}

func TestQueryEntries_NoMatch(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()
	seedQueryEntries(t, d)

	queryEntries([]string{":travel"})

	if !strings.Contains(stdout.String(), "No entries match") {
		t.Errorf("stdout = %q, expected no-match message", stdout.String())
	}
}

func TestQueryEntries_TitleKeyword(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()
	seedQueryEntries(t, d)

	queryEntries([]string{"/market"})

	out := stdout.String()
	if !strings.Contains(out, "lunch at the market") {
		t.Errorf("stdout = %q, expected the market entry", out)
	}
	if strings.Contains(out, "concert") {
		t.Errorf("stdout = %q, expected the concert entry filtered out", out)
	}
}
