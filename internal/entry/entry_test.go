package entry

import (
	"reflect"
	"testing"
)

func TestApplyDefaults_ScalarsOnlyWhenAbsent(t *testing.T) {
	entries := []Entry{
		{Expense: "12.50"},
		{Title: "kept title", Date: "2024-01-01"},
	}
	d := Defaults{Expense: "0", Title: "--untitled--", Date: "2024-12-31"}

	ApplyDefaults(entries, d)

	if entries[0].Expense != "12.50" {
		t.Errorf("existing Expense overwritten: %q", entries[0].Expense)
	}
	if entries[0].Title != "--untitled--" {
		t.Errorf("Title = %q, expected default applied", entries[0].Title)
	}
	if entries[0].Date != "2024-12-31" {
		t.Errorf("Date = %q, expected default applied", entries[0].Date)
	}
	if entries[1].Title != "kept title" || entries[1].Date != "2024-01-01" {
		t.Errorf("existing fields overwritten: %+v", entries[1])
	}
	if entries[1].Expense != "0" {
		t.Errorf("Expense = %q, expected default applied", entries[1].Expense)
	}
}

func TestApplyDefaults_TagsAppendWithoutDedup(t *testing.T) {
	entries := []Entry{
		{Tags: []string{"food"}},
		{},
	}
	d := Defaults{Tags: []string{"monthly", "food"}}

	ApplyDefaults(entries, d)

	if expected := []string{"food", "monthly", "food"}; !reflect.DeepEqual(entries[0].Tags, expected) {
		t.Errorf("Tags = %v, expected appended without dedup %v", entries[0].Tags, expected)
	}
	if expected := []string{"monthly", "food"}; !reflect.DeepEqual(entries[1].Tags, expected) {
		t.Errorf("Tags = %v, expected %v", entries[1].Tags, expected)
	}
}

func TestDedupTags(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"duplicates removed in order", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"single tag", []string{"a"}, []string{"a"}},
		{"nil tags", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Tags: tt.tags}
			e.DedupTags()
			if !reflect.DeepEqual(e.Tags, tt.expected) {
				t.Errorf("DedupTags() left %v, expected %v", e.Tags, tt.expected)
			}
		})
	}
}

func TestHasTag(t *testing.T) {
	e := Entry{Tags: []string{"food", "drink"}}

	if !e.HasTag("food") {
		t.Error("HasTag(\"food\") = false, expected true")
	}
	if e.HasTag("Food") {
		t.Error("HasTag(\"Food\") = true, expected case-sensitive false")
	}
	if e.HasTag("cash") {
		t.Error("HasTag(\"cash\") = true, expected false")
	}
}

func TestIsZero(t *testing.T) {
	if !(Entry{}).IsZero() {
		t.Error("zero Entry reported non-zero")
	}
	if (Entry{Seq: "1"}).IsZero() {
		t.Error("Entry with Seq reported zero")
	}
	if (Entry{Tags: []string{"a"}}).IsZero() {
		t.Error("Entry with Tags reported zero")
	}
}
