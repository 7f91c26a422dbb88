// Package filter matches stored entries against parsed query expressions.
package filter

import (
	"strings"

	"github.com/yic95/expense-input-format/internal/entry"
)

// Filter wraps a parsed query for matching against entries. Fields the
// query leaves empty match every entry.
type Filter struct {
	Query entry.Query
}

// New creates a Filter for the given query.
func New(q entry.Query) *Filter {
	return &Filter{Query: q}
}

// IsEmpty reports whether the filter matches all entries.
func (f *Filter) IsEmpty() bool {
	return f.Query.IsEmpty()
}

// Entries returns the entries matching the filter. An empty filter
// returns the input unchanged.
func Entries(entries []entry.Entry, f *Filter) []entry.Entry {
	if f.IsEmpty() {
		return entries
	}
	matched := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Matches reports whether the entry satisfies every constraint of the
// query. Constraints combine with AND; alternatives within one
// constraint combine with OR.
func (f *Filter) Matches(e entry.Entry) bool {
	return f.MatchesExpense(e) && f.MatchesTitle(e) &&
		f.MatchesDate(e) && f.MatchesTags(e)
}

// MatchesExpense reports whether the entry's expense equals any of the
// query's expense alternatives. No alternatives matches all entries.
func (f *Filter) MatchesExpense(e entry.Entry) bool {
	if len(f.Query.Expense) == 0 {
		return true
	}
	for _, alt := range f.Query.Expense {
		if e.Expense == alt {
			return true
		}
	}
	return false
}

// MatchesTitle reports whether the query's title keyword occurs in the
// entry's title (case-insensitive). An empty keyword matches all entries.
func (f *Filter) MatchesTitle(e entry.Entry) bool {
	if f.Query.Title == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), strings.ToLower(f.Query.Title))
}

// MatchesDate reports whether the entry's date satisfies every date
// alternative set of the query. A set is satisfied when the entry's date
// starts with any of its alternatives, so "2024-01" matches the whole
// month and "2024" the whole year.
func (f *Filter) MatchesDate(e entry.Entry) bool {
	for _, set := range f.Query.Dates {
		if !anyPrefix(e.Date, set) {
			return false
		}
	}
	return true
}

// MatchesTags reports whether the entry satisfies every tag alternative
// set of the query: for each set, the entry must carry at least one of
// the set's tags (case-insensitive).
func (f *Filter) MatchesTags(e entry.Entry) bool {
	for _, set := range f.Query.Tags {
		if !anyTag(e.Tags, set) {
			return false
		}
	}
	return true
}

func anyPrefix(date string, alternatives []string) bool {
	for _, alt := range alternatives {
		if strings.HasPrefix(date, alt) {
			return true
		}
	}
	return false
}

func anyTag(tags, alternatives []string) bool {
	for _, alt := range alternatives {
		for _, t := range tags {
			if strings.EqualFold(t, alt) {
				return true
			}
		}
	}
	return false
}
