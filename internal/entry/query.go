package entry

import "strings"

// Query is a parsed filter expression. It uses the same lexical DSL as an
// entry, but expense, every date segment, and every tag segment are split
// on commas into alternative sets with OR semantics. Title stays a plain
// keyword.
type Query struct {
	// Expense lists acceptable expense values; empty means any.
	Expense []string
	// Title is a keyword matched against entry titles; empty means any.
	Title string
	// Dates holds one alternative set per date segment in the query.
	Dates [][]string
	// Tags holds one alternative set per tags segment in the query.
	Tags [][]string
}

// IsEmpty reports whether the query constrains nothing.
func (q Query) IsEmpty() bool {
	return len(q.Expense) == 0 && q.Title == "" &&
		len(q.Dates) == 0 && len(q.Tags) == 0
}

// ParseQuery parses a filter expression.
//
// The text is parsed in multi-date mode with control characters kept
// literal, then each collected value is comma-split into alternatives.
// Example with the default delimiters:
//
//	"12.50,13.00@2024-01,2024-02:food,drink/coffee"
//
// matches entries whose expense is 12.50 or 13.00, whose date starts with
// 2024-01 or 2024-02, tagged food or drink, with "coffee" in the title.
func ParseQuery(text string, opts Options) Query {
	opts.MultiDate = true
	opts.KeepControlChars = true
	e := Parse(text, opts)

	q := Query{Title: e.Title}
	if e.Expense != "" {
		q.Expense = strings.Split(e.Expense, ",")
	}
	for _, d := range e.Dates {
		q.Dates = append(q.Dates, strings.Split(d, ","))
	}
	for _, t := range e.Tags {
		q.Tags = append(q.Tags, strings.Split(t, ","))
	}
	return q
}
