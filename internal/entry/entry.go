// Package entry defines the expense entry record and the DSL parsers
// that produce it from raw input text.
package entry

// Entry represents a single expense entry.
//
// Scalar fields use the empty string as their "absent" value. Date holds
// the single-date form; Dates is only populated when parsing with
// Options.MultiDate (query mode). Tags may contain duplicates until a
// hierarchy expansion or an explicit dedup pass runs.
type Entry struct {
	Expense string   `json:"expense"`
	Title   string   `json:"title"`
	Date    string   `json:"date,omitempty"`
	Dates   []string `json:"dates,omitempty"`
	Tags    []string `json:"tags"`
	Seq     string   `json:"seq"`
}

// Defaults holds field defaults applied to entries that lack a value.
type Defaults struct {
	Expense string   `toml:"expense"`
	Title   string   `toml:"title"`
	Date    string   `toml:"date"`
	Tags    []string `toml:"tags"`
}

// IsZero reports whether no field of the entry has been set.
func (e Entry) IsZero() bool {
	return e.Expense == "" && e.Title == "" && e.Date == "" &&
		len(e.Dates) == 0 && len(e.Tags) == 0 && e.Seq == ""
}

// ApplyDefaults fills absent scalar fields of each entry from d and appends
// the default tags to each entry's tag list. Default tags are appended
// as-is and are not deduplicated here; hierarchy expansion (or an explicit
// DedupTags call) is the dedup point.
func ApplyDefaults(entries []Entry, d Defaults) {
	for i := range entries {
		if entries[i].Expense == "" {
			entries[i].Expense = d.Expense
		}
		if entries[i].Title == "" {
			entries[i].Title = d.Title
		}
		if entries[i].Date == "" {
			entries[i].Date = d.Date
		}
		if len(d.Tags) > 0 {
			entries[i].Tags = append(entries[i].Tags, d.Tags...)
		}
	}
}

// DedupTags removes duplicate tags from the entry, keeping first-seen order.
func (e *Entry) DedupTags() {
	if len(e.Tags) < 2 {
		return
	}
	seen := make(map[string]struct{}, len(e.Tags))
	deduped := e.Tags[:0]
	for _, t := range e.Tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		deduped = append(deduped, t)
	}
	e.Tags = deduped
}

// HasTag reports whether the entry carries the given tag.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
