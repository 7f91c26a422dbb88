package entry

import (
	"sort"
	"strings"
)

// Segment delimiters. Slash and at are fixed; the tags delimiter is
// configurable because both ':' and ',' exist in stored data from older
// versions of the format.
const (
	titleDelimiter = '/'
	dateDelimiter  = '@'
	// DefaultTagDelimiter is the canonical tags delimiter.
	DefaultTagDelimiter = ':'
)

// Options configures the entry tokenizer.
type Options struct {
	// TagDelimiter is the character that switches to a tags segment.
	// Zero value falls back to DefaultTagDelimiter.
	TagDelimiter rune
	// MultiDate collects every date segment into Entry.Dates instead of
	// keeping only the first in Entry.Date.
	MultiDate bool
	// SortTags sorts the parsed tags lexicographically (legacy behavior).
	SortTags bool
	// KeepControlChars retains NUL, newline, carriage return and tab as
	// literal segment content instead of stripping them. Used by the
	// query parser, where input is a single shell-quoted argument.
	KeepControlChars bool
}

// DefaultOptions returns the canonical tokenizer configuration:
// ':' for tags, single date (first wins), tags in first-seen order.
func DefaultOptions() Options {
	return Options{TagDelimiter: DefaultTagDelimiter}
}

// segment types tracked during the scan
type segmentType int

const (
	segExpense segmentType = iota
	segTitle
	segDate
	segTags
)

// Parse parses a single DSL entry from text.
//
// The scan starts in the expense segment. '/' switches to the title
// segment (permanently: inside a title every delimiter is literal), '@'
// switches to the date segment, and the configured tag delimiter switches
// to a tags segment. The accumulated text is stored under the segment
// type active before the switch. Tags segments accumulate; expense,
// title, and (without MultiDate) date keep the first non-empty value.
//
// Parse is total: there is no malformed input, and the zero Entry is the
// result of the empty string.
func Parse(text string, opts Options) Entry {
	if opts.TagDelimiter == 0 {
		opts.TagDelimiter = DefaultTagDelimiter
	}

	var e Entry
	var buf strings.Builder
	seg := segExpense

	flush := func() {
		store(&e, seg, buf.String(), opts.MultiDate)
		buf.Reset()
	}

	for _, r := range text {
		if !opts.KeepControlChars && isControlChar(r) {
			continue
		}
		if seg != segTitle {
			switch r {
			case titleDelimiter:
				flush()
				seg = segTitle
				continue
			case dateDelimiter:
				flush()
				seg = segDate
				continue
			case opts.TagDelimiter:
				flush()
				seg = segTags
				continue
			}
		}
		buf.WriteRune(r)
	}
	flush()

	if opts.SortTags {
		sort.Strings(e.Tags)
	}
	return e
}

// store flushes one segment's text into the entry.
func store(e *Entry, seg segmentType, text string, multiDate bool) {
	switch seg {
	case segTags:
		e.Tags = append(e.Tags, text)
	case segDate:
		if multiDate {
			e.Dates = append(e.Dates, text)
		} else if e.Date == "" {
			e.Date = text
		}
	case segExpense:
		if e.Expense == "" {
			e.Expense = text
		}
	case segTitle:
		if e.Title == "" {
			e.Title = text
		}
	}
}

func isControlChar(r rune) bool {
	return r == '\x00' || r == '\n' || r == '\r' || r == '\t'
}
