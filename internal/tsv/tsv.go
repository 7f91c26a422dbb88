// Package tsv implements the tab-separated persistence format for
// expense entries.
//
// Each row holds five tab-separated columns: date, seq, expense, title,
// tags. Absent date and title render as the literal sentinel "::::"; seq
// and expense render as empty columns. The tags column is always
// bracketed in double colons, "::tag1::tag2::", which makes an empty tag
// list render as "::::" too. On decode that is indistinguishable from
// the absent sentinel, a known ambiguity of the legacy format that is
// kept for round-trip compatibility with existing files.
package tsv

import (
	"strings"

	"github.com/yic95/expense-input-format/internal/entry"
)

const (
	// Sentinel marks an absent date or title column.
	Sentinel = "::::"
	// TagDelim separates and brackets tags within the tags column.
	TagDelim = "::"
	// Header is the optional first row naming the columns.
	Header = "date\tseq\texpense\ttitle\ttags"

	columnCount = 5
)

// Encode renders entries as TSV rows, one row per entry, without header.
func Encode(entries []entry.Entry) []string {
	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, EncodeEntry(e))
	}
	return rows
}

// EncodeEntry renders a single entry as one TSV row.
func EncodeEntry(e entry.Entry) string {
	var b strings.Builder

	if e.Date != "" {
		b.WriteString(e.Date)
	} else {
		b.WriteString(Sentinel)
	}
	b.WriteByte('\t')

	b.WriteString(e.Seq)
	b.WriteByte('\t')

	b.WriteString(e.Expense)
	b.WriteByte('\t')

	if e.Title != "" {
		b.WriteString(e.Title)
	} else {
		b.WriteString(Sentinel)
	}
	b.WriteByte('\t')

	b.WriteString(TagDelim)
	b.WriteString(strings.Join(e.Tags, TagDelim))
	b.WriteString(TagDelim)

	return b.String()
}

// Decode parses TSV rows back into entries. With skipHeader the first row
// is dropped before decoding.
//
// Decoding is lenient: missing trailing columns leave the corresponding
// fields absent, columns beyond the fifth are ignored, and a column equal
// to the sentinel maps to the field's absent value.
func Decode(rows []string, skipHeader bool) []entry.Entry {
	if skipHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	entries := make([]entry.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, DecodeRow(row))
	}
	return entries
}

// DecodeRow parses one TSV row into an entry.
func DecodeRow(row string) entry.Entry {
	var e entry.Entry
	cols := strings.Split(row, "\t")
	if len(cols) > columnCount {
		cols = cols[:columnCount]
	}
	for i, cell := range cols {
		if cell == Sentinel {
			continue
		}
		switch i {
		case 0:
			e.Date = cell
		case 1:
			e.Seq = cell
		case 2:
			e.Expense = cell
		case 3:
			e.Title = cell
		case 4:
			// strip the 2-char brackets, then split on the inner delimiter
			if len(cell) > len(Sentinel)-1 {
				e.Tags = strings.Split(cell[2:len(cell)-2], TagDelim)
			}
		}
	}
	return e
}
