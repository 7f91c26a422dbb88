// Package cli provides the CLI presentation layer for the eif
// application. It handles command-line output formatting.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yic95/expense-input-format/internal/entry"
	"github.com/yic95/expense-input-format/internal/storage"
)

// Styles for the entry list output. Rendering degrades to plain text on
// terminals without color support.
var (
	seqStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	expenseStyle = lipgloss.NewStyle().Bold(true)
	dateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// FormatTags formats a tag list for display, one ":tag" token per tag.
// Returns empty string for no tags.
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	tokens := make([]string, 0, len(tags))
	for _, t := range tags {
		tokens = append(tokens, tagStyle.Render(":"+t))
	}
	return strings.Join(tokens, " ")
}

// FormatEntry formats an entry for display.
// Example: "[3] 12.50  coffee with friends  @2024-05-01  :food :drink"
func FormatEntry(e entry.Entry) string {
	parts := []string{}

	if e.Seq != "" {
		parts = append(parts, seqStyle.Render("["+e.Seq+"]"))
	}
	if e.Expense != "" {
		parts = append(parts, expenseStyle.Render(e.Expense))
	}
	if e.Title != "" {
		parts = append(parts, e.Title)
	}
	if e.Date != "" {
		parts = append(parts, dateStyle.Render("@"+e.Date))
	}
	if tags := FormatTags(e.Tags); tags != "" {
		parts = append(parts, tags)
	}

	if len(parts) == 0 {
		return "(empty entry)"
	}
	return strings.Join(parts, "  ")
}

// Rule returns a horizontal separator line of the given width.
func Rule(width int) string {
	return ruleStyle.Render(strings.Repeat("-", width))
}

// FormatRowWarning formats a storage RowWarning into a human-readable
// string with line number, truncated content (max 50 chars), and the
// problem description.
func FormatRowWarning(w storage.RowWarning) string {
	content := w.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("  Line %d: %s (%s)", w.LineNumber, content, w.Problem)
}

// Pluralize returns the singular or plural form of a word based on count.
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return word[:len(word)-1] + "ies"
	}
	return word + "s"
}
