package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yic95/expense-input-format/internal/entry"
	"github.com/yic95/expense-input-format/internal/storage"
	"github.com/yic95/expense-input-format/internal/tsv"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries to various formats",
	Long: `Export recorded entries for programmatic use, backup, or migration.

Available formats:
  tsv     The storage format itself (optionally with a header row)
  json    A JSON document with export metadata

Examples:
  eif export tsv                 Print all entries as TSV
  eif export tsv --header        Include a header row
  eif export json > backup.json  Export to file`,
}

// exportTSVCmd represents the export tsv command
var exportTSVCmd = &cobra.Command{
	Use:   "tsv",
	Short: "Export entries as TSV",
	Long: `Export all recorded entries in the tab-separated storage format.

Columns are date, seq, expense, title, tags. Absent date and title are
written as '::::'; the tags column is bracketed in double colons. With
--header, a column-name row is written first (readable back with the
skip_header config option).`,
	Run: func(cmd *cobra.Command, args []string) {
		header, _ := cmd.Flags().GetBool("header")
		exportTSV(header)
	},
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export entries as JSON",
	Long: `Export all recorded entries to JSON.

Output includes metadata (export timestamp, total entries) and an array
of entry objects.`,
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportTSVCmd)
	exportCmd.AddCommand(exportJSONCmd)

	exportTSVCmd.Flags().Bool("header", false, "Write a column-name header row")
}

// readAllForExport loads the storage file for an export command.
func readAllForExport() ([]entry.Entry, bool) {
	cfg, ok := loadConfig()
	if !ok {
		return nil, false
	}

	path, ok := storagePath()
	if !ok {
		return nil, false
	}

	entries, err := storage.ReadEntries(path, cfg.SkipHeader)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read entries from storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that file exists and is readable: %s\n", path)
		deps.Exit(1)
		return nil, false
	}
	return entries, true
}

// exportTSV writes all entries as TSV rows to stdout
func exportTSV(header bool) {
	entries, ok := readAllForExport()
	if !ok {
		return
	}

	if header {
		_, _ = fmt.Fprintln(deps.Stdout, tsv.Header)
	}
	for _, row := range tsv.Encode(entries) {
		_, _ = fmt.Fprintln(deps.Stdout, row)
	}
}

// jsonExport is the document shape of 'export json'
type jsonExport struct {
	ExportedAt   time.Time     `json:"exported_at"`
	TotalEntries int           `json:"total_entries"`
	Entries      []entry.Entry `json:"entries"`
}

// exportJSON writes all entries as a JSON document to stdout
func exportJSON() {
	entries, ok := readAllForExport()
	if !ok {
		return
	}

	doc := jsonExport{
		ExportedAt:   time.Now(),
		TotalEntries: len(entries),
		Entries:      entries,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to encode entries as JSON: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, string(data))
}
