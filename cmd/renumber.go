package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yic95/expense-input-format/internal/cli"
	"github.com/yic95/expense-input-format/internal/sequence"
	"github.com/yic95/expense-input-format/internal/storage"
)

// renumberCmd represents the renumber command
var renumberCmd = &cobra.Command{
	Use:   "renumber",
	Short: "Reassign sequence numbers",
	Long: `Reassign sequence numbers across all stored entries.

Without flags, entries lacking a number get the lowest free number at or
above 1; existing numbers are preserved. With --overwrite every entry is
renumbered 1..N in storage order. --start shifts the first assigned
number.

A rotated backup of the storage file is created before rewriting.

Examples:
  eif renumber                    Fill in missing numbers
  eif renumber --start 100        Fill in missing numbers from 100
  eif renumber --overwrite        Renumber everything from 1`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		start, _ := cmd.Flags().GetInt("start")
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		renumberEntries(start, overwrite)
	},
}

func init() {
	rootCmd.AddCommand(renumberCmd)

	renumberCmd.Flags().Int("start", 1, "First sequence number to assign")
	renumberCmd.Flags().Bool("overwrite", false, "Discard existing sequence numbers")
}

// renumberEntries rewrites the storage file with reassigned sequence numbers
func renumberEntries(start int, overwrite bool) {
	cfg, ok := loadConfig()
	if !ok {
		return
	}

	path, ok := storagePath()
	if !ok {
		return
	}

	entries, err := storage.ReadEntries(path, cfg.SkipHeader)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read entries from storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that file exists and is readable: %s\n", path)
		deps.Exit(1)
		return
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries to renumber")
		return
	}

	if err := sequence.Assign(entries, start, overwrite); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to assign sequence numbers")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use --overwrite to discard unparseable sequence numbers")
		deps.Exit(1)
		return
	}

	if err := storage.CreateBackup(path); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to back up storage file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that directory is writable: %s\n", path)
		deps.Exit(1)
		return
	}

	if err := storage.WriteEntries(path, entries, cfg.SkipHeader); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write entries to storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that file is writable: %s\n", path)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Renumbered %d %s\n", len(entries), cli.Pluralize("entry", len(entries)))
}
