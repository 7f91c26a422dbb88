package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yic95/expense-input-format/internal/cli"
	"github.com/yic95/expense-input-format/internal/entry"
	"github.com/yic95/expense-input-format/internal/filter"
	"github.com/yic95/expense-input-format/internal/storage"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <expression>",
	Short: "Search recorded entries",
	Long: `Search recorded entries with a filter expression.

The expression uses the same syntax as an entry, but every field value
is a comma-separated list of alternatives. Within one field any
alternative may match; separate fields must all match.

Expenses match exactly, dates match by prefix (so '@2024-05' matches the
whole month), tags match case-insensitively, and the title part is a
case-insensitive keyword search.

Examples:
  eif query 12.50                     Entries with expense 12.50
  eif query 12.50,20.00               ... or 20.00
  eif query @2024-05                  Entries from May 2024
  eif query :food,drink               Entries tagged food or drink
  eif query :food:drink               Entries tagged food AND drink
  eif query /coffee                   Entries with 'coffee' in the title
  eif query '@2024:food/market'       Combined filters`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		queryEntries(args)
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

// queryEntries handles the query command logic
func queryEntries(args []string) {
	cfg, ok := loadConfig()
	if !ok {
		return
	}

	expression := strings.Join(args, " ")
	q := entry.ParseQuery(expression, cfg.ParserOptions())
	f := filter.New(q)

	path, ok := storagePath()
	if !ok {
		return
	}

	result, err := storage.ReadEntriesWithWarnings(path, cfg.SkipHeader)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read entries from storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that file exists and is readable: %s\n", path)
		deps.Exit(1)
		return
	}

	printRowWarnings(result.Warnings)

	matched := filter.Entries(result.Entries, f)
	if len(matched) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries match '%s'\n", expression)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Entries matching '%s':\n", expression)
	_, _ = fmt.Fprintln(deps.Stdout, cli.Rule(50))
	for _, e := range matched {
		_, _ = fmt.Fprintf(deps.Stdout, "%s\n", cli.FormatEntry(e))
	}
	_, _ = fmt.Fprintln(deps.Stdout, cli.Rule(50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %d %s\n", len(matched), cli.Pluralize("entry", len(matched)))
}
