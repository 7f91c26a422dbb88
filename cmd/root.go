package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yic95/expense-input-format/internal/cli"
	"github.com/yic95/expense-input-format/internal/config"
	"github.com/yic95/expense-input-format/internal/entry"
	"github.com/yic95/expense-input-format/internal/hierarchy"
	"github.com/yic95/expense-input-format/internal/sequence"
	"github.com/yic95/expense-input-format/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "eif",
	Short: "An expense entry recording CLI",
	Long: `eif records expense entries written in a compact one-line format.

An entry starts with the expense amount; '@' introduces the date, ':'
introduces a tag, and '/' starts the free-text title (everything after
the first '/' is title, delimiters included).

Usage:
  eif 12.50@2024-05-01:food/lunch at the corner cafe    Record one entry
  eif 12.50 coffee with friends                         Trailing words become the title
  eif 12.50:food 20.00:drink@2024-05-02                 Record several entries at once
  eif                                                   List recorded entries
  eif query '@2024-05:food,drink'                       Search recorded entries
  eif renumber --start 10                               Reassign sequence numbers
  eif export tsv                                        Dump the storage file

Tags are expanded against the tag hierarchy declared in the config file,
and every stored entry gets a unique sequence number.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			listEntries()
			return
		}
		addEntries(args)
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"eif version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the configuration, reporting failures to the user.
// The second return value is false when loading failed and the command
// should stop.
func loadConfig() (config.Config, bool) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return config.Config{}, false
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Fix or remove the config file: %s\n", configPath)
		deps.Exit(1)
		return config.Config{}, false
	}

	return cfg, true
}

// storagePath resolves the storage file path, reporting failures.
func storagePath() (string, bool) {
	path, err := deps.StoragePath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine storage location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return "", false
	}
	return path, true
}

// addEntries parses the arguments as one or more entries, applies the
// configured defaults and tag hierarchy, assigns sequence numbers unique
// against the stored entries, and appends the result to storage.
func addEntries(args []string) {
	cfg, ok := loadConfig()
	if !ok {
		return
	}

	parsed := entry.ParseArguments(args, cfg.ParserOptions())
	entry.ApplyDefaults(parsed, cfg.Defaults)
	hierarchy.Expand(parsed, cfg.Hierarchy)

	path, ok := storagePath()
	if !ok {
		return
	}

	existing, err := storage.ReadEntries(path, cfg.SkipHeader)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read entries from storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that file is readable: %s\n", path)
		deps.Exit(1)
		return
	}

	// Number the new entries against the whole stored list so seq values
	// stay unique across the file.
	combined := append(existing, parsed...)
	if err := sequence.Assign(combined, 1, false); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to assign sequence numbers")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'eif validate' to locate bad sequence numbers, then 'eif renumber --overwrite'")
		deps.Exit(1)
		return
	}
	added := combined[len(existing):]

	if err := storage.AppendEntries(path, added, cfg.SkipHeader); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save entries to storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that directory exists and is writable: %s\n", path)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Recorded %d %s:\n", len(added), cli.Pluralize("entry", len(added)))
	for _, e := range added {
		_, _ = fmt.Fprintf(deps.Stdout, "%s\n", cli.FormatEntry(e))
	}
}

// listEntries reads and displays all stored entries.
func listEntries() {
	cfg, ok := loadConfig()
	if !ok {
		return
	}

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

	if len(result.Entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries recorded")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, cli.Rule(50))
	for _, e := range result.Entries {
		_, _ = fmt.Fprintf(deps.Stdout, "%s\n", cli.FormatEntry(e))
	}
	_, _ = fmt.Fprintln(deps.Stdout, cli.Rule(50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %d %s\n", len(result.Entries), cli.Pluralize("entry", len(result.Entries)))
}

// printRowWarnings reports suspect storage rows to stderr.
func printRowWarnings(warnings []storage.RowWarning) {
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d suspect %s in storage file:\n", len(warnings), cli.Pluralize("row", len(warnings)))
	for _, w := range warnings {
		_, _ = fmt.Fprintln(deps.Stderr, cli.FormatRowWarning(w))
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}
