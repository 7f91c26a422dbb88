package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yic95/expense-input-format/internal/cli"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the config file location and the effective configuration values.

Settings (TOML):
  tag_delimiter    Character starting a tags segment (default ":")
  sort_tags        Sort parsed tags lexicographically (default false)
  skip_header      Storage file carries a column-name header row
  [defaults]       Field defaults merged into new entries
  [hierarchy]      child = "parent" tag relations

Example config file:
  tag_delimiter = ":"

  [defaults]
  title = "--untitled--"
  tags = ["unsorted"]

  [hierarchy]
  espresso = "coffee"
  coffee = "drink"`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// showConfig prints the config path and effective values
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	cfg, ok := loadConfig()
	if !ok {
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", configPath)
	_, _ = fmt.Fprintln(deps.Stdout, cli.Rule(50))
	_, _ = fmt.Fprintf(deps.Stdout, "tag_delimiter: %q\n", cfg.TagDelimiter)
	_, _ = fmt.Fprintf(deps.Stdout, "sort_tags:     %v\n", cfg.SortTags)
	_, _ = fmt.Fprintf(deps.Stdout, "skip_header:   %v\n", cfg.SkipHeader)

	_, _ = fmt.Fprintln(deps.Stdout, "defaults:")
	if cfg.Defaults.Expense != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "  expense: %s\n", cfg.Defaults.Expense)
	}
	if cfg.Defaults.Title != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "  title:   %s\n", cfg.Defaults.Title)
	}
	if cfg.Defaults.Date != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "  date:    %s\n", cfg.Defaults.Date)
	}
	if len(cfg.Defaults.Tags) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "  tags:    %s\n", strings.Join(cfg.Defaults.Tags, ", "))
	}

	_, _ = fmt.Fprintf(deps.Stdout, "hierarchy: %d %s\n", len(cfg.Hierarchy), cli.Pluralize("relation", len(cfg.Hierarchy)))
	children := make([]string, 0, len(cfg.Hierarchy))
	for child := range cfg.Hierarchy {
		children = append(children, child)
	}
	sort.Strings(children)
	for _, child := range children {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s -> %s\n", child, cfg.Hierarchy[child])
	}
}
