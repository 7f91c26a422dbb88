// Package config loads the application configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/yic95/expense-input-format/internal/entry"
	"github.com/yic95/expense-input-format/internal/hierarchy"
)

const (
	// AppName is the application name used for the config directory
	AppName = "eif"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Configuration errors surfaced by Load.
var (
	ErrBadTagDelimiter  = errors.New("tag_delimiter must be a single character other than '/' and '@'")
	ErrCyclicHierarchy  = errors.New("tag hierarchy contains a cycle")
	ErrUnreadableConfig = errors.New("config file could not be read")
)

// Config represents the application configuration.
type Config struct {
	// TagDelimiter is the character starting a tags segment (":" or ",")
	TagDelimiter string `toml:"tag_delimiter"`
	// SortTags sorts parsed tags lexicographically (legacy behavior)
	SortTags bool `toml:"sort_tags"`
	// SkipHeader marks the storage file as carrying a column-name header
	// row: reads skip it and rewrites preserve it
	SkipHeader bool `toml:"skip_header"`
	// Defaults are merged into entries lacking the corresponding field
	Defaults entry.Defaults `toml:"defaults"`
	// Hierarchy maps each child tag to its parent tag
	Hierarchy map[string]string `toml:"hierarchy"`
}

// DefaultConfig returns a Config with the canonical parser settings:
// ':' for tags, unsorted tag output, no defaults, empty hierarchy.
func DefaultConfig() Config {
	return Config{
		TagDelimiter: string(entry.DefaultTagDelimiter),
		Hierarchy:    map[string]string{},
	}
}

// ParserOptions converts the configuration into tokenizer options.
func (c Config) ParserOptions() entry.Options {
	opts := entry.DefaultOptions()
	if c.TagDelimiter != "" {
		r, _ := utf8.DecodeRuneInString(c.TagDelimiter)
		opts.TagDelimiter = r
	}
	opts.SortTags = c.SortTags
	return opts
}

// Validate checks the configuration for invalid delimiter choices and
// hierarchy cycles.
func (c Config) Validate() error {
	if c.TagDelimiter != "" {
		if utf8.RuneCountInString(c.TagDelimiter) != 1 ||
			strings.ContainsAny(c.TagDelimiter, "/@") {
			return fmt.Errorf("%w: got %q", ErrBadTagDelimiter, c.TagDelimiter)
		}
	}
	if !hierarchy.Validate(c.Hierarchy) {
		return ErrCyclicHierarchy
	}
	return nil
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config file at path, returning DefaultConfig
// when the file does not exist. A file that exists but cannot be read,
// parsed, or validated is an error.
func LoadOrDefault(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("%w: %v", ErrUnreadableConfig, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the configuration to path in TOML form.
func Save(path string, cfg Config) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	return toml.NewEncoder(file).Encode(cfg)
}
