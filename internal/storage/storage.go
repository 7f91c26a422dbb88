// Package storage reads and writes the TSV entries file.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yic95/expense-input-format/internal/entry"
	"github.com/yic95/expense-input-format/internal/tsv"
)

const (
	// AppName is the application name used for the config directory
	AppName = "eif"
	// EntriesFile is the name of the TSV storage file
	EntriesFile = "entries.tsv"
)

// RowWarning describes a stored row that decoded, but not cleanly.
type RowWarning struct {
	LineNumber int    // Line number in the file (1-indexed)
	Content    string // Raw content of the suspect row
	Problem    string // Description of what is wrong with it
}

// ReadResult contains the entries read from storage plus warnings about
// rows that are structurally suspect. Decoding is lenient, so every row
// yields an entry; the warnings exist so callers can surface data-quality
// problems without refusing to load the file.
type ReadResult struct {
	Entries  []entry.Entry
	Warnings []RowWarning
}

// GetStoragePath returns the path to the entries storage file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetStoragePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, EntriesFile), nil
}

// ReadEntriesWithWarnings reads all entries from the TSV storage file and
// reports rows with missing columns or a non-numeric sequence number.
// With skipHeader set the first line is treated as a column-name header
// and not decoded. Returns an empty ReadResult if the file doesn't exist.
func ReadEntriesWithWarnings(path string, skipHeader bool) (ReadResult, error) {
	result := ReadResult{
		Entries:  []entry.Entry{},
		Warnings: []RowWarning{},
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		row := scanner.Text()

		if lineNumber == 1 && skipHeader {
			continue
		}

		if w, suspect := inspectRow(lineNumber, row); suspect {
			result.Warnings = append(result.Warnings, w)
		}
		result.Entries = append(result.Entries, tsv.DecodeRow(row))
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}

	return result, nil
}

// inspectRow checks one raw row for structural problems.
func inspectRow(lineNumber int, row string) (RowWarning, bool) {
	w := RowWarning{LineNumber: lineNumber, Content: row}

	columns := strings.Count(row, "\t") + 1
	if columns < 5 {
		w.Problem = fmt.Sprintf("%d of 5 columns", columns)
		return w, true
	}

	e := tsv.DecodeRow(row)
	if e.Seq != "" {
		if _, err := strconv.Atoi(e.Seq); err != nil {
			w.Problem = fmt.Sprintf("non-numeric seq %q", e.Seq)
			return w, true
		}
	}

	return RowWarning{}, false
}

// ReadEntries reads all entries from the TSV storage file, dropping any
// warnings. Returns an empty slice if the file doesn't exist.
func ReadEntries(path string, skipHeader bool) ([]entry.Entry, error) {
	result, err := ReadEntriesWithWarnings(path, skipHeader)
	return result.Entries, err
}

// AppendEntries appends entries to the TSV storage file.
// Creates the file if it doesn't exist; with withHeader set, a new or
// empty file gets the column-name header row first.
// Uses O_APPEND for atomic append operations.
func AppendEntries(path string, entries []entry.Entry, withHeader bool) error {
	needHeader := false
	if withHeader {
		info, err := os.Stat(path)
		if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
			needHeader = true
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if needHeader {
		if _, err := file.WriteString(tsv.Header + "\n"); err != nil {
			return err
		}
	}

	for _, row := range tsv.Encode(entries) {
		if _, err := file.WriteString(row + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntries replaces the TSV storage file with the given entries,
// writing the column-name header row first when withHeader is set.
// Uses atomic write pattern (write to temp file, then rename) for safety.
func WriteEntries(path string, entries []entry.Entry, withHeader bool) error {
	tmpFile := path + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if withHeader {
		if _, err := file.WriteString(tsv.Header + "\n"); err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
			return err
		}
	}

	for _, row := range tsv.Encode(entries) {
		if _, err := file.WriteString(row + "\n"); err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
			return err
		}
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, path)
}
