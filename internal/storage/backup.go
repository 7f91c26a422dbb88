package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path of the backup file with rotation number n
// for the given storage file. Backups are named entries.tsv.bak.N, where
// lower N is more recent.
func BackupPath(storagePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n)
}

// rotateBackups shifts existing backup files to make room for a new one:
// .bak.1 becomes .bak.2 and so on, and the oldest backup is deleted.
// Missing files are skipped.
func rotateBackups(storagePath string) error {
	oldest := BackupPath(storagePath, MaxBackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		current := BackupPath(storagePath, i)
		next := BackupPath(storagePath, i+1)
		if err := os.Rename(current, next); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies the storage file to .bak.1 after rotating existing
// backups. If the storage file does not exist, no backup is created and
// no error is returned.
func CreateBackup(storagePath string) error {
	data, err := os.ReadFile(storagePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(storagePath); err != nil {
		return err
	}

	return os.WriteFile(BackupPath(storagePath, 1), data, 0644)
}
