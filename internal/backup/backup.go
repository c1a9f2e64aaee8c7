// Package backup snapshots the authoritative full-entry list to timestamped
// JSON files and restores it through the store, which re-derives the
// projected key so the pair never drifts apart.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

const (
	// MaxBackups is the maximum number of backups to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files
	BackupFilePrefix = "moodlog-"
	// BackupFileSuffix is the suffix for backup files
	BackupFileSuffix = ".json"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
	Entries   int
}

// EntrySource is what the manager snapshots and restores through.
type EntrySource interface {
	Entries() []models.Entry
	Save(entries []models.Entry) error
}

// Manager handles backup operations for one namespace.
type Manager struct {
	backupDir string
}

// NewManager creates a backup manager storing snapshots next to the
// namespace.
func NewManager(namespacePath string) *Manager {
	return &Manager{
		backupDir: filepath.Join(filepath.Dir(strings.TrimSuffix(namespacePath, "/")), BackupDirName),
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0700)
}

// CreateBackup snapshots the current entry list to a new timestamped file
// and rotates old snapshots.
func (m *Manager) CreateBackup(src EntrySource) (string, error) {
	return m.createBackup(src, false)
}

func (m *Manager) createBackup(src EntrySource, skipRotation bool) (string, error) {
	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	// Minute precision first; fall back to seconds, then a counter, when
	// a name collides.
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, BackupFilePrefix+timestamp+BackupFileSuffix)

	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupPath = filepath.Join(m.backupDir, BackupFilePrefix+timestamp+BackupFileSuffix)

		counter := 1
		for {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			name := fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, BackupFileSuffix)
			backupPath = filepath.Join(m.backupDir, name)
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	data, err := json.MarshalIndent(src.Entries(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize entries: %w", err)
	}
	if err := os.WriteFile(backupPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// ListBackups returns all available backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	dirEntries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, BackupFileSuffix)

		// Strip a trailing collision counter (YYYYMMDD-HHMMSS-N).
		parts := strings.Split(timestampStr, "-")
		if len(parts) > 2 {
			lastPart := parts[len(parts)-1]
			if len(lastPart) != 4 && len(lastPart) != 6 && isDigits(lastPart) {
				timestampStr = strings.Join(parts[:len(parts)-1], "-")
			}
		}

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		count := -1
		if entries, err := readBackup(path); err == nil {
			count = len(entries)
		}

		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
			Entries:   count,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= MaxBackups {
		return nil
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup replaces the current entry list with the snapshot's. The
// pre-restore list is itself backed up first so nothing is lost.
func (m *Manager) RestoreBackup(src EntrySource, backupPath string) error {
	entries, err := readBackup(backupPath)
	if err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if len(src.Entries()) > 0 {
		currentBackup, err := m.createBackup(src, true)
		if err != nil {
			return fmt.Errorf("failed to back up current entries before restore: %w", err)
		}
		fmt.Printf("Created backup of current entries: %s\n", filepath.Base(currentBackup))
	}

	if err := src.Save(entries); err != nil {
		return fmt.Errorf("failed to restore entries: %w", err)
	}
	return nil
}

func readBackup(path string) ([]models.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
