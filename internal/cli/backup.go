package cli

import (
	"fmt"

	"github.com/julianstephens/moodlog/internal/backup"
)

type BackupCmd struct {
	Create  *BackupCreateCmd  `cmd:"" help:"Create a new backup."`
	List    *BackupListCmd    `cmd:"" help:"List available backups."`
	Restore *BackupRestoreCmd `cmd:"" help:"Restore entries from a backup file."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	ctx.loadEntries()

	mgr := backup.NewManager(ctx.NamespacePath)
	path, err := mgr.CreateBackup(ctx.Store)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.NamespacePath)
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Printf("Backups in %s:\n\n", mgr.GetBackupDir())
	for _, b := range backups {
		entries := "?"
		if b.Entries >= 0 {
			entries = fmt.Sprintf("%d", b.Entries)
		}
		fmt.Printf("  %s  %6d bytes  %s entries\n", b.Timestamp.Format("2006-01-02 15:04"), b.Size, entries)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore from." type:"existingfile"`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	ctx.loadEntries()

	mgr := backup.NewManager(ctx.NamespacePath)
	if err := mgr.RestoreBackup(ctx.Store, c.Path); err != nil {
		return err
	}
	fmt.Printf("Restored %d entries.\n", len(ctx.Store.Entries()))
	return nil
}
