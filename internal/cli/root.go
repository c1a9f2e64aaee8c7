package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/store"
	"github.com/julianstephens/moodlog/internal/watch"
	"github.com/julianstephens/moodlog/internal/widget"
)

// Context carries the per-process dependencies into every command. One
// store instance per process, constructed at startup; nothing reaches for
// globals.
type Context struct {
	Store         *store.SharedStore
	Watch         *watch.Store
	Refresher     *widget.FileRefresher
	NamespacePath string
	LegacyPath    string
	Logger        *log.Logger
}

// loadEntries loads the store and prints the degraded-mode warning once.
// Load itself never fails; a recovered or unavailable state is passive.
func (ctx *Context) loadEntries() []models.Entry {
	result := ctx.Store.Load()
	switch result.State {
	case store.LoadUnavailable:
		fmt.Println("Warning: shared storage is unavailable; nothing will be saved this session.")
	case store.LoadRecovered:
		fmt.Println("Warning: stored entries could not be read and were reset.")
	case store.LoadMigrated:
		fmt.Printf("Migrated %d entries from the previous storage location.\n", len(result.Entries))
	}
	return result.Entries
}

func parseDateArg(s string) (time.Time, error) {
	if s == "today" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return date, nil
}

func printEntry(e models.Entry) {
	profile := e.Mood.Profile()
	line := fmt.Sprintf("%s  %s %-9s", e.Timestamp.Local().Format("15:04"), profile.Emoji, profile.Label)
	if e.Note != "" {
		line += "  " + e.Note
	}
	if e.HasAttachments() {
		line += "  [attachments]"
	}
	fmt.Println(line)
}
