package cli

import (
	"fmt"

	"github.com/julianstephens/moodlog/internal/store"
)

// MigrateCmd reports on (and if needed performs) the one-time legacy
// import. Migration is gated on the shared key being empty, so running this
// on an already-migrated install is a no-op.
type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	result := ctx.Store.Load()
	switch result.State {
	case store.LoadMigrated:
		fmt.Printf("Migrated %d entries from %s\n", len(result.Entries), ctx.LegacyPath)
	case store.LoadOK:
		fmt.Printf("Shared storage already has %d entries; legacy data is ignored.\n", len(result.Entries))
	case store.LoadFirstRun:
		fmt.Println("No data to migrate.")
	case store.LoadRecovered:
		fmt.Println("Shared storage was corrupt and has been reset; no legacy data was found.")
	case store.LoadUnavailable:
		fmt.Println("Shared storage is unavailable; cannot migrate.")
	}
	return nil
}
