package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/moodlog/internal/backup"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/store"
	"github.com/julianstephens/moodlog/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: namespace reachable
	if !ctx.Store.Available() {
		fmt.Printf("❌ Shared namespace reachable: FAIL\n")
		fmt.Printf("   Path: %s\n", ctx.NamespacePath)
		hasError = true
	} else {
		fmt.Printf("✓ Shared namespace reachable: OK\n")
	}

	// Check 2: stored entries decode
	result := ctx.Store.Load()
	switch result.State {
	case store.LoadRecovered:
		fmt.Printf("⚠ Stored entries: RECOVERED\n")
		fmt.Printf("   Corrupt data was cleared (%s)\n", result.Reason)
	case store.LoadUnavailable:
		fmt.Printf("⊘ Stored entries: SKIPPED (namespace not reachable)\n")
	default:
		fmt.Printf("✓ Stored entries: OK (%d entries)\n", len(result.Entries))
	}

	// Check 3: entry validity and ordering
	if vr := validation.ValidateEntries(result.Entries); vr.HasConflicts() {
		fmt.Printf("❌ Entry validation: FAIL\n")
		fmt.Printf("   %s", vr.FormatReport())
		hasError = true
	} else {
		fmt.Printf("✓ Entry validation: OK\n")
	}

	// Check 4: projection consistency (warning only: the dual-key write
	// allows a bounded window of drift)
	if ctx.Store.Available() {
		shared := ctx.Watch.Load()
		if vr := validation.ValidateProjection(result.Entries, shared); vr.HasConflicts() {
			fmt.Printf("⚠ Projection consistency: WARNING\n")
			fmt.Printf("   %s", vr.FormatReport())
		} else {
			fmt.Printf("✓ Projection consistency: OK\n")
		}
	}

	// Check 5: legacy migration state
	if _, err := os.Stat(ctx.LegacyPath); err == nil {
		if result.State == store.LoadOK || result.State == store.LoadMigrated {
			fmt.Printf("✓ Legacy store: present but superseded\n")
		} else {
			fmt.Printf("⚠ Legacy store: present and not yet migrated\n")
		}
	} else {
		fmt.Printf("✓ Legacy store: none\n")
	}

	// Check 6: backups present (warning only)
	mgr := backup.NewManager(ctx.NamespacePath)
	if backups, err := mgr.ListBackups(); err != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   No backups found; run 'moodlog backup create'\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d, newest %s)\n", len(backups), backups[0].Timestamp.Format("2006-01-02"))
	}

	// Check 7: clock sanity
	if err := checkClock(result.Entries); err != nil {
		fmt.Printf("❌ Clock sanity: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock sanity: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

// checkClock flags entries from the future, which normal logging can never
// produce and which would break the streak walk.
func checkClock(entries []models.Entry) error {
	cutoff := time.Now().Add(5 * time.Minute)
	for _, e := range entries {
		if e.Timestamp.After(cutoff) {
			return fmt.Errorf("entry %s has a future timestamp %s", e.ID, e.Timestamp.Format(time.RFC3339))
		}
	}
	return nil
}
