package validation

import (
	"fmt"

	"github.com/julianstephens/moodlog/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidEntry     ConflictType = "invalid_entry"
	ConflictDuplicateID      ConflictType = "duplicate_id"
	ConflictOutOfOrder       ConflictType = "out_of_order"
	ConflictProjectionDrift  ConflictType = "projection_drift"
	ConflictOrphanProjection ConflictType = "orphan_projection"
)

// Conflict represents one detected inconsistency in the stored lists.
type Conflict struct {
	Type        ConflictType
	Description string
	EntryIDs    []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// ValidateEntries checks every entry and the newest-first ordering.
func ValidateEntries(entries []models.Entry) *ValidationResult {
	result := &ValidationResult{}

	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidEntry,
				Description: err.Error(),
				EntryIDs:    []string{e.ID},
			})
		}
		if seen[e.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("entry id %s appears more than once", e.ID),
				EntryIDs:    []string{e.ID},
			})
		}
		seen[e.ID] = true

		if i > 0 && entries[i-1].Timestamp.Before(e.Timestamp) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOutOfOrder,
				Description: fmt.Sprintf("entry %s is newer than its predecessor, list is not newest-first", e.ID),
				EntryIDs:    []string{entries[i-1].ID, e.ID},
			})
		}
	}

	return result
}

// ValidateProjection checks that the stored shared list matches the
// projection of the full list. A stale pair is the bounded inconsistency
// the dual-key write allows, so the doctor reports it as a warning rather
// than a failure.
func ValidateProjection(full []models.Entry, shared []models.SharedEntry) *ValidationResult {
	result := &ValidationResult{}

	fullByID := make(map[string]models.Entry, len(full))
	for _, e := range full {
		fullByID[e.ID] = e
	}

	sharedIDs := make(map[string]bool, len(shared))
	for _, se := range shared {
		sharedIDs[se.ID] = true
		e, ok := fullByID[se.ID]
		if !ok {
			// Watch quick-logs land in the shared key first, so an
			// orphan is expected between watch write and phone sync.
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanProjection,
				Description: fmt.Sprintf("shared entry %s has no full counterpart", se.ID),
				EntryIDs:    []string{se.ID},
			})
			continue
		}
		if !e.Timestamp.Equal(se.Timestamp) || e.Mood != se.Mood || e.Note != se.Note {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictProjectionDrift,
				Description: fmt.Sprintf("shared entry %s does not match its full entry", se.ID),
				EntryIDs:    []string{se.ID},
			})
		}
	}

	for _, e := range full {
		if !sharedIDs[e.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictProjectionDrift,
				Description: fmt.Sprintf("full entry %s is missing from the shared list", e.ID),
				EntryIDs:    []string{e.ID},
			})
		}
	}

	return result
}
