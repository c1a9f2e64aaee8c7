package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxPhotoBytes is the largest photo attachment accepted (post-compression).
const MaxPhotoBytes = 2 << 20

// Entry is one logged mood event. Entries are never edited in place: they
// are created once and live until explicitly deleted.
type Entry struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Mood         Mood      `json:"mood"`
	Note         string    `json:"note"`
	Photo        []byte    `json:"photo,omitempty"`
	Audio        []byte    `json:"audio,omitempty"`
	AudioSeconds float64   `json:"audio_seconds,omitempty"`
}

// NewEntry creates an entry with a fresh ID and the current timestamp.
// Backdated timestamps only exist via the mockdata seeding tool.
func NewEntry(mood Mood, note string) Entry {
	return Entry{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Mood:      mood,
		Note:      note,
	}
}

// HasAttachments reports whether the entry carries a photo or audio blob.
func (e Entry) HasAttachments() bool {
	return len(e.Photo) > 0 || len(e.Audio) > 0
}

// Day returns the entry's local calendar day at midnight.
func (e Entry) Day() time.Time {
	y, m, d := e.Timestamp.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Validate checks the entry against the storage constraints.
func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry has no id")
	}
	if !e.Mood.Valid() {
		return fmt.Errorf("entry %s has unknown mood %q", e.ID, e.Mood)
	}
	if len(e.Photo) > MaxPhotoBytes {
		return fmt.Errorf("entry %s photo is %d bytes (max %d)", e.ID, len(e.Photo), MaxPhotoBytes)
	}
	if e.AudioSeconds < 0 {
		return fmt.Errorf("entry %s has negative audio duration", e.ID)
	}
	return nil
}

// SharedEntry is the attachment-free projection of an Entry shared with the
// widget and watch surfaces. Its fields are a strict subset of Entry's, so
// a consumer that has never heard of attachments can still decode it.
type SharedEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Mood      Mood      `json:"mood"`
	Note      string    `json:"note"`
}

// NewSharedEntry creates a shared entry directly, for surfaces (the watch
// quick-log) that never construct full entries.
func NewSharedEntry(mood Mood, note string) SharedEntry {
	return SharedEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Mood:      mood,
		Note:      note,
	}
}

// Day returns the shared entry's local calendar day at midnight.
func (e SharedEntry) Day() time.Time {
	y, m, d := e.Timestamp.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Project maps full entries to their shared form, preserving order and
// cardinality. Pure; the input is not modified.
func Project(entries []Entry) []SharedEntry {
	shared := make([]SharedEntry, len(entries))
	for i, e := range entries {
		shared[i] = SharedEntry{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Mood:      e.Mood,
			Note:      e.Note,
		}
	}
	return shared
}
