// Package watch is the quick-log surface. It works exclusively with shared
// entries: it reads the projected key and appends to it directly, never
// touching the full-entry key or its attachments.
package watch

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/kvstore"
	"github.com/julianstephens/moodlog/internal/models"
)

// Store is the watch-side view of the shared namespace.
type Store struct {
	kv  kvstore.KV
	log *log.Logger
}

func New(kv kvstore.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{kv: kv, log: logger}
}

// Load reads all shared entries, newest-first. Missing or undecodable data
// yields an empty list; this surface never self-heals the key, it just
// renders nothing until the phone writes a good value.
func (s *Store) Load() []models.SharedEntry {
	if s.kv == nil {
		return nil
	}
	data, ok, err := s.kv.Get(constants.KeySharedEntries)
	if err != nil {
		s.log.Warn("failed to read shared entries", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var entries []models.SharedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn("shared entries undecodable", "error", err)
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}

// Today filters the shared list to the current calendar day.
func (s *Store) Today() []models.SharedEntry {
	now := time.Now()
	var out []models.SharedEntry
	for _, e := range s.Load() {
		if sameDay(e.Timestamp, now) {
			out = append(out, e)
		}
	}
	return out
}

// QuickLog appends a new shared entry at the head of the projected key via
// its own read-modify-write. Two surfaces racing on this key resolve as
// last-writer-wins; there is no merge.
func (s *Store) QuickLog(mood models.Mood) (models.SharedEntry, error) {
	if s.kv == nil {
		return models.SharedEntry{}, fmt.Errorf("shared namespace unavailable")
	}
	entries := s.Load()
	entry := models.NewSharedEntry(mood, constants.WatchNote)
	entries = append([]models.SharedEntry{entry}, entries...)

	data, err := json.Marshal(entries)
	if err != nil {
		return models.SharedEntry{}, fmt.Errorf("failed to serialize shared entries: %w", err)
	}
	if err := s.kv.Set(constants.KeySharedEntries, data); err != nil {
		return models.SharedEntry{}, fmt.Errorf("failed to save quick-log entry: %w", err)
	}
	return entry, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
