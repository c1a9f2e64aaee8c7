// Package store owns durable entry state. It is the only code allowed to
// write the shared namespace, and it always writes the full list and its
// projection together so no surface can observe one without the other
// eventually following.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/kvstore"
	"github.com/julianstephens/moodlog/internal/models"
)

// Refresher is signaled after every successful save so cached widget
// renderings get invalidated. Failures are logged and otherwise ignored.
type Refresher interface {
	RequestRefresh() error
}

// IconUpdater receives the post-mutation entry list after every add and
// delete to recompute the dominant-mood icon state.
type IconUpdater interface {
	Update(entries []models.Entry) error
}

// Options configures collaborators. Zero values are valid: no legacy path
// means no migration source, nil refresher/icon means no signal.
type Options struct {
	LegacyPath string
	Refresher  Refresher
	Icon       IconUpdater
	Logger     *log.Logger
}

// SharedStore keeps the in-memory entry list and mirrors it into the shared
// namespace on every mutation.
type SharedStore struct {
	kv        kvstore.KV
	legacy    string
	refresher Refresher
	icon      IconUpdater
	log       *log.Logger
	entries   []models.Entry
	available bool
}

// New wraps an already-open namespace. A nil kv produces a degraded store
// that works on an in-memory list only.
func New(kv kvstore.KV, opts Options) *SharedStore {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &SharedStore{
		kv:        kv,
		legacy:    opts.LegacyPath,
		refresher: opts.Refresher,
		icon:      opts.Icon,
		log:       logger,
		available: kv != nil,
	}
}

// Open opens the namespace at path and wraps it. When the namespace cannot
// be opened at all the store comes up degraded instead of failing: every
// operation works on the unsaved in-memory list for the rest of the session,
// and Available reports false so the UI can warn.
func Open(path string, opts Options) *SharedStore {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	kv, err := kvstore.Open(path)
	if err != nil {
		logger.Warn("shared namespace unavailable, running in-memory only", "path", path, "error", err)
		kv = nil
	}
	return New(kv, opts)
}

// Available reports whether the shared namespace could be opened this
// session. A false result means nothing will persist.
func (s *SharedStore) Available() bool {
	return s.available
}

// Entries returns the current in-memory list.
func (s *SharedStore) Entries() []models.Entry {
	return s.entries
}

// KV exposes the underlying namespace handle for sibling surfaces in the
// same process. Nil when the store is degraded.
func (s *SharedStore) KV() kvstore.KV {
	return s.kv
}

// Close releases the underlying namespace.
func (s *SharedStore) Close() error {
	if s.kv == nil {
		return nil
	}
	return s.kv.Close()
}

// LoadState classifies what Load found.
type LoadState int

const (
	// LoadOK means the shared key decoded cleanly.
	LoadOK LoadState = iota
	// LoadFirstRun means neither the shared key nor legacy data exist.
	LoadFirstRun
	// LoadMigrated means the list was adopted from the legacy store and
	// saved into the shared namespace.
	LoadMigrated
	// LoadRecovered means the shared key held undecodable bytes; the key
	// was cleared and the list reset to empty.
	LoadRecovered
	// LoadUnavailable means the namespace never opened this session.
	LoadUnavailable
)

// LoadResult carries the loaded list and how it was obtained, so callers
// and tests can tell the self-heal path from the happy path.
type LoadResult struct {
	Entries []models.Entry
	State   LoadState
	Reason  string // set when State == LoadRecovered
}

// Load reads the full entry list from the shared namespace. It never
// returns an error: missing data is a first run, corrupt data is cleared
// and logged, and an unavailable namespace falls back to the in-memory
// list.
func (s *SharedStore) Load() LoadResult {
	if !s.available {
		return LoadResult{Entries: s.entries, State: LoadUnavailable}
	}

	data, ok, err := s.kv.Get(constants.KeyFullEntries)
	if err != nil {
		s.log.Warn("failed to read shared entries, treating as empty", "error", err)
		s.entries = nil
		return LoadResult{State: LoadRecovered, Reason: err.Error()}
	}
	if !ok {
		return s.migrate()
	}

	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Self-heal: clear the corrupted value so it cannot poison
		// future reads, then fall back the same way as an absent key.
		s.log.Warn("corrupt shared entries, clearing key", "error", err, "bytes", len(data))
		if derr := s.kv.Delete(constants.KeyFullEntries); derr != nil {
			s.log.Warn("failed to clear corrupt key", "error", derr)
		}
		s.entries = nil
		if migrated := s.MigrateLegacy(); migrated != nil {
			return LoadResult{Entries: migrated, State: LoadMigrated}
		}
		return LoadResult{State: LoadRecovered, Reason: err.Error()}
	}

	sortNewestFirst(entries)
	s.entries = entries
	return LoadResult{Entries: entries, State: LoadOK}
}

// migrate runs the one-time legacy import. It only ever executes when the
// shared key is empty, which is what makes repeated invocation safe: once a
// migration (or any save) has populated the shared key, the legacy file is
// never consulted again.
func (s *SharedStore) migrate() LoadResult {
	entries := s.MigrateLegacy()
	if entries == nil {
		s.entries = nil
		return LoadResult{State: LoadFirstRun}
	}
	return LoadResult{Entries: entries, State: LoadMigrated}
}

// MigrateLegacy reads the legacy process-local entry file and, when it
// holds a decodable list, adopts it and saves it through to the shared
// namespace. Returns nil when there is nothing to migrate. The legacy file
// is left untouched in every case, including when it fails to decode.
func (s *SharedStore) MigrateLegacy() []models.Entry {
	if s.legacy == "" {
		return nil
	}

	data, err := os.ReadFile(s.legacy)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("failed to read legacy store", "path", s.legacy, "error", err)
		}
		return nil
	}

	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn("legacy store is undecodable, leaving it as is", "path", s.legacy, "error", err)
		return nil
	}

	s.log.Info("migrating legacy entries into shared namespace", "count", len(entries))
	s.entries = entries
	if err := s.Save(s.entries); err != nil {
		s.log.Warn("failed to persist migrated entries", "error", err)
	}
	return s.entries
}

// Save sorts the list newest-first, writes the full representation and its
// projection, and signals the widget refresher. Both key writes are
// required for a successful save; a failure is returned (and logged by
// mutating callers) but never retried here.
func (s *SharedStore) Save(entries []models.Entry) error {
	sortNewestFirst(entries)
	s.entries = entries

	if !s.available {
		return nil
	}

	full, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize entries: %w", err)
	}
	if err := s.kv.Set(constants.KeyFullEntries, full); err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}

	shared, err := json.Marshal(models.Project(entries))
	if err != nil {
		return fmt.Errorf("failed to serialize shared entries: %w", err)
	}
	if err := s.kv.Set(constants.KeySharedEntries, shared); err != nil {
		return fmt.Errorf("failed to save shared entries: %w", err)
	}

	if s.refresher != nil {
		if err := s.refresher.RequestRefresh(); err != nil {
			s.log.Debug("widget refresh signal failed", "error", err)
		}
	}
	return nil
}

// Attachment bundles the optional binary payloads for an entry.
type Attachment struct {
	Photo        []byte
	Audio        []byte
	AudioSeconds float64
}

// Add creates a new entry at the head of the list and persists. The entry
// stays in the in-memory list even when the save fails; durable state
// catches up on the next successful save. The created entry is returned so
// callers like the notification-action handler can reference it.
func (s *SharedStore) Add(mood models.Mood, note string) models.Entry {
	return s.AddWithAttachments(mood, note, Attachment{})
}

// AddWithAttachments is Add with optional photo/audio payloads.
func (s *SharedStore) AddWithAttachments(mood models.Mood, note string, att Attachment) models.Entry {
	entry := models.NewEntry(mood, note)
	entry.Photo = att.Photo
	entry.Audio = att.Audio
	entry.AudioSeconds = att.AudioSeconds

	// Newest entry goes to the head; the list is already sorted.
	s.entries = append([]models.Entry{entry}, s.entries...)
	if err := s.Save(s.entries); err != nil {
		s.log.Error("failed to persist new entry", "id", entry.ID, "error", err)
	}
	s.updateIcon()
	return entry
}

// Delete removes the entry with the given id. Deleting an absent id is a
// no-op, not an error: deletes are idempotent.
func (s *SharedStore) Delete(id string) {
	kept := s.entries[:0:0]
	removed := false
	for _, e := range s.entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return
	}

	s.entries = kept
	if err := s.Save(s.entries); err != nil {
		s.log.Error("failed to persist delete", "id", id, "error", err)
	}
	s.updateIcon()
}

func (s *SharedStore) updateIcon() {
	if s.icon == nil {
		return
	}
	if err := s.icon.Update(s.entries); err != nil {
		s.log.Debug("icon update failed", "error", err)
	}
}

// sortNewestFirst sorts by timestamp descending. The sort is stable so
// same-timestamp entries keep insertion order, most recent insert first.
func sortNewestFirst(entries []models.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}
