package watch

import (
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/kvstore"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/store"
)

func newTestWatch(t *testing.T) (*Store, kvstore.KV) {
	t.Helper()
	kv, err := kvstore.OpenDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return New(kv, log.New(io.Discard)), kv
}

func TestLoad_MissingKeyIsEmpty(t *testing.T) {
	w, _ := newTestWatch(t)
	if got := w.Load(); len(got) != 0 {
		t.Errorf("expected no entries from an empty namespace, got %d", len(got))
	}
}

func TestLoad_UndecodableDataIsEmptyAndLeftInPlace(t *testing.T) {
	w, kv := newTestWatch(t)
	if err := kv.Set(constants.KeySharedEntries, []byte("garbage")); err != nil {
		t.Fatal(err)
	}

	if got := w.Load(); got != nil {
		t.Errorf("undecodable shared data should read as empty, got %d entries", len(got))
	}

	// Unlike the full store, the watch surface never clears the key.
	// Recovery is the phone's job.
	data, ok, _ := kv.Get(constants.KeySharedEntries)
	if !ok || string(data) != "garbage" {
		t.Errorf("watch load modified the shared key: %q ok=%v", data, ok)
	}
}

func TestQuickLog(t *testing.T) {
	w, kv := newTestWatch(t)

	entry, err := w.QuickLog(models.MoodJoyful)
	if err != nil {
		t.Fatalf("quick log failed: %v", err)
	}
	if entry.Mood != models.MoodJoyful || entry.Note != constants.WatchNote {
		t.Errorf("quick log entry = %+v, want joyful with the watch note", entry)
	}

	// Second log lands at the head of the shared list.
	second, err := w.QuickLog(models.MoodLow)
	if err != nil {
		t.Fatal(err)
	}
	entries := w.Load()
	if len(entries) != 2 {
		t.Fatalf("expected 2 shared entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != entry.ID {
		t.Errorf("quick log did not prepend")
	}

	// Only the shared key is written, never the full one.
	if _, ok, _ := kv.Get(constants.KeyFullEntries); ok {
		t.Error("quick log must not touch the full-entries key")
	}
}

func TestQuickLog_SeesPhoneWrites(t *testing.T) {
	w, kv := newTestWatch(t)

	// The phone surface writes through the full store.
	phone := store.New(kv, store.Options{Logger: log.New(io.Discard)})
	phone.Add(models.MoodNeutral, "from phone")

	if _, err := w.QuickLog(models.MoodDrowsy); err != nil {
		t.Fatal(err)
	}

	entries := w.Load()
	if len(entries) != 2 {
		t.Fatalf("watch write dropped the phone's entry: %d entries", len(entries))
	}
	if entries[0].Mood != models.MoodDrowsy || entries[1].Mood != models.MoodNeutral {
		t.Errorf("unexpected shared list: %v, %v", entries[0].Mood, entries[1].Mood)
	}
}

func TestQuickLog_Unavailable(t *testing.T) {
	w := New(nil, log.New(io.Discard))

	if got := w.Load(); got != nil {
		t.Errorf("nil namespace should load as empty")
	}
	if _, err := w.QuickLog(models.MoodJoyful); err == nil {
		t.Error("quick log without a namespace should fail")
	}
}

func TestToday(t *testing.T) {
	w, kv := newTestWatch(t)

	now := time.Now()
	entries := []models.SharedEntry{
		{ID: "t", Timestamp: now, Mood: models.MoodJoyful},
		{ID: "y", Timestamp: now.AddDate(0, 0, -1), Mood: models.MoodLow},
	}
	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(constants.KeySharedEntries, data); err != nil {
		t.Fatal(err)
	}

	today := w.Today()
	if len(today) != 1 || today[0].ID != "t" {
		t.Errorf("Today = %v, want just the current-day entry", today)
	}
}
