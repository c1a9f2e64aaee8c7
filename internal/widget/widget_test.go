package widget

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

func TestFileRefresher(t *testing.T) {
	r := NewFileRefresher(t.TempDir())

	if !r.SignalTime().IsZero() {
		t.Fatal("signal time should be zero before any refresh")
	}

	if err := r.RequestRefresh(); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	first := r.SignalTime()
	if first.IsZero() {
		t.Fatal("signal time still zero after refresh")
	}

	// A later refresh moves the signal forward.
	time.Sleep(10 * time.Millisecond)
	if err := r.RequestRefresh(); err != nil {
		t.Fatal(err)
	}
	if !r.SignalTime().After(first) {
		t.Error("second refresh did not advance the signal time")
	}
}

func TestFileRefresher_MissingDir(t *testing.T) {
	r := NewFileRefresher(filepath.Join(t.TempDir(), "does", "not", "exist"))
	if err := r.RequestRefresh(); err == nil {
		t.Error("expected an error when the namespace dir is gone")
	}
}

func TestGlance_EmptyState(t *testing.T) {
	out := Glance(nil, time.Now())
	if !strings.Contains(out, "No mood logged yet") {
		t.Errorf("empty glance missing prompt:\n%s", out)
	}
}

func TestGlance_ShowsLatestAndTodayCount(t *testing.T) {
	now := time.Date(2026, 5, 20, 15, 30, 0, 0, time.Local)
	entries := []models.SharedEntry{
		{ID: "1", Timestamp: now, Mood: models.MoodJoyful, Note: "great walk"},
		{ID: "2", Timestamp: now.Add(-2 * time.Hour), Mood: models.MoodNeutral},
		{ID: "3", Timestamp: now.AddDate(0, 0, -1), Mood: models.MoodLow},
	}

	out := Glance(entries, now)
	profile := models.MoodJoyful.Profile()
	if !strings.Contains(out, profile.Label) {
		t.Errorf("glance missing latest mood label %q:\n%s", profile.Label, out)
	}
	if !strings.Contains(out, "great walk") {
		t.Errorf("glance missing the note:\n%s", out)
	}
	if !strings.Contains(out, "2 logged today") {
		t.Errorf("glance should count 2 entries today:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 40); got != "short" {
		t.Errorf("truncate changed a short string: %q", got)
	}
	long := strings.Repeat("a", 50)
	got := truncate(long, 40)
	if len([]rune(got)) != 40 || !strings.HasSuffix(got, "…") {
		t.Errorf("truncate(50 runes, 40) = %q", got)
	}
}
