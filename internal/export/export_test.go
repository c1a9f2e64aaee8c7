package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

func sampleEntries() []models.Entry {
	ts := time.Date(2026, 2, 3, 9, 15, 0, 0, time.UTC)
	return []models.Entry{
		{
			ID:           "a",
			Timestamp:    ts,
			Mood:         models.MoodJoyful,
			Note:         "note with, comma",
			Photo:        []byte{1, 2, 3},
			AudioSeconds: 4.5,
		},
		{ID: "b", Timestamp: ts.Add(-time.Hour), Mood: models.MoodLow},
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, sampleEntries()); err != nil {
		t.Fatalf("csv export failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}

	header := records[0]
	if header[0] != "id" || header[4] != "photo_bytes" {
		t.Errorf("unexpected header: %v", header)
	}

	first := records[1]
	if first[0] != "a" || first[2] != "joyful" || first[3] != "note with, comma" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[4] != "3" {
		t.Errorf("photo column should carry the byte count, got %q", first[4])
	}
	if first[5] != "4.5" {
		t.Errorf("audio seconds = %q, want 4.5", first[5])
	}
}

func TestCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("empty export should be header only, got %d lines", len(lines))
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, sampleEntries()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, models.MoodJoyful.Profile().Label) {
		t.Errorf("text export missing the mood label:\n%s", out)
	}
	if !strings.Contains(out, "note with, comma") {
		t.Errorf("text export missing the note:\n%s", out)
	}
	if !strings.Contains(out, "[attachments]") {
		t.Errorf("text export missing the attachment marker:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("expected one line per entry, got %d", lines)
	}
}
