// Package export formats the entry list for leaving the app.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

// CSV writes one row per entry. Attachments are represented by size, not
// content; the export is meant for spreadsheets, not backup.
func CSV(w io.Writer, entries []models.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "timestamp", "mood", "note", "photo_bytes", "audio_seconds"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.ID,
			e.Timestamp.Format(time.RFC3339),
			string(e.Mood),
			e.Note,
			strconv.Itoa(len(e.Photo)),
			strconv.FormatFloat(e.AudioSeconds, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Text writes a human-readable log, newest-first as given.
func Text(w io.Writer, entries []models.Entry) error {
	for _, e := range entries {
		profile := e.Mood.Profile()
		if _, err := fmt.Fprintf(w, "%s  %s %s", e.Timestamp.Local().Format("2006-01-02 15:04"), profile.Emoji, profile.Label); err != nil {
			return err
		}
		if e.Note != "" {
			if _, err := fmt.Fprintf(w, "  - %s", e.Note); err != nil {
				return err
			}
		}
		if e.HasAttachments() {
			if _, err := fmt.Fprint(w, "  [attachments]"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
