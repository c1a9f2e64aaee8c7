package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/store"
)

type LogCmd struct {
	Mood         string  `arg:"" help:"Mood to log (joyful|neutral|low|irritated|drowsy)."`
	Note         string  `short:"n" help:"Optional note."`
	Photo        string  `short:"p" help:"Path to a photo attachment (JPEG, max 2 MB)." type:"existingfile"`
	Audio        string  `short:"a" help:"Path to an audio attachment." type:"existingfile"`
	AudioSeconds float64 `help:"Duration of the audio attachment in seconds."`
}

func (c *LogCmd) Run(ctx *Context) error {
	mood, err := models.ParseMood(c.Mood)
	if err != nil {
		return err
	}

	ctx.loadEntries()

	var att store.Attachment
	if c.Photo != "" {
		data, err := os.ReadFile(c.Photo)
		if err != nil {
			return fmt.Errorf("failed to read photo: %w", err)
		}
		if len(data) > models.MaxPhotoBytes {
			return fmt.Errorf("photo is %d bytes, max is %d", len(data), models.MaxPhotoBytes)
		}
		att.Photo = data
	}
	if c.Audio != "" {
		data, err := os.ReadFile(c.Audio)
		if err != nil {
			return fmt.Errorf("failed to read audio: %w", err)
		}
		att.Audio = data
		att.AudioSeconds = c.AudioSeconds
	}

	entry := ctx.Store.AddWithAttachments(mood, c.Note, att)
	profile := entry.Mood.Profile()
	fmt.Printf("Logged %s %s at %s\n", profile.Emoji, profile.Label, entry.Timestamp.Local().Format("15:04"))

	if !ctx.Store.Available() {
		fmt.Println("Note: the entry is only in memory; shared storage is unavailable.")
	}
	return nil
}
