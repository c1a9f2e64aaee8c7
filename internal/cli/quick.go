package cli

import (
	"fmt"

	"github.com/julianstephens/moodlog/internal/models"
)

// QuickCmd is the watch surface: it logs through the projected key only and
// never loads the full entry list.
type QuickCmd struct {
	Mood string `arg:"" help:"Mood to log (joyful|neutral|low|irritated|drowsy)."`
}

func (c *QuickCmd) Run(ctx *Context) error {
	mood, err := models.ParseMood(c.Mood)
	if err != nil {
		return err
	}

	entry, err := ctx.Watch.QuickLog(mood)
	if err != nil {
		return err
	}

	profile := entry.Mood.Profile()
	fmt.Printf("Quick-logged %s %s\n", profile.Emoji, profile.Label)

	today := ctx.Watch.Today()
	fmt.Printf("%d logged today\n", len(today))
	return nil
}
