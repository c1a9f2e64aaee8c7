package cli

import (
	"fmt"

	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/notify"
)

// RemindCmd sends a "how are you feeling" reminder through the tray
// notifier.
type RemindCmd struct {
	Text string `short:"t" help:"Reminder text." default:"How are you feeling? Log your mood."`
}

func (c *RemindCmd) Run(ctx *Context) error {
	n := notify.New()
	if err := n.Notify(c.Text); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	fmt.Println("Reminder sent.")
	return nil
}

// NotifyActionCmd handles a tapped mood shortcut on a reminder. The tray
// process invokes it exactly once per tap.
type NotifyActionCmd struct {
	Mood string `arg:"" help:"Mood the user tapped."`
}

func (c *NotifyActionCmd) Run(ctx *Context) error {
	mood, err := models.ParseMood(c.Mood)
	if err != nil {
		return err
	}

	ctx.loadEntries()
	entry := notify.HandleAction(ctx.Store, mood)
	fmt.Printf("Logged %s via notification (%s)\n", mood.Profile().Label, entry.ID)
	return nil
}
