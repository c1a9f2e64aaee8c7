package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/moodlog/internal/widget"
)

// WidgetCmd renders the home-screen glance. It lives entirely on the
// projected key; full entries and their attachments are never decoded here.
type WidgetCmd struct {
	Watch    bool          `short:"w" help:"Keep running and re-render when the refresh signal fires."`
	Interval time.Duration `help:"Poll interval in watch mode." default:"2s"`
}

func (c *WidgetCmd) Run(ctx *Context) error {
	render := func() {
		fmt.Print("\033[H\033[2J")
		fmt.Println(widget.Glance(ctx.Watch.Load(), time.Now()))
	}

	if !c.Watch {
		fmt.Println(widget.Glance(ctx.Watch.Load(), time.Now()))
		return nil
	}

	render()
	last := ctx.Refresher.SignalTime()
	for {
		time.Sleep(c.Interval)
		if t := ctx.Refresher.SignalTime(); t.After(last) {
			last = t
			render()
		}
	}
}
