package cli

import (
	"fmt"

	"github.com/julianstephens/moodlog/internal/insights"
)

type ListCmd struct {
	Limit int `short:"l" help:"Maximum number of entries to show." default:"20"`
}

func (c *ListCmd) Run(ctx *Context) error {
	entries := ctx.loadEntries()
	if len(entries) == 0 {
		fmt.Println("No entries yet.")
		return nil
	}

	shown := entries
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}

	var lastDay string
	for _, e := range shown {
		day := e.Timestamp.Local().Format("Mon, Jan 2 2006")
		if day != lastDay {
			fmt.Printf("\n%s\n", day)
			lastDay = day
		}
		fmt.Print("  ")
		printEntry(e)
	}

	if len(shown) < len(entries) {
		fmt.Printf("\n(%d more, use --limit to see them)\n", len(entries)-len(shown))
	}
	return nil
}

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := parseDateArg(c.Date)
	if err != nil {
		return err
	}

	entries := insights.On(ctx.loadEntries(), date)

	fmt.Printf("Entries for %s:\n\n", date.Format("2006-01-02"))
	if len(entries) == 0 {
		fmt.Println("  No moods logged")
		return nil
	}
	for _, e := range entries {
		fmt.Print("  ")
		printEntry(e)
	}
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the entry to delete."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	before := len(ctx.loadEntries())
	ctx.Store.Delete(c.ID)

	// Deletes are idempotent: an unknown id is simply a no-op.
	if len(ctx.Store.Entries()) == before {
		fmt.Println("No entry with that ID.")
		return nil
	}
	fmt.Println("Entry deleted.")
	return nil
}
