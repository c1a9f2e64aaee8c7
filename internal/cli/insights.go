package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/moodlog/internal/insights"
	"github.com/julianstephens/moodlog/internal/models"
)

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *Context) error {
	entries := ctx.loadEntries()
	now := time.Now()

	fmt.Printf("Entries:        %d\n", len(entries))
	fmt.Printf("Current streak: %dd\n", insights.CurrentStreak(entries, now))
	fmt.Printf("Longest streak: %dd\n", insights.LongestStreak(entries))
	fmt.Printf("This week:      %d\n", insights.ThisWeekCount(entries, now))

	if mood, ok := insights.Dominant(entries); ok {
		profile := mood.Profile()
		fmt.Printf("Most common:    %s %s\n", profile.Emoji, profile.Label)
	}

	fmt.Println("\nMood distribution:")
	dist := insights.Distribution(entries)
	for _, m := range models.AllMoods {
		stat := dist[m]
		profile := m.Profile()
		bar := strings.Repeat("█", int(stat.Fraction*20+0.5))
		fmt.Printf("  %s %-9s %3d  %5.1f%%  %s\n", profile.Emoji, profile.Label, stat.Count, stat.Fraction*100, bar)
	}
	return nil
}
