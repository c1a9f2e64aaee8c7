package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/moodlog/internal/mockdata"
)

type DebugCmd struct {
	Paths *DebugPathsCmd `cmd:"" help:"Show storage paths."`
	Dump  *DebugDumpCmd  `cmd:"" help:"Dump entries as JSON."`
	Seed  *DebugSeedCmd  `cmd:"" help:"Seed backdated demo entries."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *Context) error {
	output := map[string]string{
		"namespace": ctx.NamespacePath,
		"legacy":    ctx.LegacyPath,
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpCmd struct {
	Shared bool `help:"Dump the projected list instead of the full one."`
}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	var v any
	if cmd.Shared {
		v = ctx.Watch.Load()
	} else {
		v = ctx.loadEntries()
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

// DebugSeedCmd is the mock-data tool: the one path allowed to create
// backdated entries.
type DebugSeedCmd struct {
	Count int `short:"c" help:"Number of entries to generate." default:"30"`
	Days  int `short:"d" help:"Spread entries over this many past days." default:"14"`
}

func (cmd *DebugSeedCmd) Run(ctx *Context) error {
	entries := ctx.loadEntries()
	entries = append(entries, mockdata.Entries(cmd.Count, cmd.Days)...)

	if err := ctx.Store.Save(entries); err != nil {
		return fmt.Errorf("failed to save seeded entries: %w", err)
	}
	fmt.Printf("Seeded %d entries over the past %d days.\n", cmd.Count, cmd.Days)
	return nil
}
