package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/moodlog/internal/export"
)

type ExportCmd struct {
	Format string `short:"f" help:"Export format (csv|text)." default:"csv" enum:"csv,text"`
	Output string `short:"o" help:"Output file (default stdout)." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	entries := ctx.loadEntries()

	out := os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch c.Format {
	case "csv":
		return export.CSV(out, entries)
	case "text":
		return export.Text(out, entries)
	default:
		return fmt.Errorf("unknown format: %s", c.Format)
	}
}
