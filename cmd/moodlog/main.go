package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/julianstephens/moodlog/internal/cli"
	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/icon"
	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/store"
	"github.com/julianstephens/moodlog/internal/watch"
	"github.com/julianstephens/moodlog/internal/widget"
)

var CLI struct {
	Version   kong.VersionFlag
	Namespace string `help:"Shared namespace path (.db for SQLite, .badger for Badger, directory otherwise)." type:"path"`
	Legacy    string `help:"Legacy entry file for one-time migration." type:"path"`
	Verbose   bool   `short:"v" help:"Enable debug logging."`

	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive mood journal." default:"1"`
	Log          cli.LogCmd          `cmd:"" help:"Log a mood with an optional note and attachments."`
	Quick        cli.QuickCmd        `cmd:"" help:"Quick-log a mood (watch surface, projected entries only)."`
	List         cli.ListCmd         `cmd:"" help:"List recent entries."`
	Day          cli.DayCmd          `cmd:"" help:"Show entries for a day."`
	Insights     cli.InsightsCmd     `cmd:"" help:"Show streaks and mood distribution."`
	Delete       cli.DeleteCmd       `cmd:"" help:"Delete an entry by ID."`
	Export       cli.ExportCmd       `cmd:"" help:"Export entries as CSV or text."`
	Widget       cli.WidgetCmd       `cmd:"" help:"Render the home-screen glance."`
	Migrate      cli.MigrateCmd      `cmd:"" help:"Migrate entries from the legacy store."`
	Backup       cli.BackupCmd       `cmd:"" help:"Manage entry backups."`
	Doctor       cli.DoctorCmd       `cmd:"" help:"Run storage diagnostics."`
	Remind       cli.RemindCmd       `cmd:"" help:"Send a mood reminder via the tray notifier."`
	Secret       cli.SecretCmd       `cmd:"" help:"Manage the tray webhook secret in the OS keyring."`
	NotifyAction cli.NotifyActionCmd `cmd:"" name:"notify-action" help:"Handle a tapped reminder mood shortcut."`
	Debug        cli.DebugCmd        `cmd:"" help:"Debugging and seeding tools."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("moodlog"),
		kong.Description("Personal mood journal with widget and quick-log surfaces"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.1"},
	)

	appLogger, err := logger.New(logger.Config{
		Debug:  CLI.Verbose,
		LogDir: defaultLogDir(),
	})
	if err != nil {
		// A broken log dir should not keep the journal from opening.
		appLogger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "moodlog"})
		appLogger.Warn("log file unavailable, logging to stderr only", "error", err)
	}
	log.SetDefault(appLogger)

	namespacePath := CLI.Namespace
	if namespacePath == "" {
		namespacePath = defaultNamespacePath()
	}
	legacyPath := CLI.Legacy
	if legacyPath == "" {
		legacyPath = defaultLegacyPath()
	}

	refresher := widget.NewFileRefresher(signalDir(namespacePath))
	iconUpdater := icon.NewUpdater(signalDir(namespacePath))

	sharedStore := store.Open(namespacePath, store.Options{
		LegacyPath: legacyPath,
		Refresher:  refresher,
		Icon:       iconUpdater,
		Logger:     appLogger,
	})
	defer sharedStore.Close()

	appCtx := &cli.Context{
		Store: sharedStore,
		// The watch surface shares the process's namespace handle; in a
		// real deployment it is a separate process with its own Open.
		Watch:         watch.New(sharedStore.KV(), appLogger),
		Refresher:     refresher,
		NamespacePath: namespacePath,
		LegacyPath:    legacyPath,
		Logger:        appLogger,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultNamespacePath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "shared"
	}
	return filepath.Join(dir, ".local", "share", constants.AppIdentifier, "shared")
}

func defaultLegacyPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return constants.LegacyFileName
	}
	return filepath.Join(dir, constants.AppIdentifier, constants.LegacyFileName)
}

func defaultLogDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, constants.AppIdentifier, "logs")
}

// signalDir is where the refresh signal and icon state live: the namespace
// itself for the directory backend, its parent for the file-backed ones.
func signalDir(namespacePath string) string {
	if strings.HasSuffix(namespacePath, ".db") || strings.HasSuffix(namespacePath, ".badger") {
		return filepath.Dir(namespacePath)
	}
	return namespacePath
}
