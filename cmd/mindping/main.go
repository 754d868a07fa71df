package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mindpingapp/mindping/internal/catalog"
	"github.com/mindpingapp/mindping/internal/cli"
	"github.com/mindpingapp/mindping/internal/cli/diary"
	"github.com/mindpingapp/mindping/internal/cli/messages"
	"github.com/mindpingapp/mindping/internal/cli/schedule"
	"github.com/mindpingapp/mindping/internal/cli/settings"
	"github.com/mindpingapp/mindping/internal/cli/system"
	"github.com/mindpingapp/mindping/internal/constants"
	"github.com/mindpingapp/mindping/internal/device"
	"github.com/mindpingapp/mindping/internal/engine"
	apperrors "github.com/mindpingapp/mindping/internal/errors"
	"github.com/mindpingapp/mindping/internal/logger"
	"github.com/mindpingapp/mindping/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"string" default:"~/.config/mindping/mindping.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd    `cmd:"" help:"Initialize mindping and run onboarding."`
	Migrate  system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Today    messages.TodayCmd `cmd:"" help:"Show today's message." default:"1"`
	Sync     schedule.SyncCmd  `cmd:"" help:"Reconcile today's message and the forward schedule."`
	Schedule struct {
		List schedule.ListCmd `cmd:"" help:"List pending deliveries." default:"1"`
	} `cmd:"" help:"Inspect the delivery schedule."`
	Archive struct {
		List messages.ArchiveListCmd `cmd:"" help:"List received messages." default:"1"`
		Fav  messages.ArchiveFavCmd  `cmd:"" help:"Toggle favorite on a message."`
		Read messages.ArchiveReadCmd `cmd:"" help:"Mark a message as read."`
	} `cmd:"" help:"Browse the message archive."`
	Diary struct {
		Add  diary.AddCmd  `cmd:"" help:"Add a diary entry."`
		List diary.ListCmd `cmd:"" help:"List recent diary entries." default:"1"`
	} `cmd:"" help:"Keep a short daily journal."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Dispatch system.DispatchCmd   `cmd:"" hidden:"" help:"Fire due notifications (run from cron)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("One small comfort message a day, at a time you won't expect"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	dbPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(dbPath)}); err != nil {
		apperrors.Fatal(err)
	}

	cat, err := catalog.Load()
	if err != nil {
		apperrors.Fatal(err)
	}

	store := storage.NewSQLiteStore(dbPath)
	appCtx := &cli.Context{
		Store:   store,
		Engine:  engine.New(store, device.NewLocal(store), cat),
		Catalog: cat,
	}

	// Init and migrate open the database themselves
	if selected := ctx.Selected(); selected != nil && selected.Name != "init" && selected.Name != "migrate" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
