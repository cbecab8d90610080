package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/manasgurde21/DailyGrow/internal/cli"
	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/errors"
	"github.com/manasgurde21/DailyGrow/internal/logger"
	"github.com/manasgurde21/DailyGrow/internal/storage"
	"github.com/manasgurde21/DailyGrow/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.db for SQLite, .json for a plain JSON store)." type:"path" default:"~/.config/dailygrow/dailygrow.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize dailygrow storage."`
	Migrate cli.MigrateCmd `cmd:"" help:"Run database migrations."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits and daily completion."`
	Task    cli.TaskCmd    `cmd:"" help:"Manage tasks."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show progress stats and a daily insight."`
	Profile cli.ProfileCmd `cmd:"" help:"Show or edit the user profile."`
	Backup  cli.BackupCmd  `cmd:"" help:"Manage database backups."`
	Keys    cli.ConfigCmd  `cmd:"" name:"config" help:"Manage the generative-text API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit and task tracker with daily motivation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = sqlite.NewStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	store.Close()
	if err != nil {
		errors.Fatal(err)
	}
}
