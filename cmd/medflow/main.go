package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/vincentqiao/medflow/internal/cli"
	"github.com/vincentqiao/medflow/internal/constants"
	"github.com/vincentqiao/medflow/internal/logger"
	"github.com/vincentqiao/medflow/internal/storage"
	"github.com/vincentqiao/medflow/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize medflow storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive widget." default:"1"`
	Checkin  cli.CheckInCmd  `cmd:"" help:"Record that a dose was taken now."`
	Status   cli.StatusCmd   `cmd:"" help:"Show the countdown to the next dose."`
	History  cli.HistoryCmd  `cmd:"" help:"Show recent check-ins."`
	Week     cli.WeekCmd     `cmd:"" help:"Show this week's adherence."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show current reminder settings." default:"1"`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Update the label and interval."`
		Type cli.SettingsTypeCmd `cmd:"" help:"Change the medication type."`
	} `cmd:"" help:"Manage reminder settings."`
	Key struct {
		Set    cli.KeySetCmd    `cmd:"" help:"Store the advice API key in the OS keyring."`
		Show   cli.KeyShowCmd   `cmd:"" help:"Show whether an advice API key is configured."`
		Delete cli.KeyDeleteCmd `cmd:"" help:"Remove the advice API key from the OS keyring."`
	} `cmd:"" help:"Manage the advice API key."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the data file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the data file from a backup."`
	} `cmd:"" help:"Manage data backups."`
}

func main() {
	// A .env file may carry GEMINI_API_KEY; ignore it when absent.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal medication reminder and dose tracker"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Pick the storage backend by file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
