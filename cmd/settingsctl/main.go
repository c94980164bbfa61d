// FILE: cmd/settingsctl/main.go

// Command settingsctl inspects and maintains an sm64coopdx config file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/configfile"
	"github.com/lixenwraith/configfile/memstore"
)

// version is recorded as last_version when the file has none
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "settingsctl:", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "settingsctl",
		Usage:   "inspect and maintain the sm64coopdx config file",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path, overrides the default file name",
			},
			&cli.StringFlag{
				Name:    "dir",
				Usage:   "directory holding the config and backup files",
				Sources: cli.EnvVars("COOPDX_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("COOPDX_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:  "dev",
				Usage: "development mode: ignore the backup file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "dump",
				Usage: "load the config and print every option",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   configfile.FormatText,
						Usage:   "output format: text, toml, json or yaml",
					},
				},
				Action: runDump,
			},
			{
				Name:   "check",
				Usage:  "load the config and report read failures",
				Action: runCheck,
			},
			{
				Name:   "reset",
				Usage:  "overwrite the config with the defaults",
				Action: runReset,
			},
			{
				Name:   "watch",
				Usage:  "reload and print the config whenever the file changes",
				Action: runWatch,
			},
		},
	}
}

// session is a Manager wired to in-memory subsystems.
type session struct {
	mgr  *configfile.Manager
	mods *memstore.Mods
}

func newSession(cmd *cli.Command) (*session, error) {
	logger := configfile.NewLogger(configfile.LogConfig{
		Level:  cmd.String("log-level"),
		Output: zerolog.ConsoleWriter{Out: os.Stderr},
	})

	mods := memstore.NewMods()
	b := configfile.NewBuilder().WithEnv()
	if dir := cmd.String("dir"); dir != "" {
		b.WithDir(dir)
	}
	if cmd.Bool("dev") {
		b.WithDevMode(true)
	}
	mgr, err := b.
		WithOverride(cmd.String("config")).
		WithVersion(version).
		WithLogger(logger).
		WithMods(mods).
		WithBans(memstore.NewAddressList()).
		WithModerators(memstore.NewAddressList()).
		WithPacks(memstore.NewPacks()).
		Build()
	if err != nil {
		return nil, err
	}
	return &session{mgr: mgr, mods: mods}, nil
}

func runDump(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.mgr.Load(); err != nil {
		return err
	}
	return s.mgr.Export(os.Stdout, cmd.String("format"))
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.mgr.Load(); err != nil {
		if errors.Is(err, configfile.ErrLineRead) {
			return fmt.Errorf("config and backup unreadable: %w", err)
		}
		return err
	}
	fmt.Printf("ok: %s (%d options, %d queued mods)\n",
		s.mgr.FilePath(), s.mgr.Registry().Len(), s.mgr.Queue().Len())
	return nil
}

func runReset(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.mgr.Save(); err != nil {
		return err
	}
	fmt.Printf("reset: %s\n", s.mgr.FilePath())
	return nil
}

func runWatch(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.mgr.Load(); err != nil {
		return err
	}
	s.mgr.EnableQueuedMods(s.mods)
	fmt.Print(s.mgr.Debug())

	changes, err := s.mgr.Watch(ctx)
	if err != nil {
		return err
	}
	for path := range changes {
		fmt.Printf("\n--- %s changed ---\n", path)
		if err := s.mgr.Load(); err != nil {
			fmt.Fprintln(os.Stderr, "reload failed:", err)
			continue
		}
		fmt.Print(s.mgr.Debug())
	}
	return nil
}
