// Package cli implements the fmstats subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/preston-bernstein/fm-stats/internal/config"
	"github.com/preston-bernstein/fm-stats/internal/datastore"
	"github.com/preston-bernstein/fm-stats/internal/logging"
	"github.com/preston-bernstein/fm-stats/internal/metrics"
)

// ErrUsage marks errors caused by bad arguments rather than bad data.
var ErrUsage = errors.New("usage")

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// App wires configuration, logging and the data store into the subcommands.
type App struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
	store    datastore.Store
	out      io.Writer
	commands map[string]command
}

// Options configures an App.
type Options struct {
	Config   config.Config
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	Out      io.Writer
}

// New constructs an App backed by an FS store built from opts.Config.
func New(opts Options) *App {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	store := datastore.NewFSStore(datastore.Options{
		BasePath:     opts.Config.Data.Dir,
		TeamsFile:    opts.Config.Data.TeamsFile,
		Competitions: opts.Config.Data.Competitions,
		Logger:       opts.Logger,
		Recorder:     opts.Recorder,
	})
	a := &App{
		logger:   opts.Logger,
		recorder: opts.Recorder,
		store:    store,
		out:      out,
	}
	a.commands = map[string]command{
		"next-season":  {usage: "next-season <season>", run: a.nextSeason},
		"next-version": {usage: "next-version <season> <version>", run: a.nextVersion},
		"latest":       {usage: "latest <season>", run: a.latest},
		"label":        {usage: "label <code> [code...]", run: a.label},
		"players":      {usage: "players -season S [-version V] [-all]", run: a.players},
		"stats":        {usage: "stats -season S [-version V] -player ID", run: a.stats},
		"team":         {usage: "team <id>", run: a.team},
		"matches":      {usage: "matches -season S [-version V]", run: a.matches},
	}
	return a
}

// Run executes the subcommand named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return fmt.Errorf("%w: command required", ErrUsage)
	}
	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}

	logger := a.logger
	if logger != nil {
		logger = logger.With(logging.FieldCommand, name)
	}
	ctx = logging.WithLogger(ctx, logger)

	start := time.Now()
	err := cmd.run(ctx, args[1:])
	duration := time.Since(start)
	a.recorder.RecordCommand(name, duration, err)
	logging.Info(logger, "command finished",
		logging.FieldDurationMS, duration.Milliseconds(),
		"ok", err == nil,
	)
	return err
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(a.out, "usage: fmstats <command> [arguments]")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}
