package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/preston-bernstein/fm-stats/internal/cli"
	"github.com/preston-bernstein/fm-stats/internal/config"
	"github.com/preston-bernstein/fm-stats/internal/logging"
	"github.com/preston-bernstein/fm-stats/internal/metrics"
)

const appVersion = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, cfgErr := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "fm-stats",
		Version: appVersion,
		Output:  stderr,
	})
	if cfgErr != nil {
		logging.Error(logger, "invalid configuration", cfgErr)
		return 1
	}
	logger = logger.With(logging.FieldRunID, uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		TextfilePath: cfg.Metrics.TextfilePath,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()

	app := cli.New(cli.Options{
		Config:   cfg,
		Logger:   logger,
		Recorder: recorder,
		Out:      stdout,
	})
	if err := app.Run(ctx, args); err != nil {
		logging.Error(logger, "command failed", err)
		if errors.Is(err, cli.ErrUsage) {
			return 2
		}
		return 1
	}
	return 0
}
