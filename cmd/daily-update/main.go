package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/config"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/server"
)

const (
	appName    = "nhl-fantasy-update"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run(context.Background(), config.Load()))
}

func run(parent context.Context, cfg config.Config) int {
	logger := newLogger(cfg.Mode)

	lg, err := config.LoadLeague(cfg.Report.LeagueFile)
	if err != nil {
		logger.Error("league config unusable", "error", err, slog.String("path", cfg.Report.LeagueFile))
		return 1
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Mode == config.ModeServe {
		server.New(cfg, lg, logger).Run(ctx, stop)
		return 0
	}

	if err := server.RunOnce(ctx, cfg, lg, logger); err != nil {
		logger.Error("daily update failed", "error", err)
		return 1
	}
	return 0
}

// newLogger keeps stdout free for the report text in one-shot mode.
func newLogger(mode string) *slog.Logger {
	var out io.Writer = os.Stdout
	if mode == config.ModeOnce {
		out = os.Stderr
	}
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: appName,
		Version: appVersion,
		Output:  out,
	})
}
