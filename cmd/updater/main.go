package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/riskibarqy/matchday-scraper/internal/app"
	"github.com/riskibarqy/matchday-scraper/internal/config"
	"github.com/riskibarqy/matchday-scraper/internal/observability"
	"github.com/riskibarqy/matchday-scraper/internal/platform/logging"
	"go.opentelemetry.io/otel"
)

// Usage: updater [YYYY-MM-DD ...]. Without arguments today's date is scraped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewConsole(cfg.LogLevel)
	if cfg.LogFormat == config.LogFormatJSON {
		logger = logging.NewJSON(cfg.LogLevel)
	}
	logger = logger.With("service", cfg.ServiceName, "env", cfg.AppEnv)
	logging.SetDefault(logger)

	exit(logger, run(cfg, logger))
}

var osExit = os.Exit

// exit flushes buffered log entries, os.Exit skips deferred calls.
func exit(logger *logging.Logger, code int) {
	_ = logger.Sync()
	osExit(code)
}

func run(cfg config.Config, logger *logging.Logger) int {
	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("flush traces failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.BatchTimeout)
	defer cancel()

	ctx, span := otel.Tracer("matchday-scraper/cmd/updater").Start(ctx, "updater.run")
	defer span.End()

	updater, err := app.NewUpdater(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "build updater", "error", err)
		return 1
	}
	defer func() {
		if err := updater.Close(); err != nil {
			logger.Warn("close updater", "error", err)
		}
	}()

	dates := gameDates(os.Args[1:], time.Now())
	result, err := updater.Service.Run(ctx, dates)
	if err != nil {
		span.RecordError(err)
		logger.ErrorContext(ctx, "matchday batch failed", "dates", dates, "error", err)
		return 1
	}

	logger.InfoContext(ctx, "matchday batch done",
		"run_id", result.RunID,
		"processed", result.Processed,
		"skipped", len(result.Skipped),
	)
	return 0
}

func gameDates(args []string, now time.Time) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		out = append(out, now.Format("2006-01-02"))
	}
	return out
}
