package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/openmf/fieldops/internal/bootstrap"
	"github.com/openmf/fieldops/internal/tui"
)

func main() {
	logFile := flag.String("log-file", "fieldops.log", "append logs to this file; empty logs to stderr")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, "fieldops:", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logFile string) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	w, closeLog, err := bootstrap.OpenLogFile(logFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()
	logger := bootstrap.InitLogger(w, cfg.SlogLevel())

	logger.InfoContext(ctx, "starting fieldops",
		"gateway", cfg.Gateway.BaseURL,
		"tenant", cfg.Gateway.Tenant,
		"store", string(cfg.Store.Driver),
		"cache_enabled", cfg.Cache.Enabled,
		"metrics_enabled", cfg.Observability.IsEnabled(),
	)

	services, err := bootstrap.NewServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := services.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close services failed", "error", cerr)
		}
	}()

	if err := tui.Run(ctx, bootstrap.NewApp(ctx, services)); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	slog.InfoContext(ctx, "fieldops stopped")
	return nil
}
