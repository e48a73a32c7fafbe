package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"bugtracker/internal/app"
	"bugtracker/internal/config"
	"bugtracker/internal/logging"
	"bugtracker/internal/otel"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config_load_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.Location())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, logger)
	if err != nil {
		logger.Error("tracing_init_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// An unresolvable API description aborts startup here.
	server, err := app.New(ctx, cfg, logger, reg)
	if err != nil {
		logger.Error("app_init_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- server.Listen()
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			logger.Error("server_failed", slog.String("error", err.Error()))
		}
	case <-ctx.Done():
		logger.Info("server_stopping")
		if err := server.Shutdown(); err != nil {
			logger.Error("server_shutdown_failed", slog.String("error", err.Error()))
		}
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("tracing_shutdown_failed", slog.String("error", err.Error()))
	}
	logger.Info("server_stopped")
}
