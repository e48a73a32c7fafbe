// Package app composes the bug tracker: store, service, API description and
// the fiber application with its middleware chain.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bugtracker/internal/config"
	handlers "bugtracker/internal/http/handler"
	"bugtracker/internal/http/middleware"
	"bugtracker/internal/openapi"
	"bugtracker/internal/repository/memory"
	"bugtracker/internal/service"
)

const (
	apiTitle       = "Bug Tracker API"
	apiVersion     = "1.0.0"
	apiDescription = "A simple API for tracking bugs"
)

// App is a fully wired bug tracker instance. Each App owns its own store.
type App struct {
	cfg    *config.AppConfig
	logger *slog.Logger
	fiber  *fiber.App
	doc    *openapi3.T
}

// New builds an App. reg receives every metric the App exposes and is served
// on /metrics. It fails when the API description cannot be built.
func New(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger, reg *prometheus.Registry) (*App, error) {
	repo := memory.NewBugMemory()

	metrics, err := service.NewMetrics(reg, repo)
	if err != nil {
		return nil, fmt.Errorf("register bug metrics: %w", err)
	}
	svc := service.NewBugService(repo, metrics)

	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	f := fiber.New(fiber.Config{
		AppName:               apiTitle,
		ErrorHandler:          handlers.ErrorHandler(),
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		DisableStartupMessage: true,
	})

	f.Use(middleware.RequestID())
	f.Use(middleware.AccessLog(logger))
	f.Use(httpMetrics.Handler())
	f.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.AllowOrigins}))
	// otelfiber hands errors to the error handler itself, so the middleware
	// above always observes the final status.
	f.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	f.Use(recover.New())

	f.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	registry := openapi.NewRegistry()
	handlers.RegisterRoutes(f, registry, svc)

	doc, err := registry.Document(ctx, openapi.Info{
		Title:             apiTitle,
		Version:           apiVersion,
		Description:       apiDescription,
		ServerURL:         cfg.PublicURL,
		ServerDescription: "Local server",
	})
	if err != nil {
		return nil, fmt.Errorf("build API description: %w", err)
	}
	for _, op := range registry.Operations() {
		logger.Debug("operation_declared",
			slog.String("method", op.Method),
			slog.String("path", op.Path),
			slog.String("operation_id", op.OperationID),
		)
	}
	if err := handlers.RegisterDocsRoutes(f, doc, cfg.DocumentURL()); err != nil {
		return nil, err
	}

	return &App{cfg: cfg, logger: logger, fiber: f, doc: doc}, nil
}

// Fiber exposes the underlying fiber application, mainly for app.Test.
func (a *App) Fiber() *fiber.App {
	return a.fiber
}

// Document returns the validated API description.
func (a *App) Document() *openapi3.T {
	return a.doc
}

// Listen serves on the configured port until Shutdown is called.
func (a *App) Listen() error {
	a.logger.Info("server_starting",
		slog.String("addr", a.cfg.Addr()),
		slog.String("env", a.cfg.Env),
		slog.String("base_url", a.cfg.BaseURL()),
		slog.String("openapi_url", a.cfg.DocumentURL()),
		slog.String("docs_url", a.cfg.DocsPageURL()),
	)
	return a.fiber.Listen(a.cfg.Addr())
}

// Shutdown stops accepting connections and waits for in-flight requests,
// at most HTTP.ShutdownTimeout.
func (a *App) Shutdown() error {
	return a.fiber.ShutdownWithTimeout(a.cfg.HTTP.ShutdownTimeout)
}
