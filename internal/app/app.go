// Package app wires configuration, logging, services and the HTTP router
// into a runnable server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"meteocli/internal/config"
	apperrors "meteocli/internal/errors"
	"meteocli/internal/infrastructure"
	custommw "meteocli/internal/middleware"
	"meteocli/internal/services"
	handlers "meteocli/internal/transport/http"
)

// Version is set at compile time via -ldflags.
var Version = "dev"

// Application represents the main application container
type Application struct {
	cfg    *config.Config
	logger *slog.Logger
	router chi.Router
	server *http.Server
}

// NewApplication builds the application from configuration.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app := &Application{
		cfg:    cfg,
		logger: logger,
	}
	app.setupRouter()
	app.createServer()

	return app, nil
}

// setupRouter assembles the middleware chain and routes.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	errorHandler := apperrors.NewErrorHandler(a.logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := custommw.NewMetrics(registry)

	r.Use(custommw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommw.StructuredLogger(a.logger))
	r.Use(custommw.Recoverer(a.logger))
	r.Use(metrics.Handler)

	if a.cfg.Server.RateLimit.Enabled {
		limiter := custommw.NewRateLimiter(a.cfg.Server.RateLimit.RPS, a.cfg.Server.RateLimit.Burst, a.logger)
		r.Use(limiter.Handler)
	}

	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	healthHandler := handlers.NewHealthHandler(Version)
	r.Get("/healthz", healthHandler.Health)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	seriesService := services.NewSeriesService(a.cfg, a.logger)
	seriesHandler := handlers.NewSeriesHandler(seriesService, a.logger, errorHandler, a.cfg.Server.MaxUploadBytes)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Mount("/series", seriesHandler.Routes())
	})

	a.router = r
}

// createServer configures the HTTP server from config timeouts.
func (a *Application) createServer() {
	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.Server.Port),
		Handler:      a.router,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

// Router exposes the assembled router, mainly for tests.
func (a *Application) Router() chi.Router {
	return a.router
}

// Run starts the server and blocks until shutdown.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("server starting",
			slog.String("addr", a.server.Addr),
			slog.String("version", Version))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.logger.Info("server shutting down",
			slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	err := g.Wait()
	infrastructure.CloseLogFile()
	return err
}
