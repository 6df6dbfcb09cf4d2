package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"vehicle-lookup-api/internal/catalog"
	"vehicle-lookup-api/internal/config"
	"vehicle-lookup-api/internal/database"
	"vehicle-lookup-api/internal/handler"
	"vehicle-lookup-api/internal/messaging"
	apimw "vehicle-lookup-api/internal/middleware"
	"vehicle-lookup-api/internal/repository"
	"vehicle-lookup-api/internal/service"
)

func main() {
	// Config
	cfg := config.Load()

	logger := setupLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	slog.Info("starting vehicle-lookup-api", "catalog_source", cfg.Catalog.Source)

	ctx := context.Background()

	// Catalog source
	var (
		src    catalog.Source
		pinger handler.Pinger
	)
	switch cfg.Catalog.Source {
	case config.SourceEmbedded:
		src = catalog.EmbeddedSource{}
	case config.SourceFile:
		src = catalog.FileSource{Path: cfg.Catalog.File}
	case config.SourcePostgres:
		slog.Info("connecting to database", "host", cfg.Database.Host, "database", cfg.Database.Name)
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.RunMigrations(ctx, db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		repo := repository.NewCatalogRepo(db)
		src = repo
		pinger = repo
	default:
		slog.Error("invalid catalog source", "error", fmt.Errorf("%w: %q", catalog.ErrUnknownSource, cfg.Catalog.Source))
		os.Exit(1)
	}

	vehicles, err := catalog.Load(ctx, src, logger)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	// Service
	lookupSvc := service.NewLookupService(vehicles, logger, cfg.SupportContact)

	// NATS responder
	if cfg.NATS.URL != "" {
		nc, err := nats.Connect(cfg.NATS.URL, nats.Name("vehicle-lookup-api"))
		if err != nil {
			slog.Error("failed to connect to nats", "url", cfg.NATS.URL, "error", err)
			os.Exit(1)
		}
		defer nc.Close()

		responder := messaging.NewResponder(nc, lookupSvc, logger, cfg.NATS.Subject, cfg.NATS.Queue)
		if err := responder.Start(); err != nil {
			slog.Error("failed to start nats responder", "error", err)
			os.Exit(1)
		}
		defer responder.Stop()
	}

	// Router
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	handler.Handlers{
		Health: handler.NewHealthHandler(vehicles, cfg.Catalog.Source, pinger),
		Search: handler.NewSearchHandler(lookupSvc),
		Brand:  handler.NewBrandHandler(lookupSvc),
		Page:   handler.NewPageHandler(lookupSvc),
	}.Mount(r, apimw.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	// Server
	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      otelhttp.NewHandler(r, "vehicle-lookup-api"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		slog.Info("server started", "port", cfg.APIPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}

// setupLogger creates a structured logger with the specified level
func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
