// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/laguz/internal/api"
	"github.com/starford/laguz/internal/cache"
	"github.com/starford/laguz/internal/contentservice"
	"github.com/starford/laguz/internal/maintenance"
	"github.com/starford/laguz/internal/mongostore"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("mongo_database", cfg.Mongo.Database),
		slog.String("maintenance_mode", cfg.Maintenance.Mode),
		slog.Int("cache_ttl_seconds", cfg.Cache.TTLSeconds),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Connect to the document store.
	store, err := mongostore.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return fmt.Errorf("init document store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn("document store close failed", slog.String("error", err.Error()))
		}
	}()

	// Cache store and content service.
	cacheStore := cache.New(cfg.Cache.TTL())
	svc := contentservice.New(contentservice.Repositories{
		Navigation:      store.Navigation(),
		Footer:          store.Footer(),
		Announcements:   store.Announcements(),
		Events:          store.Events(),
		Attachments:     store.Attachments(),
		Services:        store.Services(),
		Agreements:      store.Agreements(),
		Features:        store.Features(),
		Recommendations: store.Recommendations(),
		Pages:           store.Pages(),
	}, cacheStore)

	// Path-based revalidation: which tags each rendered path depends on.
	associatePaths(cacheStore)

	// Maintenance flag, seeded from config, optionally file-driven.
	maintState := maintenance.NewState(cfg.Maintenance.ParsedMode())

	r := api.NewRouter(api.Config{
		Service:            svc,
		Maintenance:        maintState,
		MaintenanceMessage: cfg.Maintenance.Message,
		RevalidateSecret:   cfg.Revalidate.Secret,
	})

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the maintenance control file, when configured.
	if cfg.Maintenance.File != "" {
		g.Go(func() error {
			return maintenance.Watch(gCtx, maintState, cfg.Maintenance.File, logger)
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// associatePaths registers the cache tags each rendered site path reads, so
// that a path-based revalidation request maps back to the entries it must
// drop. Mirrors the page composition on the rendering side.
func associatePaths(s *cache.Store) {
	s.Associate("/",
		contentservice.TagNav, contentservice.TagFooter,
		contentservice.TagAnnouncements, contentservice.TagEvents,
		contentservice.TagFeatures, contentservice.TagRecommendations)
	s.Associate("/services", contentservice.TagNav, contentservice.TagFooter, contentservice.TagServices)
	s.Associate("/agreements", contentservice.TagNav, contentservice.TagFooter, contentservice.TagAgreements)
	s.Associate("/attachments", contentservice.TagNav, contentservice.TagFooter, contentservice.TagAttachments)
	s.Associate("/about-us", contentservice.TagNav, contentservice.TagFooter, contentservice.TagPages)
}
