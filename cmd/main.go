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

	"github.com/joho/godotenv"

	httpadapter "ad-launcher/internal/adapter/http"
	"ad-launcher/internal/adapter/meta"
	"ad-launcher/internal/adapter/postgres"
	"ad-launcher/internal/adapter/usecase"
	"ad-launcher/internal/config"
	"ad-launcher/internal/core/port"
	"ad-launcher/internal/db"
)

// main is the entry point of the ad-launcher backend. It loads
// configuration, initializes the Graph API client and resource managers,
// optionally opens the launch-history store, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A .env file is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The launch-history store is optional; without it launches simply
	// are not audited.
	var history port.LaunchHistory
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		history = postgres.NewLaunchRepository(pool)
	}

	client := meta.NewClient(cfg.Meta, logger)
	campaigns := meta.NewCampaignManager(client, logger)
	adSets := meta.NewAdSetManager(client, logger)
	creatives := meta.NewCreativeManager(client, logger)
	ads := meta.NewAdManager(client, logger)
	insights := meta.NewInsightsManager(client)
	previews := meta.NewPreviewManager(client)

	launcher := usecase.NewLaunchPipeline(
		campaigns, adSets, creatives, ads,
		history, cfg.Meta.PageID, cfg.Meta.DefaultCountry, logger)
	cascader := usecase.NewCascadeUpdater(campaigns, adSets, ads, logger)
	overview := usecase.NewCampaignOverview(campaigns, insights, logger)
	previewer := usecase.NewPreviewBuilder(previews, cfg.Meta.PageID)

	handler := httpadapter.NewHandler(launcher, cascader, overview, previewer, history, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
