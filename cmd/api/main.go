// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the closet HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (.env in development).
//  3. Open the key-value store (file, memory, Redis or PostgreSQL).
//  4. Load the catalog, outfits and body profile, migrating legacy keys.
//  5. Select the image analyzer.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/taibuivan/closet/internal/api"
	"github.com/taibuivan/closet/internal/platform/analysis"
	"github.com/taibuivan/closet/internal/platform/config"
	"github.com/taibuivan/closet/internal/platform/constants"
	"github.com/taibuivan/closet/internal/platform/kvstore"
	"github.com/taibuivan/closet/internal/platform/migration"
	"github.com/taibuivan/closet/internal/platform/notice"
	"github.com/taibuivan/closet/internal/platform/persist"
	pgstore "github.com/taibuivan/closet/internal/platform/postgres"
	redisstore "github.com/taibuivan/closet/internal/platform/redis"
	"github.com/taibuivan/closet/internal/wardrobe/backup"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
	"github.com/taibuivan/closet/internal/wardrobe/intake"
	"github.com/taibuivan/closet/internal/wardrobe/outfit"
	"github.com/taibuivan/closet/internal/wardrobe/profile"
	"github.com/taibuivan/closet/internal/wardrobe/stats"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("dotenv_load_failed", slog.Any("error", err))
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
		slog.String("analyzer", cfg.Analyzer),
	)

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Key-value store ────────────────────────────────────────────────
	backend, closeStore, err := openStore(startupCtx, cfg, log)
	must(log, err, "open store")
	defer closeStore()

	store := kvstore.WithQuota(backend, cfg.QuotaBytes)
	notices := notice.NewBoard(constants.NoticeCapacity)

	// ── 4. Aggregates ─────────────────────────────────────────────────────
	catalogAggregate := garment.NewAggregate(store, notices, log)
	items, origin := catalogAggregate.Load(startupCtx, func() []garment.Garment {
		if cfg.SeedSampleData {
			return garment.SampleGarments(time.Now())
		}
		return []garment.Garment{}
	})
	migrate(startupCtx, log, catalogAggregate, items, origin)

	outfitAggregate := outfit.NewAggregate(store, notices, log)
	outfits, origin := outfitAggregate.Load(startupCtx, func() []outfit.Outfit { return []outfit.Outfit{} })
	migrate(startupCtx, log, outfitAggregate, outfits, origin)

	profileAggregate := profile.NewAggregate(store, notices, log)
	bodyProfile, origin := profileAggregate.Load(startupCtx, func() profile.BodyProfile { return profile.BodyProfile{} })
	migrate(startupCtx, log, profileAggregate, bodyProfile, origin)

	catalog := garment.NewCatalog(items, catalogAggregate)
	collection := outfit.NewCollection(outfits, outfitAggregate)
	profileStore := profile.NewStore(bodyProfile, profileAggregate)

	log.Info("wardrobe_loaded",
		slog.Int("garments", catalog.Len()),
		slog.Int("outfits", collection.Len()),
	)

	// ── 5. Image analysis ─────────────────────────────────────────────────
	analyzer, err := newAnalyzer(startupCtx, cfg)
	must(log, err, "initialize analyzer")
	analyzer = analysis.Throttle(analyzer, constants.AnalysisRateLimit, constants.AnalysisRateBurst)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	seed := uint64(time.Now().UnixNano())
	layout := outfit.NewLayout(rand.NewPCG(seed, seed>>1))

	garmentService := garment.NewService(catalog, log)
	outfitService := outfit.NewService(catalog, collection, layout, log)
	intakeService := intake.NewService(garmentService, analyzer, notices, log, cfg.AnalysisTimeout)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		StoreDriver: cfg.StoreDriver,
		CheckStore:  store.Ping,
	}, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Garment:   garment.NewHandler(garmentService),
		Intake:    intake.NewHandler(intakeService),
		Outfit:    outfit.NewHandler(outfitService),
		Profile:   profile.NewHandler(profile.NewService(profileStore, log)),
		Stats:     stats.NewHandler(catalog, collection, stats.NewAggregator(time.Now)),
		Backup:    backup.NewHandler(backup.NewService(catalog, collection, profileStore, log)),
		Notices:   notices,
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
	}

	// Let running analyses settle so their drafts are not written mid-close.
	intakeService.Wait()
	rootCancel()

	log.Info("server_stopped_cleanly")
}

// openStore connects the configured backend and returns its release hook.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (kvstore.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn("memory_store_selected", slog.String("hint", "data is lost on restart"))
		return kvstore.NewMemory(), func() {}, nil

	case config.DriverRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		if err != nil {
			return nil, nil, err
		}
		release := func() {
			if err := client.Close(); err != nil {
				log.Error("redis_close_failed", slog.Any("error", err))
			}
		}
		return kvstore.NewRedis(client, cfg.RedisPrefix), release, nil

	case config.DriverPostgres:
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return nil, nil, err
		}
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewPostgres(pool), pool.Close, nil

	case config.DriverFile:
		store, err := kvstore.NewFile(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		log.Info("file_store_opened", slog.String("dir", store.Dir()))
		return store, func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// newAnalyzer builds the configured photo analyzer.
func newAnalyzer(ctx context.Context, cfg *config.Config) (analysis.Analyzer, error) {
	switch cfg.Analyzer {
	case config.AnalyzerVision:
		vision, err := analysis.NewVision(ctx, cfg.AnalyzerAPIKey)
		if err != nil {
			return nil, err
		}
		return vision, nil
	case config.AnalyzerHTTP:
		return analysis.NewHTTP(cfg.AnalyzerEndpoint, cfg.AnalyzerAPIKey, cfg.AnalysisTimeout), nil
	default:
		return analysis.Disabled{}, nil
	}
}

// migrate rewrites an aggregate found under a legacy key to the current key,
// which also removes the legacy copies.
func migrate[T any](ctx context.Context, log *slog.Logger, aggregate *persist.Aggregate[T], value T, origin persist.Origin) {
	log.Info("aggregate_loaded", slog.String("key", aggregate.Key()), slog.String("origin", string(origin)))
	if origin == persist.OriginLegacy {
		aggregate.Persist(ctx, value)
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
