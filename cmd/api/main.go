// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

// Command api is the entry point for the Periplus HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (public and admin pools).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent, admin pool).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/periplus-travel/periplus/internal/api"
	"github.com/periplus-travel/periplus/internal/core/geocode"
	"github.com/periplus-travel/periplus/internal/core/item"
	"github.com/periplus-travel/periplus/internal/core/search"
	"github.com/periplus-travel/periplus/internal/core/settings"
	"github.com/periplus-travel/periplus/internal/core/sight"
	"github.com/periplus-travel/periplus/internal/core/tour"
	"github.com/periplus-travel/periplus/internal/core/trip"
	"github.com/periplus-travel/periplus/internal/editors"
	"github.com/periplus-travel/periplus/internal/geo"
	"github.com/periplus-travel/periplus/internal/platform/config"
	"github.com/periplus-travel/periplus/internal/platform/constants"
	"github.com/periplus-travel/periplus/internal/platform/media"
	"github.com/periplus-travel/periplus/internal/platform/migration"
	pgstore "github.com/periplus-travel/periplus/internal/platform/postgres"
	redisstore "github.com/periplus-travel/periplus/internal/platform/redis"
	"github.com/periplus-travel/periplus/internal/platform/sec"
	"github.com/periplus-travel/periplus/pkg/slice"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "periplus"))
	slog.SetDefault(log)

	log.Info("[Periplus] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "periplus"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("geo_views", cfg.UseGeoViews.Enabled()),
	)

	// Application context. Cancelled on shutdown so background middleware
	// goroutines (rate limiter cleanup) stop with the server.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Startup gets a 30s deadline so misconfiguration is caught quickly
	// rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(appCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	db, err := pgstore.NewHandles(startupCtx, cfg.PublicDatabaseURL, cfg.AdminDatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pools")
		db.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	// Schema changes run under the privileged role; the public role only
	// ever reads.
	must(log, migration.RunUp(cfg.AdminDatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckPublicDatabase: func() error {
			return pgstore.Ping(context.Background(), db.Public)
		},
		CheckAdminDatabase: func() error {
			return pgstore.Ping(context.Background(), db.Admin)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	imageResolver := media.NewResolver(cfg.StorageBaseURL, cfg.StorageBucket, cfg.ImageHostAllowlist())

	geoRepository := geo.NewPostgresRepository(db, cfg.UseGeoViews.Enabled())
	geoService := geo.NewService(geoRepository, rdb, log)

	sightRepository := sight.NewPostgresRepository(db)
	sightService := sight.NewService(sightRepository, imageResolver, log)

	tourRepository := tour.NewPostgresRepository(db)
	tourService := tour.NewService(tourRepository, imageResolver, log)

	tripRepository := trip.NewPostgresRepository(db)
	tripService := trip.NewService(tripRepository, imageResolver, log)

	settingsRepository := settings.NewPostgresRepository(db)
	settingsService := settings.NewService(settingsRepository, imageResolver, log)

	// The four flat content kinds share one implementation, parameterized
	// by table and URL path.
	itemKinds := []item.Kind{item.KindExperience, item.KindAccommodation, item.KindFoodDrink, item.KindDayItinerary}
	itemRepositories := make([]*item.PostgresRepository, 0, len(itemKinds))
	itemHandlers := make([]*item.Handler, 0, len(itemKinds))
	for _, kind := range itemKinds {
		repository := item.NewPostgresRepository(db, kind)
		itemRepositories = append(itemRepositories, repository)
		itemHandlers = append(itemHandlers, item.NewHandler(item.NewService(kind, repository, imageResolver, log)))
	}

	// Search reads straight from the repositories so a broken source
	// surfaces as an error and the fan-out's degrade policy applies.
	var searchSources []search.Source

	// Hit kinds are the public route segments, so the frontend can build a
	// result link from kind and slug alone.
	searchSources = append(searchSources,
		search.NewSource("sights", func(ctx context.Context, query string, limit int) ([]search.Hit, error) {
			sights, _, err := sightRepository.ListPublished(ctx, sight.Filter{Query: query}, limit, 0)
			if err != nil {
				return nil, err
			}
			return slice.Map(sights, func(row *sight.Sight) search.Hit {
				return search.Hit{
					Kind: "sights", ID: row.ID, Name: row.Name, Slug: row.Slug,
					ImageURL: imageResolver.FirstImage(row.Images),
				}
			}), nil
		}),
		search.NewSource("tours", func(ctx context.Context, query string, limit int) ([]search.Hit, error) {
			tours, _, err := tourRepository.ListPublished(ctx, tour.Filter{Query: query}, limit, 0)
			if err != nil {
				return nil, err
			}
			return slice.Map(tours, func(row *tour.Tour) search.Hit {
				return search.Hit{
					Kind: "tours", ID: row.ID, Name: row.Name, Slug: row.Slug,
					ImageURL: imageResolver.FirstImage(row.Images),
				}
			}), nil
		}),
		search.NewSource("trips", func(ctx context.Context, query string, limit int) ([]search.Hit, error) {
			trips, _, err := tripRepository.ListPublished(ctx, trip.Filter{Query: query}, limit, 0)
			if err != nil {
				return nil, err
			}
			return slice.Map(trips, func(row *trip.Trip) search.Hit {
				return search.Hit{
					Kind: "trips", ID: row.ID, Name: row.Name, Slug: row.Slug,
					ImageURL: imageResolver.FirstImage(row.Images),
				}
			}), nil
		}),
	)
	for index, kind := range itemKinds {
		repository := itemRepositories[index]
		searchSources = append(searchSources, search.NewSource(kind.Path,
			func(ctx context.Context, query string, limit int) ([]search.Hit, error) {
				rows, _, err := repository.ListPublished(ctx, item.Filter{Query: query}, limit, 0)
				if err != nil {
					return nil, err
				}
				return slice.Map(rows, func(row *item.Item) search.Hit {
					return search.Hit{
						Kind: kind.Path, ID: row.ID, Name: row.Name, Slug: row.Slug,
						ImageURL: imageResolver.FirstImage(row.Images),
					}
				}), nil
			}))
	}
	searchService := search.NewService(log, searchSources...)

	geocodeProvider := geocode.NewHTTPProvider(cfg.GeocoderURL, cfg.GeocoderAPIKey)
	geocodeService := geocode.NewService(geoRepository, geocodeProvider, log)

	editorsRepository := editors.NewPostgresRepository(db)
	editorsSessions := editors.NewRedisSessionStore(rdb)
	editorsService := editors.NewService(editorsRepository, editorsSessions, jwtSvc, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      editors.NewHandler(editorsService, !cfg.IsDevelopment()),
		Geo:       geo.NewHandler(geoService),
		Sights:    sight.NewHandler(sightService),
		Tours:     tour.NewHandler(tourService),
		Items:     itemHandlers,
		Trips:     trip.NewHandler(tripService),
		Settings:  settings.NewHandler(settingsService),
		Search:    search.NewHandler(searchService),
		Geocode:   geocode.NewHandler(geocodeService),
	}

	server := api.NewServer(appCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
