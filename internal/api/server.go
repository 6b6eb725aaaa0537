// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

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
	"github.com/periplus-travel/periplus/internal/platform/middleware"
	"github.com/periplus-travel/periplus/internal/platform/sec"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles editor sign-in, token refresh, and logout.
	Auth *editors.Handler

	// Geo serves the place hierarchy: regions, prefectures, divisions, destinations.
	Geo *geo.Handler

	// Sights serves points of interest with opening hours.
	Sights *sight.Handler

	// Tours serves bookable tours with availability rules.
	Tours *tour.Handler

	// Items holds the flat content kinds (experiences, accommodation,
	// food & drink, day itineraries), each mounted under its own path.
	Items []*item.Handler

	// Trips serves multi-day trip plans and their day entries.
	Trips *trip.Handler

	// Settings serves the site-wide settings singleton.
	Settings *settings.Handler

	// Search fans a query out across all content sources.
	Search *search.Handler

	// Geocode resolves destination coordinates via the upstream geocoder.
	Geocode *geocode.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		// Public reads. Every endpoint here serves published content only
		// and degrades to empty payloads when a backend is unavailable.
		h.Geo.RegisterRoutes(api)
		api.Route("/sights", h.Sights.RegisterRoutes)
		api.Route("/tours", h.Tours.RegisterRoutes)
		for _, contentKind := range h.Items {
			api.Route("/"+contentKind.Path(), contentKind.RegisterRoutes)
		}
		api.Route("/trips", h.Trips.RegisterRoutes)
		api.Route("/settings", h.Settings.RegisterRoutes)
		api.Route("/search", h.Search.RegisterRoutes)

		// Admin surface. /auth stays open so editors can sign in; everything
		// else requires at least the editor role.
		api.Route("/admin", func(admin chi.Router) {
			admin.Route("/auth", h.Auth.RegisterRoutes)

			admin.Group(func(protected chi.Router) {
				protected.Use(middleware.RequireRole(sec.RoleEditor))

				protected.Route("/destinations", func(router chi.Router) {
					h.Geo.RegisterAdminRoutes(router)
					h.Geocode.RegisterAdminRoutes(router)
				})
				protected.Route("/sights", h.Sights.RegisterAdminRoutes)
				protected.Route("/tours", h.Tours.RegisterAdminRoutes)
				for _, contentKind := range h.Items {
					protected.Route("/"+contentKind.Path(), contentKind.RegisterAdminRoutes)
				}
				protected.Route("/trips", h.Trips.RegisterAdminRoutes)
				protected.Route("/settings", h.Settings.RegisterAdminRoutes)
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
