// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

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

	"github.com/taibuivan/closet/internal/platform/config"
	"github.com/taibuivan/closet/internal/platform/constants"
	"github.com/taibuivan/closet/internal/platform/middleware"
	"github.com/taibuivan/closet/internal/platform/notice"
	"github.com/taibuivan/closet/internal/platform/respond"
	"github.com/taibuivan/closet/internal/wardrobe/backup"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
	"github.com/taibuivan/closet/internal/wardrobe/intake"
	"github.com/taibuivan/closet/internal/wardrobe/outfit"
	"github.com/taibuivan/closet/internal/wardrobe/profile"
	"github.com/taibuivan/closet/internal/wardrobe/stats"
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
type Handlers struct {
	// Liveness is the /health handler; always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 when the store answers a ping.
	Readiness http.HandlerFunc

	Garment *garment.Handler
	Intake  *intake.Handler
	Outfit  *outfit.Handler
	Profile *profile.Handler
	Stats   *stats.Handler
	Backup  *backup.Handler

	// Notices holds the user-visible warnings drained by GET /notices.
	Notices *notice.Board
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := NewRouter(context, cfg, log, h)

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

// NewRouter builds the routing tree. It is exported so tests can drive the
// full stack through httptest.
func NewRouter(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.PendingNotices(h.Notices))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/garments", func(garments chi.Router) {
			h.Garment.RegisterRoutes(garments)
			garments.Get("/{id}/outfits", h.Outfit.ListByGarment)
		})
		api.Route("/drafts", h.Intake.RegisterRoutes)
		api.Route("/compositions", h.Outfit.RegisterCompositionRoutes)
		api.Route("/outfits", h.Outfit.RegisterOutfitRoutes)
		api.Route("/profile", h.Profile.RegisterRoutes)
		api.Route("/stats", h.Stats.RegisterRoutes)
		api.Route("/backup", h.Backup.RegisterRoutes)

		api.Get("/notices", func(writer http.ResponseWriter, request *http.Request) {
			respond.OK(writer, h.Notices.Drain())
		})
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
