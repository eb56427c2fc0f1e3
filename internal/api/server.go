// Package api provides the HTTP API server and handlers for the Editoria
// taxonomy service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/editoria/editoria-server/internal/config"
	"github.com/editoria/editoria-server/internal/ratelimit"
	"github.com/editoria/editoria-server/internal/taxonomy"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	taxonomy *taxonomy.Service
	router   *chi.Mux
	api      huma.API
	limiter  *ratelimit.KeyedLimiter
	logger   *slog.Logger
}

// NewServer creates an HTTP server with all routes configured.
func NewServer(svc *taxonomy.Service, cfg config.RateLimitConfig, logger *slog.Logger) *Server {
	s := &Server{
		taxonomy: svc,
		router:   chi.NewRouter(),
		logger:   logger,
	}
	if cfg.Enabled {
		s.limiter = ratelimit.New(cfg.RPS, cfg.Burst)
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("Editoria API", "1.0.0")
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerTagRoutes()
	s.registerCategoryRoutes()
	s.registerAssignmentRoutes()
	s.registerSearchRoutes()
	s.registerExportRoutes()

	return s
}

// MessageResponse is a simple confirmation payload.
type MessageResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// MessageOutput wraps a confirmation message for Huma.
type MessageOutput struct {
	Body MessageResponse
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if s.limiter != nil {
		s.router.Use(s.rateLimitMiddleware)
	}
}
