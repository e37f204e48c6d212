// Package server exposes the analytics engine as a dashboard JSON API.
// It is an output collaborator: it loads nothing and computes nothing
// itself, it only serves the engine's report structs.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/tickoo/fixedincome"
)

// Server serves the analytics of a fixed set of loaded portfolios.
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger

	// mu serializes analyzer access: an analyzer is not safe for
	// concurrent first use because of the composite-rating cache.
	mu         sync.Mutex
	portfolios map[string]*fixedincome.Analyzer
}

// New creates a server over the given analyzers, keyed by portfolio name.
func New(log zerolog.Logger, portfolios map[string]*fixedincome.Analyzer) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		log:        log.With().Str("component", "server").Logger(),
		portfolios: portfolios,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(s.loggingMiddleware)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/portfolios", s.handlePortfolios)
		r.Route("/portfolios/{name}", func(r chi.Router) {
			r.Get("/summary", s.handleSummary)
			r.Get("/duration", s.handleDuration)
			r.Get("/credit", s.handleCredit)
			r.Get("/ratings", s.handleRatings)
			r.Get("/sector", s.handleSector)
			r.Get("/currency", s.handleCurrency)
			r.Get("/maturity", s.handleMaturity)
			r.Get("/krd", s.handleKRD)
			r.Get("/holdings", s.handleHoldings)
			r.Get("/breakdowns", s.handleBreakdowns)
		})
	})
}

// Start runs the HTTP server until the context is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.server = &http.Server{Addr: addr, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("dashboard API listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("dashboard server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

// Handler returns the underlying router, for tests.
func (s *Server) Handler() http.Handler { return s.router }

// names returns the loaded portfolio names, sorted.
func (s *Server) names() []string {
	names := make([]string, 0, len(s.portfolios))
	for name := range s.portfolios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
