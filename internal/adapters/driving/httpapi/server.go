// Package httpapi exposes stored sentiment insights over a JSON REST API.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sentimark/sentimark/internal/core/ports/driving"
	"github.com/sentimark/sentimark/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server serves the REST API.
type Server struct {
	insights   driving.Insights
	summaries  driving.SummaryService
	httpServer *http.Server
}

// NewServer creates a REST API server bound to addr.
func NewServer(addr string, insights driving.Insights, summaries driving.SummaryService) *Server {
	s := &Server{
		insights:  insights,
		summaries: summaries,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router configures all routes and middleware.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/healthz", s.handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/daily", s.handleDaily)
		r.Get("/top", s.handleTop)
		r.Route("/posts/{postID}", func(r chi.Router) {
			r.Get("/", s.handleGetPost)
			r.Post("/summaries", s.handlePostSummaries)
		})
	})

	return router
}

// ListenAndServe blocks serving requests until the server is shut down.
func (s *Server) ListenAndServe() error {
	logger.Info("http: listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
