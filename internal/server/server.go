// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes one generator session over a JSON HTTP API.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/pdiddy/idea-generator/internal/generator"
	"github.com/pdiddy/idea-generator/internal/lists"
	"github.com/pdiddy/idea-generator/pkg/types"
)

// Recorder persists generated ideas.
type Recorder interface {
	Record(ctx context.Context, idea types.Idea) (types.Idea, error)
}

// Server serves the session state and the generate action.
type Server struct {
	server   *http.Server
	gen      *generator.Generator
	catalog  *lists.Catalog
	recorder Recorder
	logger   *slog.Logger

	// mu guards session and the generator's random source.
	mu      sync.Mutex
	session *generator.Session
}

// NewServer creates a server with a fresh session. recorder may be nil.
func NewServer(cfg types.ServerConfig, gen *generator.Generator, catalog *lists.Catalog, recorder Recorder, logger *slog.Logger) *Server {
	s := &Server{
		gen:      gen,
		catalog:  catalog,
		recorder: recorder,
		logger:   logger,
		session:  generator.NewSession(),
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.middleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/state", s.handleGetState)
	mux.HandleFunc("PUT /api/state", s.handlePutState)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/lists", s.handleLists)
}

// Handler returns the root handler, including middleware.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// middleware logs each request with its status and duration.
func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration", time.Since(start),
		)
	})
}

// Start listens on the configured address. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.server.Shutdown(ctx)
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
