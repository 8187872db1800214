// Package server provides the HTTP REST API for CV analysis.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/cv-match/internal/config"
	"github.com/jonathan/cv-match/internal/engine"
	"github.com/jonathan/cv-match/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	engine     *engine.Engine
	store      *store.Store // nil disables run persistence
	jwtService *JWTService  // nil disables authentication
	log        *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string // empty disables run persistence
	EnableAuth  bool
}

// New creates a new server instance
func New(cfg Config, eng *engine.Engine, log *zap.Logger) (*Server, error) {
	s := &Server{
		engine: eng,
		log:    log,
	}

	if cfg.DatabaseURL != "" {
		st, err := store.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.store = st
	}

	if cfg.EnableAuth {
		authConfig, err := config.NewAuthConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create auth config: %w", err)
		}
		s.jwtService = NewJWTService(authConfig)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	mux.HandleFunc("POST /api/v1/login", s.handleLogin)
	mux.HandleFunc("POST /api/v1/analyze", s.requireAuth(s.handleAnalyze))
	mux.HandleFunc("POST /api/v1/score", s.requireAuth(s.handleScore))
	mux.HandleFunc("GET /api/v1/runs", s.requireAuth(s.handleListRuns))
	mux.HandleFunc("GET /api/v1/runs/{id}", s.requireAuth(s.handleGetRun))
	mux.HandleFunc("DELETE /api/v1/runs/{id}", s.requireAuth(s.handleDeleteRun))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.store != nil {
		s.store.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// requireAuth wraps a handler with bearer token validation when
// authentication is enabled. With auth disabled it is a no-op.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.jwtService == nil {
			next(w, r)
			return
		}

		token, ok := bearerToken(r)
		if !ok {
			s.errorResponse(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if _, err := s.jwtService.ValidateToken(token); err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next(w, r)
	}
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
