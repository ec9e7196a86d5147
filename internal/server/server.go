// Package server provides the HTTP server for the scrawl gesture
// recognition service.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmahajan/scrawl/internal/app"
	"github.com/dmahajan/scrawl/internal/server/api"
	"github.com/dmahajan/scrawl/internal/store"
	"github.com/dmahajan/scrawl/pkg/metrics"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Engine    *app.Engine
	Store     *store.Store
}

// Server represents the HTTP server for the scrawl application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.Handle("/metrics", metrics.Handler())

	if s.config.Engine != nil {
		templateHandler := api.NewTemplateHandler(s.config.Engine)
		s.mux.Handle("/api/templates", templateHandler)
		s.mux.Handle("/api/templates/", templateHandler)

		s.mux.Handle("/api/recognize", api.NewRecognizeHandler(s.config.Engine))

		// WebSocket drawing surface
		s.mux.Handle("/api/draw", NewDrawHandler(s.config.Engine))
	}

	if s.config.Store != nil {
		s.mux.Handle("/api/attempts", api.NewAttemptsHandler(s.config.Store))
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
