package gateway

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/localplatform/localplatform/internal/gateway/rest"
)

// Server is a route registrar for the API layer.
// It registers REST, lifecycle, and frontend static routes to a given ServeMux.
type Server struct {
	rest        *rest.Handler
	lifecycle   http.Handler
	frontendDir string
	logger      *slog.Logger
}

// ServerOption is a function that configures a Server.
type ServerOption func(*Server)

// WithLifecycle mounts the lifecycle WebSocket at GET /sys/lifecycle.
func WithLifecycle(h http.Handler) ServerOption {
	return func(s *Server) {
		s.lifecycle = h
	}
}

// WithFrontend serves <dir>/sdk under /sdk/ and <dir>/app under /.
func WithFrontend(dir string) ServerOption {
	return func(s *Server) {
		s.frontendDir = dir
	}
}

// WithLogger sets the registrar logger.
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API Server (route registrar).
func NewServer(restHandler *rest.Handler, opts ...ServerOption) *Server {
	s := &Server{
		rest:   restHandler,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "gateway")
	return s
}

// RegisterRoutes registers all API routes to the given ServeMux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	s.rest.RegisterRoutes(mux)

	if s.lifecycle != nil {
		mux.Handle("GET /sys/lifecycle", s.lifecycle)
	}

	if s.frontendDir == "" {
		return
	}

	// Frontend
	if dir, ok := s.staticDir("sdk"); ok {
		mux.Handle("GET /sdk/", http.StripPrefix("/sdk/", http.FileServer(http.Dir(dir))))
	}
	if dir, ok := s.staticDir("app"); ok {
		mux.Handle("GET /", http.FileServer(http.Dir(dir)))
	}
}

// staticDir resolves a frontend subdirectory and reports whether it exists.
func (s *Server) staticDir(name string) (string, bool) {
	dir := filepath.Join(s.frontendDir, name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		s.logger.Warn("Frontend directory missing, not serving", "dir", dir)
		return dir, false
	}
	return dir, true
}
