package server

import (
	"context"
	"net/http"
)

// Service is the HTTP front of the local backend.
type Service interface {
	// Start binds the listener and serves until a fatal error occurs or
	// the context is canceled.
	Start(ctx context.Context) error

	// Stop drains active connections or gives up when the context expires.
	Stop(ctx context.Context) error

	// RegisterHTTPHandler registers a handler for a specific pattern.
	// This must be called BEFORE Start().
	RegisterHTTPHandler(pattern string, handler http.Handler)

	// HTTPMux returns the underlying HTTP ServeMux for direct route registration.
	// This must be called BEFORE Start().
	HTTPMux() *http.ServeMux

	// Addr reports the bound listener address, or "" before Start.
	Addr() string
}
