package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// GetRequestID returns the correlation ID assigned to the request, or "" if
// the request did not pass through the server's handler stack.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so that mws[0] sees the request first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// withMiddleware builds the stack every route is served through. The request
// ID is assigned before anything logs; CORS runs last so preflights are still
// logged and carry the security headers.
func (s *serverImpl) withMiddleware(h http.Handler) http.Handler {
	mws := []Middleware{
		assignRequestID,
		s.observe,
		localSecurityHeaders,
	}
	if s.cfg.EnableCORS {
		mws = append(mws, newCORSPolicy(s.cfg).handle)
	}
	return Chain(h, mws...)
}

func assignRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// observe records one access log line per request and turns handler panics
// into a 500. A panic after the response is committed, or after a WebSocket
// hijack, is logged but nothing more is written.
func (s *serverImpl) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w}
		start := time.Now()

		defer func() {
			p := recover()
			if p != nil {
				s.recovered(rec, r, p)
			}
			s.logAccess(r, rec, time.Since(start))
			if errors.Is(asError(p), http.ErrAbortHandler) {
				panic(p)
			}
		}()

		next.ServeHTTP(rec, r)
	})
}

func (s *serverImpl) recovered(rec *statusRecorder, r *http.Request, p any) {
	if errors.Is(asError(p), http.ErrAbortHandler) {
		s.logger.Warn("Handler aborted", "path", r.URL.Path, "request_id", GetRequestID(r.Context()))
		return
	}
	s.logger.Error("Panic recovered",
		"method", r.Method,
		"path", r.URL.Path,
		"panic", p,
		"stack", string(debug.Stack()),
		"request_id", GetRequestID(r.Context()),
	)
	if rec.committed() {
		return
	}
	rec.Header().Set("Content-Type", "application/json")
	rec.WriteHeader(http.StatusInternalServerError)
	body := struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{"INTERNAL_ERROR", "Internal server error"}
	if err := json.NewEncoder(rec).Encode(body); err != nil {
		s.logger.Warn("Failed to write panic response", "error", err)
	}
}

func asError(p any) error {
	err, _ := p.(error)
	return err
}

func (s *serverImpl) logAccess(r *http.Request, rec *statusRecorder, elapsed time.Duration) {
	status := rec.status()
	s.logger.Log(r.Context(), accessLevel(status, r.Context()), "HTTP request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"duration_ms", elapsed.Milliseconds(),
		"request_id", GetRequestID(r.Context()),
		"ip", r.RemoteAddr,
		"upgraded", rec.hijacked,
	)
}

// accessLevel is Error for server failures, Warn when the client went away
// first, Info otherwise.
func accessLevel(status int, ctx context.Context) slog.Level {
	switch {
	case status < http.StatusInternalServerError:
		return slog.LevelInfo
	case status == 499, ctx.Err() != nil:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// localSecurityHeaders applies to the UI as well as the API. Framing is
// limited to the same origin because the app window may embed its own pages.
func localSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
