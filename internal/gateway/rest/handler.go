package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/localplatform/localplatform/internal/server"
)

// FileService reads and writes text files at absolute paths.
type FileService interface {
	ReadText(path, encoding string) (string, error)
	WriteText(path, content, encoding string) error
}

// DocumentStore persists JSON objects addressed by collection and filename.
type DocumentStore interface {
	SaveRaw(collection, filename string, doc json.RawMessage) (string, error)
	LoadRaw(collection, filename string) (json.RawMessage, error)
	Root() string
}

// Opener hands a URL or file path to the OS default application.
type Opener interface {
	Open(target string) error
}

type Handler struct {
	files  FileService
	store  DocumentStore
	opener Opener
	logger *slog.Logger
}

// HandlerOption configures optional Handler dependencies.
type HandlerOption func(*Handler)

// WithOpener enables POST /sys/open-external.
func WithOpener(o Opener) HandlerOption {
	return func(h *Handler) {
		h.opener = o
	}
}

// WithLogger sets the handler logger.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

func NewHandler(files FileService, store DocumentStore, opts ...HandlerOption) (*Handler, error) {
	if files == nil {
		return nil, errors.New("file service cannot be nil")
	}
	if store == nil {
		return nil, errors.New("document store cannot be nil")
	}

	h := &Handler{
		files:  files,
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With("component", "rest")
	return h, nil
}

// Default body size limit
const DefaultMaxBodySize = 10 << 20 // 10MB

// Default request timeout
const DefaultRequestTimeout = 30 * time.Second

// APIError represents a structured error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnprocessable   = "UNPROCESSABLE"
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// writeError writes a structured JSON error response
func writeError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(APIError{Code: code, Message: message}); err != nil {
		slog.Warn("Failed to encode error response", "error", err)
	}
}

// writeInternalError logs err and reports it as a 500. The message carries the
// underlying error so the local UI can show it.
func (h *Handler) writeInternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, context.Canceled) {
		w.WriteHeader(499) // Client Closed Request
		return
	}
	h.logger.Error(message, "error", err, "request_id", server.GetRequestID(r.Context()))
	writeError(w, http.StatusInternalServerError, ErrCodeInternalError, message+": "+err.Error())
}

// writeJSON writes a JSON response with proper error handling
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("Failed to encode JSON response", "error", err)
	}
}

// maxBodySize wraps a handler with request body size limiting
func maxBodySize(next http.HandlerFunc, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		next(w, r)
	}
}

// withTimeout wraps a handler with a context timeout
func withTimeout(next http.HandlerFunc, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Raw file I/O
	mux.HandleFunc("POST /io/read_text", withTimeout(maxBodySize(h.handleReadText, DefaultMaxBodySize), DefaultRequestTimeout))
	mux.HandleFunc("POST /io/write_text", withTimeout(maxBodySize(h.handleWriteText, DefaultMaxBodySize), DefaultRequestTimeout))

	// Document store
	mux.HandleFunc("POST /store/save", withTimeout(maxBodySize(h.handleStoreSave, DefaultMaxBodySize), DefaultRequestTimeout))
	mux.HandleFunc("GET /store/{collection}/{filename}", withTimeout(h.handleStoreLoad, DefaultRequestTimeout))

	// Host
	mux.HandleFunc("GET /sys/info", h.handleSystemInfo)
	if h.opener != nil {
		mux.HandleFunc("POST /sys/open-external", withTimeout(maxBodySize(h.handleOpenExternal, DefaultMaxBodySize), DefaultRequestTimeout))
	}

	mux.HandleFunc("GET /health", h.handleHealth)
}
