package lifecycle

import (
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second

	// Inbound messages are discarded, so they only need to fit a ping.
	maxMessageSize = 4 * 1024
)

// HandlerConfig configures the WebSocket endpoint.
type HandlerConfig struct {
	// PingInterval enables protocol-level ping frames. The connection is
	// considered lost when no pong arrives within twice the interval.
	// Zero disables pings.
	PingInterval time.Duration
}

// Handler upgrades requests to WebSocket sessions and hands them to a
// Controller.
type Handler struct {
	ctrl     *Controller
	cfg      HandlerConfig
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler returns an http.Handler for the lifecycle endpoint.
func NewHandler(ctrl *Controller, cfg HandlerConfig) *Handler {
	return &Handler{
		ctrl: ctrl,
		cfg:  cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameHostOrigin,
		},
		logger: ctrl.logger,
	}
}

// sameHostOrigin accepts non-browser clients and pages served from the same
// host, on any port. localhost and loopback addresses count as one host.
func sameHostOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	originHost, reqHost := u.Hostname(), hostOnly(r.Host)
	if strings.EqualFold(originHost, reqHost) {
		return true
	}
	return isLoopback(originHost) && isLoopback(reqHost)
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func hostOnly(hostport string) string {
	u := url.URL{Host: hostport}
	return u.Hostname()
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warn("Lifecycle upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}
	conn.SetReadLimit(maxMessageSize)

	done := make(chan struct{})
	defer close(done)

	if h.cfg.PingInterval > 0 {
		pongWait := 2 * h.cfg.PingInterval
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		go h.pingLoop(conn, done)
	}

	h.ctrl.Serve(conn)
}

func (h *Handler) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
