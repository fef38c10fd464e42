package lifecycle

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, ctrl *Controller, cfg HandlerConfig) (*httptest.Server, string) {
	t.Helper()
	srv := httptest.NewServer(NewHandler(ctrl, cfg))
	t.Cleanup(srv.Close)
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestHandler_CloseTriggersTermination(t *testing.T) {
	term := &countingTerminator{}
	ctrl := New(Options{GraceDelay: 50 * time.Millisecond, Terminator: term.terminate})
	_, wsURL := newTestServer(t, ctrl, HandlerConfig{})

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	require.Eventually(t, func() bool { return ctrl.State() == StateConnected }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "window closed")))
	conn.Close()

	select {
	case <-ctrl.Terminating():
	case <-time.After(2 * time.Second):
		t.Fatal("termination was not scheduled")
	}
	require.Eventually(t, func() bool { return term.calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_AbruptDropTriggersTermination(t *testing.T) {
	term := &countingTerminator{}
	ctrl := New(Options{GraceDelay: 10 * time.Millisecond, Terminator: term.terminate})
	_, wsURL := newTestServer(t, ctrl, HandlerConfig{PingInterval: time.Second})

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return ctrl.State() == StateConnected }, time.Second, 5*time.Millisecond)

	// No close frame, just drop the TCP connection.
	conn.NetConn().Close()

	require.Eventually(t, func() bool { return term.calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_TwoSessionsTerminateOnce(t *testing.T) {
	term := &countingTerminator{}
	ctrl := New(Options{GraceDelay: 10 * time.Millisecond, Terminator: term.terminate})
	_, wsURL := newTestServer(t, ctrl, HandlerConfig{})

	a, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	b, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return ctrl.sessions.Load() == 2 }, time.Second, 5*time.Millisecond)

	a.Close()
	b.Close()

	require.Eventually(t, func() bool { return term.calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), term.calls.Load())
}

func TestHandler_RejectsPlainHTTP(t *testing.T) {
	term := &countingTerminator{}
	ctrl := New(Options{GraceDelay: time.Millisecond, Terminator: term.terminate})
	srv, _ := newTestServer(t, ctrl, HandlerConfig{})

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, StateIdle, ctrl.State())
	assert.Equal(t, int32(0), term.calls.Load())
}

func TestSameHostOrigin(t *testing.T) {
	tests := []struct {
		name   string
		host   string
		origin string
		want   bool
	}{
		{"no origin", "127.0.0.1:8000", "", true},
		{"exact", "127.0.0.1:8000", "http://127.0.0.1:8000", true},
		{"other port", "localhost:8000", "http://localhost:4200", true},
		{"localhost page on loopback ip", "127.0.0.1:8000", "http://localhost:8000", true},
		{"loopback ip page on localhost", "localhost:8000", "http://127.0.0.1:4200", true},
		{"ipv6 loopback", "127.0.0.1:8000", "http://[::1]:8000", true},
		{"other loopback address", "[::1]:8000", "http://127.0.0.2:8000", true},
		{"remote page on loopback", "127.0.0.1:8000", "http://192.168.1.20:8000", false},
		{"loopback page on lan address", "192.168.1.20:8000", "http://localhost:8000", false},
		{"foreign", "127.0.0.1:8000", "http://evil.example", false},
		{"no host", "127.0.0.1:8000", "null", false},
		{"garbage", "127.0.0.1:8000", "://", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/sys/lifecycle", nil)
			r.Host = tt.host
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, sameHostOrigin(r))
		})
	}
}
