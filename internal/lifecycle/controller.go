// Package lifecycle ties the process lifetime to the UI's persistent
// connection. When that connection drops, the process is terminated after a
// short grace delay. Once scheduled, termination cannot be cancelled.
package lifecycle

import (
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultGraceDelay leaves time for the close handshake to flush before exit.
const DefaultGraceDelay = 500 * time.Millisecond

// State of the controller.
type State int32

const (
	// StateIdle means no session has been accepted yet.
	StateIdle State = iota
	// StateConnected means a session is open and being watched.
	StateConnected
	// StateTerminating is terminal: process exit is scheduled.
	StateTerminating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnected:
		return "connected"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// Conn is the receive side of a persistent connection.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	Close() error
}

// Terminator ends the process. It is invoked at most once.
type Terminator func()

// ExitProcess terminates immediately with status 0. Deferred functions and
// server shutdown hooks do not run.
func ExitProcess() {
	os.Exit(0)
}

// Options configures a Controller.
type Options struct {
	GraceDelay time.Duration
	Terminator Terminator
	Logger     *slog.Logger
}

// Controller owns the decision to terminate the host process.
type Controller struct {
	grace     time.Duration
	terminate Terminator
	logger    *slog.Logger

	state       atomic.Int32
	sessions    atomic.Int64
	once        sync.Once
	terminating chan struct{}
}

// New creates a Controller. Zero options fall back to DefaultGraceDelay,
// ExitProcess and slog.Default.
func New(opts Options) *Controller {
	if opts.GraceDelay <= 0 {
		opts.GraceDelay = DefaultGraceDelay
	}
	if opts.Terminator == nil {
		opts.Terminator = ExitProcess
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Controller{
		grace:       opts.GraceDelay,
		terminate:   opts.Terminator,
		logger:      opts.Logger.With("component", "lifecycle"),
		terminating: make(chan struct{}),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Terminating is closed when termination has been scheduled.
func (c *Controller) Terminating() <-chan struct{} {
	return c.terminating
}

// GraceDelay returns the delay between disconnect and termination.
func (c *Controller) GraceDelay() time.Duration {
	return c.grace
}

// Serve watches conn until it fails, discarding anything received, and then
// schedules termination. It returns as soon as termination is scheduled and
// closes conn on the way out.
func (c *Controller) Serve(conn Conn) {
	defer conn.Close()

	c.state.CompareAndSwap(int32(StateIdle), int32(StateConnected))
	open := c.sessions.Add(1)
	c.logger.Info("UI connected", "sessions", open)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				c.logger.Warn("UI connection lost", "error", err)
			} else {
				c.logger.Info("UI disconnected", "reason", err)
			}
			break
		}
	}

	c.sessions.Add(-1)
	c.scheduleTermination()
}

// scheduleTermination arms the exit timer once. The first disconnect wins even
// if other sessions are still open.
func (c *Controller) scheduleTermination() {
	c.once.Do(func() {
		c.state.Store(int32(StateTerminating))
		close(c.terminating)
		c.logger.Info("Shutdown triggered", "delay", c.grace)
		time.AfterFunc(c.grace, c.terminate)
	})
}
