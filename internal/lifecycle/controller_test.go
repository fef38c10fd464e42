package lifecycle

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedConn returns the queued messages and then err.
type scriptedConn struct {
	mu       sync.Mutex
	messages [][]byte
	err      error
	closed   bool
}

func (c *scriptedConn) ReadMessage() (int, []byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == 0 {
		return 0, nil, c.err
	}
	msg := c.messages[0]
	c.messages = c.messages[1:]
	return websocket.TextMessage, msg, nil
}

func (c *scriptedConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// blockingConn blocks in ReadMessage until released.
type blockingConn struct {
	release chan struct{}
}

func (c *blockingConn) ReadMessage() (int, []byte, error) {
	<-c.release
	return 0, nil, io.EOF
}

func (c *blockingConn) Close() error { return nil }

type countingTerminator struct {
	calls atomic.Int32
	at    atomic.Int64
}

func (t *countingTerminator) terminate() {
	t.at.Store(time.Now().UnixNano())
	t.calls.Add(1)
}

func TestController_Defaults(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, DefaultGraceDelay, c.GraceDelay())
	assert.Equal(t, StateIdle, c.State())
}

func TestController_DisconnectWithoutMessages(t *testing.T) {
	term := &countingTerminator{}
	c := New(Options{GraceDelay: 100 * time.Millisecond, Terminator: term.terminate})
	conn := &scriptedConn{err: &websocket.CloseError{Code: websocket.CloseGoingAway}}

	start := time.Now()
	c.Serve(conn)

	assert.True(t, conn.closed)
	assert.Equal(t, StateTerminating, c.State())
	assert.Equal(t, int32(0), term.calls.Load(), "termination must wait for the grace delay")

	select {
	case <-c.Terminating():
	default:
		t.Fatal("Terminating channel should be closed")
	}

	require.Eventually(t, func() bool { return term.calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, time.Duration(term.at.Load()-start.UnixNano()), 100*time.Millisecond)
}

func TestController_DiscardsMessages(t *testing.T) {
	term := &countingTerminator{}
	c := New(Options{GraceDelay: 10 * time.Millisecond, Terminator: term.terminate})
	conn := &scriptedConn{
		messages: [][]byte{[]byte("ping"), []byte(`{"type":"anything"}`), nil},
		err:      io.ErrUnexpectedEOF,
	}

	c.Serve(conn)

	assert.Empty(t, conn.messages)
	require.Eventually(t, func() bool { return term.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestController_StaysConnectedWhileOpen(t *testing.T) {
	term := &countingTerminator{}
	c := New(Options{GraceDelay: 10 * time.Millisecond, Terminator: term.terminate})
	conn := &blockingConn{release: make(chan struct{})}

	served := make(chan struct{})
	go func() {
		c.Serve(conn)
		close(served)
	}()

	require.Eventually(t, func() bool { return c.State() == StateConnected }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), term.calls.Load())

	close(conn.release)
	<-served
	require.Eventually(t, func() bool { return term.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestController_FirstDisconnectWins(t *testing.T) {
	term := &countingTerminator{}
	c := New(Options{GraceDelay: 20 * time.Millisecond, Terminator: term.terminate})

	first := &blockingConn{release: make(chan struct{})}
	second := &blockingConn{release: make(chan struct{})}

	var wg sync.WaitGroup
	for _, conn := range []*blockingConn{first, second} {
		wg.Add(1)
		go func(conn *blockingConn) {
			defer wg.Done()
			c.Serve(conn)
		}(conn)
	}

	require.Eventually(t, func() bool { return c.sessions.Load() == 2 }, time.Second, 5*time.Millisecond)

	close(first.release)
	<-c.Terminating()
	assert.Equal(t, StateTerminating, c.State())

	close(second.release)
	wg.Wait()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), term.calls.Load())
}

func TestController_ReadErrorKinds(t *testing.T) {
	errs := []error{
		&websocket.CloseError{Code: websocket.CloseNormalClosure},
		&websocket.CloseError{Code: websocket.CloseAbnormalClosure},
		errors.New("i/o timeout"),
		io.EOF,
	}
	for _, err := range errs {
		term := &countingTerminator{}
		c := New(Options{GraceDelay: time.Millisecond, Terminator: term.terminate})
		c.Serve(&scriptedConn{err: err})
		require.Eventually(t, func() bool { return term.calls.Load() == 1 }, time.Second, 5*time.Millisecond, err.Error())
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "terminating", StateTerminating.String())
	assert.Equal(t, "unknown", State(42).String())
}
