package server

import (
	"bufio"
	"net"
	"net/http"
)

// statusRecorder remembers what the handler sent so it can be logged. It
// passes Hijack through for the lifecycle WebSocket and Flush for streaming.
type statusRecorder struct {
	http.ResponseWriter
	code     int
	hijacked bool
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.code == 0 {
		rec.code = code
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.code == 0 {
		rec.code = http.StatusOK
	}
	return rec.ResponseWriter.Write(b)
}

// status is the code sent to the client. A handler that wrote nothing
// produced an implicit 200.
func (rec *statusRecorder) status() int {
	if rec.code == 0 {
		return http.StatusOK
	}
	return rec.code
}

func (rec *statusRecorder) committed() bool {
	return rec.code != 0 || rec.hijacked
}

func (rec *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := rec.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	conn, brw, err := hj.Hijack()
	if err != nil {
		return nil, nil, err
	}
	rec.hijacked = true
	rec.code = http.StatusSwitchingProtocols
	return conn, brw, nil
}

func (rec *statusRecorder) Flush() {
	if f, ok := rec.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
