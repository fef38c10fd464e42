package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/localplatform/localplatform/internal/rawio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadText(t *testing.T) {
	mux, _ := newTestMux(t)
	path := filepath.Join(t.TempDir(), "nested", "dir", "hello.txt")

	rr := postJSON(t, mux, "/io/write_text", FileWritePayload{Path: path, Content: "hello"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var status StatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, "success", status.Status)
	assert.Equal(t, path, status.Path)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(onDisk))

	rr = postJSON(t, mux, "/io/read_text", FileReadPayload{Path: path})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp FileReadResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, path, resp.Path)
	assert.Equal(t, "hello", resp.Content)
}

func TestWriteText_EmptyContent(t *testing.T) {
	mux, _ := newTestMux(t)
	path := filepath.Join(t.TempDir(), "empty.txt")

	rr := postJSON(t, mux, "/io/write_text", map[string]string{"path": path})
	require.Equal(t, http.StatusOK, rr.Code)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestReadText_Errors(t *testing.T) {
	dir := t.TempDir()
	badUTF8 := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(badUTF8, []byte{0xff, 0xfe, 0xfd}, 0o644))

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{"relative path", FileReadPayload{Path: "relative/file.txt"}, http.StatusBadRequest, ErrCodeBadRequest},
		{"blank path", FileReadPayload{Path: "   "}, http.StatusBadRequest, ErrCodeBadRequest},
		{"missing path", map[string]string{}, http.StatusBadRequest, ErrCodeBadRequest},
		{"malformed body", `{"path":`, http.StatusBadRequest, ErrCodeBadRequest},
		{"not found", FileReadPayload{Path: filepath.Join(dir, "nope.txt")}, http.StatusNotFound, ErrCodeNotFound},
		{"directory", FileReadPayload{Path: dir}, http.StatusNotFound, ErrCodeNotFound},
		{"invalid utf-8", FileReadPayload{Path: badUTF8}, http.StatusUnprocessableEntity, ErrCodeUnprocessable},
		{"unknown encoding", FileReadPayload{Path: badUTF8, Encoding: "no-such-charset"}, http.StatusBadRequest, ErrCodeBadRequest},
	}

	mux, _ := newTestMux(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, mux, "/io/read_text", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
		})
	}
}

func TestReadText_Latin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9}, 0o644))

	mux, _ := newTestMux(t)
	rr := postJSON(t, mux, "/io/read_text", FileReadPayload{Path: path, Encoding: "latin1"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp FileReadResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "café", resp.Content)
}

func TestWriteText_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"access denied", rawio.ErrAccessDenied, http.StatusForbidden, ErrCodeForbidden},
		{"encode", rawio.ErrEncode, http.StatusUnprocessableEntity, ErrCodeUnprocessable},
		{"unknown encoding", rawio.ErrUnknownEncoding, http.StatusBadRequest, ErrCodeBadRequest},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := new(MockFileService)
			store := new(MockDocumentStore)
			files.On("WriteText", "/abs/file.txt", "data", "").Return(tt.err)

			mux := newMockMux(t, files, store)
			rr := postJSON(t, mux, "/io/write_text", FileWritePayload{Path: "/abs/file.txt", Content: "data"})

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
			files.AssertExpectations(t)
		})
	}
}

func TestWriteText_InternalErrorCarriesMessage(t *testing.T) {
	files := new(MockFileService)
	files.On("WriteText", "/abs/file.txt", "", "utf-16le").Return(errors.New("disk on fire"))

	mux := newMockMux(t, files, new(MockDocumentStore))
	rr := postJSON(t, mux, "/io/write_text", FileWritePayload{Path: "/abs/file.txt", Encoding: "utf-16le"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, decodeError(t, rr).Message, "disk on fire")
}
