package rest

import (
	"errors"
	"net/http"

	"github.com/localplatform/localplatform/internal/rawio"
)

// handleReadText handles POST /io/read_text
func (h *Handler) handleReadText(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAndValidate[FileReadPayload](r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	content, err := h.files.ReadText(req.Path, req.Encoding)
	if err != nil {
		h.writeFileError(w, r, err, "Failed to read file")
		return
	}

	writeJSON(w, http.StatusOK, FileReadResponse{Path: req.Path, Content: content})
}

// handleWriteText handles POST /io/write_text
func (h *Handler) handleWriteText(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAndValidate[FileWritePayload](r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	if err := h.files.WriteText(req.Path, req.Content, req.Encoding); err != nil {
		h.writeFileError(w, r, err, "Failed to write file")
		return
	}

	h.logger.Debug("File written", "path", req.Path, "bytes", len(req.Content))
	writeJSON(w, http.StatusOK, StatusResponse{Status: "success", Path: req.Path})
}

// writeFileError maps rawio errors onto HTTP statuses.
func (h *Handler) writeFileError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, rawio.ErrInvalidPath):
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid path: must be absolute")
	case errors.Is(err, rawio.ErrUnknownEncoding):
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, rawio.ErrNotFound):
		writeError(w, http.StatusNotFound, ErrCodeNotFound, "File not found")
	case errors.Is(err, rawio.ErrAccessDenied):
		writeError(w, http.StatusForbidden, ErrCodeForbidden, "Permission denied")
	case errors.Is(err, rawio.ErrDecode), errors.Is(err, rawio.ErrEncode):
		writeError(w, http.StatusUnprocessableEntity, ErrCodeUnprocessable, err.Error())
	default:
		h.writeInternalError(w, r, err, message)
	}
}
