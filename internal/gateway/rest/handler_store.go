package rest

import (
	"errors"
	"net/http"

	"github.com/localplatform/localplatform/internal/docstore"
)

// handleStoreSave handles POST /store/save
func (h *Handler) handleStoreSave(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAndValidate[StoreSavePayload](r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	path, err := h.store.SaveRaw(req.Collection, req.Filename, req.Data)
	if err != nil {
		h.writeStoreError(w, r, err, "Failed to save document")
		return
	}

	h.logger.Debug("Document saved", "collection", req.Collection, "filename", req.Filename)
	writeJSON(w, http.StatusOK, StatusResponse{Status: "success", Path: path})
}

// handleStoreLoad handles GET /store/{collection}/{filename}
func (h *Handler) handleStoreLoad(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	filename := r.PathValue("filename")
	if err := validateDocumentID(collection, filename); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	doc, err := h.store.LoadRaw(collection, filename)
	if err != nil {
		h.writeStoreError(w, r, err, "Failed to load document")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(append(doc, '\n')); err != nil {
		h.logger.Warn("Failed to write document response", "error", err)
	}
}

// writeStoreError maps docstore errors onto HTTP statuses.
func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		writeError(w, http.StatusNotFound, ErrCodeNotFound, "Document not found")
	case errors.Is(err, docstore.ErrCorrupt):
		writeError(w, http.StatusUnprocessableEntity, ErrCodeUnprocessable, "Document contains invalid JSON")
	case errors.Is(err, docstore.ErrNotObject):
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "data: must be a JSON object")
	default:
		h.writeInternalError(w, r, err, message)
	}
}
