package rest

import (
	"errors"
	"net/http"
	"os"
	"runtime"

	"github.com/localplatform/localplatform/internal/launcher"
)

// handleSystemInfo handles GET /sys/info
func (h *Handler) handleSystemInfo(w http.ResponseWriter, r *http.Request) {
	cwd, err := os.Getwd()
	if err != nil {
		h.logger.Warn("Failed to resolve working directory", "error", err)
	}

	writeJSON(w, http.StatusOK, SystemInfo{
		Platform:                runtime.GOOS,
		GoVersion:               runtime.Version(),
		Arch:                    runtime.GOARCH,
		CurrentWorkingDirectory: cwd,
		DataDir:                 h.store.Root(),
	})
}

// handleOpenExternal handles POST /sys/open-external
func (h *Handler) handleOpenExternal(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAndValidate[OpenExternalPayload](r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	if err := h.opener.Open(req.URL); err != nil {
		if errors.Is(err, launcher.ErrEmptyTarget) {
			writeError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		h.writeInternalError(w, r, err, "Failed to open target")
		return
	}

	h.logger.Info("Opened external target", "target", req.URL)
	writeJSON(w, http.StatusOK, StatusResponse{Status: "opened", Target: req.URL})
}
