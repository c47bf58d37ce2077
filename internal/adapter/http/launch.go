package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"ad-launcher/internal/core/port"
)

const defaultHistoryLimit = 50

// handleLaunch runs the launch pipeline. Missing required fields produce
// 400 before any remote call; a pipeline failure produces 500 with the
// failing step prefixed to the message; success returns the four created
// ids.
func (h *Handler) handleLaunch(w http.ResponseWriter, r *http.Request) {
	var req port.LaunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	res, err := h.launcher.Launch(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleLaunchHistory returns the most recent launch attempts from the
// audit store. When the store is disabled the endpoint serves an empty
// list rather than an error so the UI can always render the panel.
func (h *Handler) handleLaunchHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		h.writeJSON(w, http.StatusOK, []port.LaunchRecord{})
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	records, err := h.history.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("launch history error", slog.Any("error", err))
		h.writeError(w, err)
		return
	}
	if records == nil {
		records = []port.LaunchRecord{}
	}
	h.writeJSON(w, http.StatusOK, records)
}
