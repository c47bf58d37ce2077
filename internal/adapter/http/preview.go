package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"ad-launcher/internal/core/port"
)

// handlePreview renders an ad preview from creative fields without
// persisting anything. Missing required fields produce 400; a platform
// response with no previews produces 404.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req port.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	html, err := h.previewer.Render(r.Context(), req)
	if err != nil {
		h.logger.Error("preview error", slog.Any("error", err))
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"html": html})
}
