package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleAccountInsights returns the account-level insight record over the
// last 30 days, or null when the platform has none.
func (h *Handler) handleAccountInsights(w http.ResponseWriter, r *http.Request) {
	summary, err := h.overview.AccountSummary(r.Context())
	if err != nil {
		h.logger.Error("account insights error", slog.Any("error", err))
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
