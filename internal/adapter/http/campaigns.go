package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListCampaigns lists the account's campaigns. When the query
// carries include=insights each campaign is enriched with impressions,
// clicks and spend; a per-campaign insights failure leaves that campaign
// unenriched but never fails the listing.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	withInsights := r.URL.Query().Get("include") == "insights"
	list, err := h.overview.ListCampaigns(r.Context(), withInsights)
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// handleCreateTestCampaign creates a paused test campaign named after the
// current timestamp and returns its id and name.
func (h *Handler) handleCreateTestCampaign(w http.ResponseWriter, r *http.Request) {
	id, name, err := h.overview.CreateTestCampaign(r.Context())
	if err != nil {
		h.logger.Error("create test campaign error", slog.Any("error", err))
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"id": id, "name": name})
}

// handlePauseCampaign pauses the campaign and cascades the change to its
// active ad sets and ads.
func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.cascader.Pause(r.Context(), id); err != nil {
		h.logger.Error("pause cascade error", slog.String("campaign_id", id), slog.Any("error", err))
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleActivateCampaign activates the campaign and cascades the change to
// its paused ad sets and ads.
func (h *Handler) handleActivateCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.cascader.Activate(r.Context(), id); err != nil {
		h.logger.Error("activate cascade error", slog.String("campaign_id", id), slog.Any("error", err))
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleDeleteCampaign deletes the campaign remotely.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.overview.DeleteCampaign(r.Context(), id); err != nil {
		h.logger.Error("delete campaign error", slog.String("campaign_id", id), slog.Any("error", err))
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
