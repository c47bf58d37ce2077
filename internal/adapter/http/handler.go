package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ad-launcher/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the usecase ports and a logger for structured logging.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	launcher  port.Launcher
	cascader  port.Cascader
	overview  port.Overview
	previewer port.Previewer
	// history may be nil when the audit store is disabled; the history
	// endpoint then serves an empty list.
	history port.LaunchHistory
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. The API is
// consumed by a browser UI, so CORS is open.
func NewHandler(
	launcher port.Launcher,
	cascader port.Cascader,
	overview port.Overview,
	previewer port.Previewer,
	history port.LaunchHistory,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		launcher:  launcher,
		cascader:  cascader,
		overview:  overview,
		previewer: previewer,
		history:   history,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateTestCampaign)
			r.Post("/{id}/pause", h.handlePauseCampaign)
			r.Post("/{id}/activate", h.handleActivateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
		})
		r.Get("/insights/account", h.handleAccountInsights)
		r.Post("/launch", h.handleLaunch)
		r.Get("/launch/history", h.handleLaunchHistory)
		r.Post("/preview", h.handlePreview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v with the given status. Encoding failures are logged;
// the status line has already been sent at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps an error to a JSON error body. Local validation maps to
// 400, a missing preview to 404, everything else to 500. Only the message
// string reaches the client; full diagnostics were already logged where
// the error occurred.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var validation port.ValidationError
	switch {
	case errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrNoPreview):
		status = http.StatusNotFound
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
