package handler

import (
	"net/http"

	"gamecharge/internal/model"
	"gamecharge/internal/service"

	"github.com/rs/zerolog"
)

// SettingsHandler handles site settings HTTP requests.
type SettingsHandler struct {
	service service.SettingsService
	logger  zerolog.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(service service.SettingsService, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		logger:  logger.With().Str("handler", "settings").Logger(),
	}
}

// Get handles GET /api/settings requests.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Update handles PATCH /api/admin/settings requests.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd model.SettingsUpdate
	if !decodeAndValidate(w, r, &upd, h.logger) {
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), upd)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
