package handler

import (
	"net/http"
	"strconv"

	"gamecharge/internal/model"
	"gamecharge/internal/service"

	"github.com/rs/zerolog"
)

// PriceOptionHandler handles price option HTTP requests.
type PriceOptionHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewPriceOptionHandler creates a new price option handler.
func NewPriceOptionHandler(service service.CatalogService, logger zerolog.Logger) *PriceOptionHandler {
	return &PriceOptionHandler{
		service: service,
		logger:  logger.With().Str("handler", "price_option").Logger(),
	}
}

// List handles GET /api/price-options requests, optionally filtered by the
// gameId query parameter.
func (h *PriceOptionHandler) List(w http.ResponseWriter, r *http.Request) {
	var options []model.PriceOption
	var err error

	if raw := r.URL.Query().Get("gameId"); raw != "" {
		gameID, convErr := strconv.Atoi(raw)
		if convErr != nil || gameID < 1 {
			writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid gameId", h.logger)
			return
		}
		options, err = h.service.GetPriceOptionsByGameID(r.Context(), gameID)
	} else {
		options, err = h.service.GetAllPriceOptions(r.Context())
	}
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if options == nil {
		options = []model.PriceOption{}
	}
	writeJSON(w, http.StatusOK, options)
}

// ListByGame handles GET /api/games/{id}/price-options requests.
func (h *PriceOptionHandler) ListByGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}

	options, err := h.service.GetPriceOptionsByGameID(r.Context(), gameID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if options == nil {
		options = []model.PriceOption{}
	}
	writeJSON(w, http.StatusOK, options)
}

// GetByID handles GET /api/price-options/{id} requests.
func (h *PriceOptionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}

	option, err := h.service.GetPriceOption(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, option)
}

// Create handles POST /api/admin/price-options requests.
func (h *PriceOptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePriceOptionRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	option, err := h.service.CreatePriceOption(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, option)
}

// Update handles PATCH /api/admin/price-options/{id} requests.
func (h *PriceOptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.UpdatePriceOptionRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	option, err := h.service.UpdatePriceOption(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, option)
}

// Delete handles DELETE /api/admin/price-options/{id} requests.
func (h *PriceOptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.service.DeletePriceOption(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
