package handler

import (
	"net/http"

	"gamecharge/internal/model"
	"gamecharge/internal/service"

	"github.com/rs/zerolog"
)

// GameHandler handles catalog game HTTP requests.
type GameHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewGameHandler creates a new game handler.
func NewGameHandler(service service.CatalogService, logger zerolog.Logger) *GameHandler {
	return &GameHandler{
		service: service,
		logger:  logger.With().Str("handler", "game").Logger(),
	}
}

// List handles GET /api/games requests.
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.GetGames(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if games == nil {
		games = []model.Game{}
	}
	writeJSON(w, http.StatusOK, games)
}

// GetByID handles GET /api/games/{id} requests.
func (h *GameHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}

	game, err := h.service.GetGame(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// Create handles POST /api/admin/games requests.
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateGameRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	game, err := h.service.CreateGame(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

// Update handles PATCH /api/admin/games/{id} requests.
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.UpdateGameRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	game, err := h.service.UpdateGame(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// Delete handles DELETE /api/admin/games/{id} requests.
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.service.DeleteGame(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
