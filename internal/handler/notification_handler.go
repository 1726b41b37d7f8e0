package handler

import (
	"net/http"

	"gamecharge/internal/model"
	"gamecharge/internal/service"

	"github.com/rs/zerolog"
)

// NotificationHandler handles notification HTTP requests.
type NotificationHandler struct {
	service service.NotificationService
	logger  zerolog.Logger
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(service service.NotificationService, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger.With().Str("handler", "notification").Logger(),
	}
}

// ListByOrder handles GET /api/orders/{id}/notifications requests.
func (h *NotificationHandler) ListByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}

	notifications, err := h.service.GetNotificationsByOrderID(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	writeJSON(w, http.StatusOK, notifications)
}

// SendWhatsApp handles POST /api/notifications/whatsapp requests.
func (h *NotificationHandler) SendWhatsApp(w http.ResponseWriter, r *http.Request) {
	var req model.SendWhatsAppRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	notification, err := h.service.SendWhatsApp(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"notification": notification,
	})
}
