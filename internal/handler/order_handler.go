package handler

import (
	"net/http"

	"gamecharge/internal/auth"
	"gamecharge/internal/model"
	"gamecharge/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests. A logged-in customer always
// orders as themselves, whatever userId the payload claims.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	if principal, ok := auth.PrincipalFrom(r.Context()); ok && principal.Kind == auth.KindUser {
		req.UserID = principal.UserID
	}

	order, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders requests. Admins see every order; customers
// see their own history.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "authentication required", h.logger)
		return
	}

	var orders []model.Order
	var err error
	if principal.Kind == auth.KindAdmin {
		orders, err = h.service.GetAllOrders(r.Context())
	} else {
		orders, err = h.service.GetOrdersByUserID(r.Context(), principal.UserID)
	}
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests. Customers can only read
// their own orders.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}

	order, err := h.service.GetOrderByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if principal, ok := auth.PrincipalFrom(r.Context()); ok && principal.Kind == auth.KindUser && order.UserID != principal.UserID {
		writeError(w, http.StatusForbidden, model.ErrCodeForbidden, "not your order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// GetByNumber handles GET /api/orders/number/{orderNumber} requests. Public:
// the order number doubles as the customer's tracking reference.
func (h *OrderHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	orderNumber := r.PathValue("orderNumber")
	if orderNumber == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "order number is required", h.logger)
		return
	}

	order, err := h.service.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// ListByUser handles GET /api/users/{id}/orders requests, restricted to the
// owner or an admin.
func (h *OrderHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "user ID is required", h.logger)
		return
	}

	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "authentication required", h.logger)
		return
	}
	if principal.Kind == auth.KindUser && principal.UserID != userID {
		writeError(w, http.StatusForbidden, model.ErrCodeForbidden, "not your orders", h.logger)
		return
	}

	orders, err := h.service.GetOrdersByUserID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// UpdateStatus handles PATCH /api/orders/{id}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.OrderStatusUpdateRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	order, err := h.service.UpdateOrderStatus(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
