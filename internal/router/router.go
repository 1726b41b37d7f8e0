package router

import (
	"net/http"

	"gamecharge/internal/auth"
	"gamecharge/internal/handler"
	"gamecharge/internal/middleware"
	"gamecharge/internal/ws"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	gameHandler *handler.GameHandler,
	priceOptionHandler *handler.PriceOptionHandler,
	orderHandler *handler.OrderHandler,
	notificationHandler *handler.NotificationHandler,
	settingsHandler *handler.SettingsHandler,
	authHandler *handler.AuthHandler,
	hub *ws.Hub,
	sessions *auth.SessionStore,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Auth
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/session", authHandler.Session)

	// Catalog (public)
	mux.HandleFunc("GET /api/games", gameHandler.List)
	mux.HandleFunc("GET /api/games/{id}", gameHandler.GetByID)
	mux.HandleFunc("GET /api/games/{id}/price-options", priceOptionHandler.ListByGame)
	mux.HandleFunc("GET /api/price-options", priceOptionHandler.List)
	mux.HandleFunc("GET /api/price-options/{id}", priceOptionHandler.GetByID)

	// Orders
	mux.HandleFunc("POST /api/orders", orderHandler.Create)
	mux.Handle("GET /api/orders", middleware.RequireAuth(http.HandlerFunc(orderHandler.List)))
	mux.Handle("GET /api/orders/{id}", middleware.RequireAuth(http.HandlerFunc(orderHandler.GetByID)))
	mux.HandleFunc("GET /api/orders/number/{orderNumber}", orderHandler.GetByNumber)
	mux.Handle("PATCH /api/orders/{id}/status", middleware.RequireAdmin(http.HandlerFunc(orderHandler.UpdateStatus)))
	mux.Handle("GET /api/orders/{id}/notifications", middleware.RequireAdmin(http.HandlerFunc(notificationHandler.ListByOrder)))
	mux.Handle("GET /api/users/{id}/orders", middleware.RequireAuth(http.HandlerFunc(orderHandler.ListByUser)))

	// Notifications
	mux.Handle("POST /api/notifications/whatsapp", middleware.RequireAdmin(http.HandlerFunc(notificationHandler.SendWhatsApp)))

	// Settings
	mux.HandleFunc("GET /api/settings", settingsHandler.Get)
	mux.Handle("PATCH /api/admin/settings", middleware.RequireAdmin(http.HandlerFunc(settingsHandler.Update)))

	// Back office
	mux.HandleFunc("POST /api/admin/login", authHandler.AdminLogin)
	mux.Handle("GET /api/admin/profile", middleware.RequireAdmin(http.HandlerFunc(authHandler.AdminProfile)))
	mux.Handle("GET /api/admin/list", middleware.RequireAdmin(http.HandlerFunc(authHandler.AdminList)))
	mux.Handle("POST /api/admin/create", middleware.RequireAdmin(http.HandlerFunc(authHandler.AdminCreate)))
	mux.Handle("GET /api/admin/users", middleware.RequireAdmin(http.HandlerFunc(authHandler.ListUsers)))
	mux.Handle("POST /api/admin/games", middleware.RequireAdmin(http.HandlerFunc(gameHandler.Create)))
	mux.Handle("PATCH /api/admin/games/{id}", middleware.RequireAdmin(http.HandlerFunc(gameHandler.Update)))
	mux.Handle("DELETE /api/admin/games/{id}", middleware.RequireAdmin(http.HandlerFunc(gameHandler.Delete)))
	mux.Handle("POST /api/admin/price-options", middleware.RequireAdmin(http.HandlerFunc(priceOptionHandler.Create)))
	mux.Handle("PATCH /api/admin/price-options/{id}", middleware.RequireAdmin(http.HandlerFunc(priceOptionHandler.Update)))
	mux.Handle("DELETE /api/admin/price-options/{id}", middleware.RequireAdmin(http.HandlerFunc(priceOptionHandler.Delete)))

	// Live events
	mux.HandleFunc("GET /ws", hub.HandleWS)

	// Apply middleware in order: Recovery -> Logging -> CORS -> RateLimit -> Session
	rateLimiter := middleware.NewRateLimiter()

	var h http.Handler = mux
	h = middleware.Session(sessions)(h)
	h = rateLimiter.Middleware(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
