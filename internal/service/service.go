package service

import (
	"context"

	"gamecharge/internal/model"
)

// Broadcaster pushes live events to connected storefront clients.
type Broadcaster interface {
	Broadcast(eventType string, data any)
}

// CatalogService exposes the game catalog and its price options.
type CatalogService interface {
	GetGames(ctx context.Context) ([]model.Game, error)
	GetGame(ctx context.Context, id int) (*model.Game, error)
	CreateGame(ctx context.Context, req model.CreateGameRequest) (*model.Game, error)
	UpdateGame(ctx context.Context, id int, req model.UpdateGameRequest) (*model.Game, error)
	DeleteGame(ctx context.Context, id int) error

	GetAllPriceOptions(ctx context.Context) ([]model.PriceOption, error)
	GetPriceOptionsByGameID(ctx context.Context, gameID int) ([]model.PriceOption, error)
	GetPriceOption(ctx context.Context, id int) (*model.PriceOption, error)
	CreatePriceOption(ctx context.Context, req model.CreatePriceOptionRequest) (*model.PriceOption, error)
	UpdatePriceOption(ctx context.Context, id int, req model.UpdatePriceOptionRequest) (*model.PriceOption, error)
	DeletePriceOption(ctx context.Context, id int) error
}

// OrderService owns the order lifecycle: submission, lookups and the
// two-axis status updates, with notifications and live events on each change.
type OrderService interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	GetOrderByID(ctx context.Context, id int) (*model.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, req model.OrderStatusUpdateRequest) (*model.Order, error)
}

// NotificationService exposes the per-order notification log and ad-hoc
// WhatsApp sends.
type NotificationService interface {
	GetNotificationsByOrderID(ctx context.Context, orderID int) ([]model.Notification, error)
	SendWhatsApp(ctx context.Context, req model.SendWhatsAppRequest) (*model.Notification, error)
}

// SettingsService owns the site settings singleton.
type SettingsService interface {
	GetSettings(ctx context.Context) (model.SiteSettings, error)
	UpdateSettings(ctx context.Context, upd model.SettingsUpdate) (model.SiteSettings, error)
}

// AuthService authenticates customers and back-office accounts.
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)

	AdminLogin(ctx context.Context, req model.LoginRequest) (*model.AdminUser, error)
	GetAdmin(ctx context.Context, id int) (*model.AdminUser, error)
	GetAllAdmins(ctx context.Context) ([]model.AdminUser, error)
	CreateAdmin(ctx context.Context, req model.CreateAdminRequest) (*model.AdminUser, error)
}
