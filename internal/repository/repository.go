package repository

import (
	"context"

	"gamecharge/internal/model"
)

// Options tunes repository behaviour shared by all implementations.
type Options struct {
	// CompletedAtSetOnce freezes an order's completedAt on the first
	// transition to "completed". When false (the default) completedAt is
	// recomputed on every completed transition.
	CompletedAtSetOnce bool
}

// GameRepository defines data access for catalog games.
type GameRepository interface {
	// GetGames retrieves all games.
	GetGames(ctx context.Context) ([]model.Game, error)

	// GetGame retrieves a single game. Returns (nil, nil) when absent.
	GetGame(ctx context.Context, id int) (*model.Game, error)

	// CreateGame adds a new game and assigns its ID.
	CreateGame(ctx context.Context, req model.CreateGameRequest) (*model.Game, error)

	// UpdateGame applies a partial edit. Returns model.ErrGameNotFound when absent.
	UpdateGame(ctx context.Context, id int, req model.UpdateGameRequest) (*model.Game, error)

	// DeleteGame removes a game and its price options. Returns
	// model.ErrGameHasOrders while any order references the game.
	DeleteGame(ctx context.Context, id int) error
}

// PriceOptionRepository defines data access for credit packages.
type PriceOptionRepository interface {
	// GetAllPriceOptions retrieves every price option across all games.
	GetAllPriceOptions(ctx context.Context) ([]model.PriceOption, error)

	// GetPriceOptionsByGameID retrieves the price options of one game.
	GetPriceOptionsByGameID(ctx context.Context, gameID int) ([]model.PriceOption, error)

	// GetPriceOptionByID retrieves a single price option. Returns (nil, nil) when absent.
	GetPriceOptionByID(ctx context.Context, id int) (*model.PriceOption, error)

	// CreatePriceOption adds a new price option and assigns its ID.
	CreatePriceOption(ctx context.Context, req model.CreatePriceOptionRequest) (*model.PriceOption, error)

	// UpdatePriceOption applies a partial edit. Returns model.ErrPriceOptionNotFound when absent.
	UpdatePriceOption(ctx context.Context, id int, req model.UpdatePriceOptionRequest) (*model.PriceOption, error)

	// DeletePriceOption removes a price option. Returns model.ErrPriceOptionNotFound when absent.
	DeletePriceOption(ctx context.Context, id int) error
}

// OrderRepository is the authoritative holder of order records and the sole
// writer of orderStatus, paymentStatus and completedAt.
type OrderRepository interface {
	// CreateOrder inserts a new order with orderStatus and paymentStatus
	// pending, assigning the monotonic ID and the human-facing order number.
	CreateOrder(ctx context.Context, ins model.OrderInsert) (*model.Order, error)

	// GetAllOrders retrieves all orders sorted by createdAt descending.
	GetAllOrders(ctx context.Context) ([]model.Order, error)

	// GetOrderByID retrieves a single order. Returns (nil, nil) when absent.
	GetOrderByID(ctx context.Context, id int) (*model.Order, error)

	// GetOrderByNumber retrieves an order by its order number. Returns
	// (nil, nil) when absent.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error)

	// GetOrdersByUserID retrieves a user's orders sorted by createdAt descending.
	GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error)

	// UpdateOrderStatus sets both status axes together. No transition is
	// forbidden; stricter policy, if any, belongs to the API layer. Returns
	// (nil, nil) when the order is absent.
	UpdateOrderStatus(ctx context.Context, id int, orderStatus model.OrderStatus, paymentStatus model.PaymentStatus) (*model.Order, error)
}

// NotificationRepository is the append-only log of notification attempts.
type NotificationRepository interface {
	// CreateNotification records a notification attempt with delivered=false.
	// The orderId is not checked against the order store; an out-of-range
	// orderId is a caller error.
	CreateNotification(ctx context.Context, ins model.NotificationInsert) (*model.Notification, error)

	// GetNotificationsByOrderID retrieves an order's notifications in
	// insertion order.
	GetNotificationsByOrderID(ctx context.Context, orderID int) ([]model.Notification, error)

	// MarkNotificationDelivered flips delivered to true. Idempotent. Returns
	// (nil, nil) when the notification is absent.
	MarkNotificationDelivered(ctx context.Context, id int) (*model.Notification, error)
}

// UserRepository defines data access for customer accounts.
type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)

	// CreateUser stores a new user. A UUID is assigned when u.ID is empty.
	CreateUser(ctx context.Context, u model.User) (*model.User, error)
}

// AdminRepository defines data access for back-office accounts.
type AdminRepository interface {
	GetAdminByID(ctx context.Context, id int) (*model.AdminUser, error)
	GetAdminByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	GetAllAdmins(ctx context.Context) ([]model.AdminUser, error)
	CreateAdmin(ctx context.Context, a model.AdminUser) (*model.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id int) error
}

// SettingsRepository holds the site settings singleton.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (model.SiteSettings, error)

	// UpdateSettings merges a partial edit and bumps updatedAt.
	UpdateSettings(ctx context.Context, upd model.SettingsUpdate) (model.SiteSettings, error)
}
