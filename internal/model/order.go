package model

import "time"

// OrderStatus tracks fulfilment progress of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the value is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks payment confirmation, independently of OrderStatus.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Valid reports whether the value is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// PaymentMethod is the customer-selected manual payment channel.
type PaymentMethod string

const (
	PaymentMethodVodafoneCash PaymentMethod = "vodafoneCash"
	PaymentMethodInstaPay     PaymentMethod = "instaPay"
	PaymentMethodBankTransfer PaymentMethod = "bankTransfer"
)

// Order represents a customer's top-up request tracked through payment and
// fulfilment. GameName, Amount and Price are snapshots taken from the catalog
// at creation time so the order stays readable if the catalog changes.
type Order struct {
	ID            int           `json:"id" db:"id"`
	OrderNumber   string        `json:"orderNumber" db:"order_number"`
	UserID        string        `json:"userId" db:"user_id"`
	GameID        int           `json:"gameId" db:"game_id"`
	GameName      string        `json:"gameName" db:"game_name"`
	PriceOptionID int           `json:"priceOptionId" db:"price_option_id"`
	GameAccountID string        `json:"gameAccountId" db:"game_account_id"`
	ServerName    *string       `json:"serverName" db:"server_name"`
	CustomerPhone string        `json:"customerPhone" db:"customer_phone"`
	Notes         *string       `json:"notes" db:"notes"`
	Amount        int           `json:"amount" db:"amount"`
	Price         float64       `json:"price" db:"price"`
	PaymentMethod PaymentMethod `json:"paymentMethod" db:"payment_method"`
	PaymentStatus PaymentStatus `json:"paymentStatus" db:"payment_status"`
	OrderStatus   OrderStatus   `json:"orderStatus" db:"order_status"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	CompletedAt   *time.Time    `json:"completedAt" db:"completed_at"`
}

// OrderInsert carries the catalog-validated fields for a new order. The
// repository assigns ID, OrderNumber, both statuses and the timestamps.
type OrderInsert struct {
	UserID        string
	GameID        int
	GameName      string
	PriceOptionID int
	GameAccountID string
	ServerName    *string
	CustomerPhone string
	Notes         *string
	Amount        int
	Price         float64
	PaymentMethod PaymentMethod
}

// CreateOrderRequest is the public order-submission payload. Amount, price and
// game name are derived server-side from the referenced price option.
type CreateOrderRequest struct {
	UserID        string  `json:"userId" validate:"required"`
	GameID        int     `json:"gameId" validate:"required,gt=0"`
	PriceOptionID int     `json:"priceOptionId" validate:"required,gt=0"`
	GameAccountID string  `json:"gameAccountId" validate:"required"`
	ServerName    *string `json:"serverName,omitempty"`
	CustomerPhone string  `json:"customerPhone" validate:"required"`
	Notes         *string `json:"notes,omitempty"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=vodafoneCash instaPay bankTransfer"`
}

// OrderStatusUpdateRequest updates both status axes together. Both fields are
// always required even when only one logically changed.
type OrderStatusUpdateRequest struct {
	OrderStatus   string `json:"orderStatus" validate:"required,oneof=pending processing completed cancelled"`
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending paid failed"`
}
