package model

import "time"

// Notification types recorded against orders.
const (
	NotificationTypeOrderCreated      = "order_created"
	NotificationTypeOrderStatusUpdate = "order_status_update"
	NotificationTypeWhatsApp          = "whatsapp"
)

// Notification is a logged customer-facing message attempt tied to an order.
// Delivered flips true only via an explicit mark-delivered call.
type Notification struct {
	ID        int       `json:"id" db:"id"`
	OrderID   int       `json:"orderId" db:"order_id"`
	Type      string    `json:"type" db:"type"`
	Content   string    `json:"content" db:"content"`
	SentAt    time.Time `json:"sentAt" db:"sent_at"`
	Delivered bool      `json:"delivered" db:"delivered"`
}

// NotificationInsert carries the fields for a new notification record.
// The repository assigns ID and SentAt and starts Delivered at false.
type NotificationInsert struct {
	OrderID int
	Type    string
	Content string
}

// SendWhatsAppRequest is the admin payload for an ad-hoc WhatsApp send.
type SendWhatsAppRequest struct {
	OrderID     int    `json:"orderId" validate:"required,gt=0"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Message     string `json:"message" validate:"required"`
}
