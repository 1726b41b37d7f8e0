package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeValidation          = "VALIDATION_FAILED"
	ErrCodeGameNotFound        = "GAME_NOT_FOUND"
	ErrCodeGameHasOrders       = "GAME_HAS_ORDERS"
	ErrCodePriceOptionNotFound = "PRICE_OPTION_NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeNotifNotFound       = "NOTIFICATION_NOT_FOUND"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeUserExists          = "USER_EXISTS"
	ErrCodeBadCredentials      = "BAD_CREDENTIALS"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure carried across layers.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrGameNotFound        = NewDomainError(ErrCodeGameNotFound, "Game not found")
	ErrGameHasOrders       = NewDomainError(ErrCodeGameHasOrders, "Game cannot be deleted while orders reference it")
	ErrPriceOptionNotFound = NewDomainError(ErrCodePriceOptionNotFound, "Price option not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrNotifNotFound       = NewDomainError(ErrCodeNotifNotFound, "Notification not found")
	ErrUserNotFound        = NewDomainError(ErrCodeUserNotFound, "User not found")
	ErrUserExists          = NewDomainError(ErrCodeUserExists, "User already exists")
	ErrBadCredentials      = NewDomainError(ErrCodeBadCredentials, "Incorrect username or password")
)
