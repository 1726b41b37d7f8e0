package model

import "time"

// User is a storefront customer account. Passwords are bcrypt hashes and are
// never serialised.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Password   string    `json:"-"`
	IsAdmin    bool      `json:"isAdmin"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AdminRole distinguishes full admins from content editors.
type AdminRole string

const (
	AdminRoleAdmin  AdminRole = "admin"
	AdminRoleEditor AdminRole = "editor"
)

// AdminUser is a back-office account, kept separate from customer accounts.
type AdminUser struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"-"`
	Name      string     `json:"name"`
	Role      AdminRole  `json:"role"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
}

// RegisterRequest is the customer sign-up payload.
type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=5"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password" validate:"required,min=8"`
}

// LoginRequest authenticates a customer or an admin by username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateAdminRequest is the payload for adding a back-office account.
type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=5"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin editor"`
}
