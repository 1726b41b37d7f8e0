package service

import (
	"context"
	"testing"

	"gamecharge/internal/auth"
	"gamecharge/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	users.On("GetUserByUsername", ctx, "newuser1").Return(nil, nil)
	users.On("CreateUser", ctx, mock.MatchedBy(func(u model.User) bool {
		// The stored password must be a hash, never the plaintext.
		return u.Username == "newuser1" && u.Password != "password123" && auth.CheckPassword(u.Password, "password123")
	})).Return(&model.User{ID: "uuid-1", Username: "newuser1"}, nil)

	svc := NewAuthService(users, new(MockAdminRepository), zerolog.Nop())

	user, err := svc.Register(ctx, model.RegisterRequest{
		Username: "newuser1",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", user.ID)

	users.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	users.On("GetUserByUsername", ctx, "taken").Return(&model.User{ID: "x", Username: "taken"}, nil)

	svc := NewAuthService(users, new(MockAdminRepository), zerolog.Nop())

	_, err := svc.Register(ctx, model.RegisterRequest{Username: "taken", Password: "password123"})
	assert.ErrorIs(t, err, model.ErrUserExists)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetUserByUsername", ctx, "ahmed123").Return(&model.User{ID: "u1", Username: "ahmed123", Password: hash}, nil)
	users.On("GetUserByUsername", ctx, "nobody").Return(nil, nil)

	svc := NewAuthService(users, new(MockAdminRepository), zerolog.Nop())

	t.Run("correct password", func(t *testing.T) {
		user, err := svc.Login(ctx, model.LoginRequest{Username: "ahmed123", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, model.LoginRequest{Username: "ahmed123", Password: "wrong"})
		assert.ErrorIs(t, err, model.ErrBadCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, model.LoginRequest{Username: "nobody", Password: "password123"})
		assert.ErrorIs(t, err, model.ErrBadCredentials)
	})
}

func TestAuthService_AdminLogin_StampsLastLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	admins := new(MockAdminRepository)
	admins.On("GetAdminByUsername", ctx, "admin").Return(&model.AdminUser{ID: 1, Username: "admin", Password: hash}, nil)
	admins.On("UpdateLastLogin", ctx, 1).Return(nil)

	svc := NewAuthService(new(MockUserRepository), admins, zerolog.Nop())

	admin, err := svc.AdminLogin(ctx, model.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, 1, admin.ID)

	admins.AssertExpectations(t)
}

func TestAuthService_CreateAdmin_DuplicateUsername(t *testing.T) {
	ctx := context.Background()

	admins := new(MockAdminRepository)
	admins.On("GetAdminByUsername", ctx, "admin").Return(&model.AdminUser{ID: 1, Username: "admin"}, nil)

	svc := NewAuthService(new(MockUserRepository), admins, zerolog.Nop())

	_, err := svc.CreateAdmin(ctx, model.CreateAdminRequest{
		Username: "admin",
		Password: "password123",
		Name:     "Someone",
		Role:     "editor",
	})
	assert.ErrorIs(t, err, model.ErrUserExists)
}
