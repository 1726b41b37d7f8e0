package service

import (
	"context"
	"fmt"

	"gamecharge/internal/auth"
	"gamecharge/internal/model"
	"gamecharge/internal/repository"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	users  repository.UserRepository
	admins repository.AdminRepository
	logger zerolog.Logger
}

// NewAuthService creates the auth service.
func NewAuthService(users repository.UserRepository, admins repository.AdminRepository, logger zerolog.Logger) AuthService {
	return &authService{
		users:  users,
		admins: admins,
		logger: logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a customer account. Username, email and phone must each be
// unused.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	existing, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrUserExists
	}

	if req.Email != nil {
		existing, err = s.users.GetUserByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, model.ErrUserExists
		}
	}

	if req.Phone != nil {
		existing, err = s.users.GetUserByPhone(ctx, *req.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, model.ErrUserExists
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, model.User{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hash,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Login verifies a customer's credentials. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		return nil, model.ErrBadCredentials
	}

	s.logger.Debug().Str("user_id", user.ID).Msg("user logged in")
	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *authService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.users.GetAllUsers(ctx)
}

// AdminLogin verifies a back-office account and stamps its last login.
func (s *authService) AdminLogin(ctx context.Context, req model.LoginRequest) (*model.AdminUser, error) {
	admin, err := s.admins.GetAdminByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil || !auth.CheckPassword(admin.Password, req.Password) {
		return nil, model.ErrBadCredentials
	}

	if err := s.admins.UpdateLastLogin(ctx, admin.ID); err != nil {
		s.logger.Warn().Err(err).Int("admin_id", admin.ID).Msg("failed to stamp last login")
	}

	s.logger.Info().Int("admin_id", admin.ID).Str("username", admin.Username).Msg("admin logged in")
	return admin, nil
}

func (s *authService) GetAdmin(ctx context.Context, id int) (*model.AdminUser, error) {
	admin, err := s.admins.GetAdminByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, model.ErrUserNotFound
	}
	return admin, nil
}

func (s *authService) GetAllAdmins(ctx context.Context) ([]model.AdminUser, error) {
	return s.admins.GetAllAdmins(ctx)
}

// CreateAdmin adds a back-office account with a unique username.
func (s *authService) CreateAdmin(ctx context.Context, req model.CreateAdminRequest) (*model.AdminUser, error) {
	existing, err := s.admins.GetAdminByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrUserExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := s.admins.CreateAdmin(ctx, model.AdminUser{
		Username: req.Username,
		Password: hash,
		Name:     req.Name,
		Role:     model.AdminRole(req.Role),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("admin_id", admin.ID).Str("username", admin.Username).Msg("admin created")
	return admin, nil
}
