package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamecharge/internal/auth"
	"gamecharge/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockAuthService) AdminLogin(ctx context.Context, req model.LoginRequest) (*model.AdminUser, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockAuthService) GetAdmin(ctx context.Context, id int) (*model.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockAuthService) GetAllAdmins(ctx context.Context) ([]model.AdminUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AdminUser), args.Error(1)
}

func (m *MockAuthService) CreateAdmin(ctx context.Context, req model.CreateAdminRequest) (*model.AdminUser, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func newAuthHandler(service *MockAuthService) (*AuthHandler, *auth.SessionStore) {
	store := auth.NewSessionStore(time.Hour, zerolog.Nop())
	return NewAuthHandler(service, store, time.Hour, zerolog.Nop()), store
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success sets session cookie", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Register", mock.Anything, mock.AnythingOfType("model.RegisterRequest")).
			Return(&model.User{ID: "user-1", Username: "ahmed123"}, nil)
		handler, store := newAuthHandler(mockService)

		body := []byte(`{"username":"ahmed123","password":"password123"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)

		principal, ok := store.Resolve(cookie.Value)
		require.True(t, ok)
		assert.Equal(t, auth.KindUser, principal.Kind)
		assert.Equal(t, "user-1", principal.UserID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Register", mock.Anything, mock.AnythingOfType("model.RegisterRequest")).
			Return(nil, model.ErrUserExists)
		handler, _ := newAuthHandler(mockService)

		body := []byte(`{"username":"ahmed123","password":"password123"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Nil(t, sessionCookie(t, rec))
	})

	t.Run("short password fails validation", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler, _ := newAuthHandler(mockService)

		body := []byte(`{"username":"ahmed123","password":"short"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, model.LoginRequest{Username: "ahmed123", Password: "password123"}).
			Return(&model.User{ID: "user-1", Username: "ahmed123"}, nil)
		handler, _ := newAuthHandler(mockService)

		body := []byte(`{"username":"ahmed123","password":"password123"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, sessionCookie(t, rec))
	})

	t.Run("bad credentials", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, mock.AnythingOfType("model.LoginRequest")).
			Return(nil, model.ErrBadCredentials)
		handler, _ := newAuthHandler(mockService)

		body := []byte(`{"username":"ahmed123","password":"wrong-pass"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, sessionCookie(t, rec))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	mockService := new(MockAuthService)
	handler, store := newAuthHandler(mockService)

	token := store.Create(auth.Principal{Kind: auth.KindUser, UserID: "user-1"})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// The session is destroyed and the cookie cleared.
	_, ok := store.Resolve(token)
	assert.False(t, ok)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)

	// Logging out without a session still succeeds.
	rec = httptest.NewRecorder()
	handler.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Session(t *testing.T) {
	t.Run("customer session", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("GetUser", mock.Anything, "user-1").
			Return(&model.User{ID: "user-1", Username: "ahmed123"}, nil)
		handler, _ := newAuthHandler(mockService)

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/auth/session", nil), "user-1")
		rec := httptest.NewRecorder()

		handler.Session(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "user", got["kind"])
	})

	t.Run("admin session", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("GetAdmin", mock.Anything, 1).
			Return(&model.AdminUser{ID: 1, Username: "admin", Role: model.AdminRoleAdmin}, nil)
		handler, _ := newAuthHandler(mockService)

		req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
		rec := httptest.NewRecorder()

		handler.Session(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "admin", got["kind"])
	})

	t.Run("anonymous", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler, _ := newAuthHandler(mockService)

		rec := httptest.NewRecorder()
		handler.Session(rec, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	t.Run("success sets admin session", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("AdminLogin", mock.Anything, mock.AnythingOfType("model.LoginRequest")).
			Return(&model.AdminUser{ID: 7, Username: "admin"}, nil)
		handler, store := newAuthHandler(mockService)

		body := []byte(`{"username":"admin","password":"admin-pass123"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.AdminLogin(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		principal, ok := store.Resolve(cookie.Value)
		require.True(t, ok)
		assert.Equal(t, auth.KindAdmin, principal.Kind)
		assert.Equal(t, 7, principal.AdminID)
	})

	t.Run("bad credentials", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("AdminLogin", mock.Anything, mock.AnythingOfType("model.LoginRequest")).
			Return(nil, model.ErrBadCredentials)
		handler, _ := newAuthHandler(mockService)

		body := []byte(`{"username":"admin","password":"wrong"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.AdminLogin(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_AdminCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("CreateAdmin", mock.Anything, model.CreateAdminRequest{
			Username: "editor1",
			Password: "editor-pass1",
			Name:     "Editor One",
			Role:     "editor",
		}).Return(&model.AdminUser{ID: 2, Username: "editor1", Role: model.AdminRoleEditor}, nil)
		handler, _ := newAuthHandler(mockService)

		body := []byte(`{"username":"editor1","password":"editor-pass1","name":"Editor One","role":"editor"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/create", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.AdminCreate(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("unknown role fails validation", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler, _ := newAuthHandler(mockService)

		body := []byte(`{"username":"editor1","password":"editor-pass1","name":"Editor One","role":"superuser"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/create", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.AdminCreate(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateAdmin", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_ListUsers(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("GetAllUsers", mock.Anything).Return(nil, nil)
	handler, _ := newAuthHandler(mockService)

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))
	rec := httptest.NewRecorder()

	handler.ListUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
