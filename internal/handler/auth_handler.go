package handler

import (
	"net/http"
	"time"

	"gamecharge/internal/auth"
	"gamecharge/internal/model"
	"gamecharge/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles customer and admin authentication HTTP requests.
type AuthHandler struct {
	service  service.AuthService
	sessions *auth.SessionStore
	ttl      time.Duration
	logger   zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, sessions *auth.SessionStore, ttl time.Duration, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		ttl:      ttl,
		logger:   logger.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /api/auth/register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.setSessionCookie(w, auth.Principal{Kind: auth.KindUser, UserID: user.ID})
	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.setSessionCookie(w, auth.Principal{Kind: auth.KindUser, UserID: user.ID})
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout requests. Logging out an expired or
// missing session succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookie); err == nil {
		h.sessions.Destroy(cookie.Value)
	}
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Session handles GET /api/auth/session requests, returning the logged-in
// account.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "authentication required", h.logger)
		return
	}

	switch principal.Kind {
	case auth.KindAdmin:
		admin, err := h.service.GetAdmin(r.Context(), principal.AdminID)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"kind": "admin", "account": admin})
	default:
		user, err := h.service.GetUser(r.Context(), principal.UserID)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"kind": "user", "account": user})
	}
}

// AdminLogin handles POST /api/admin/login requests.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	admin, err := h.service.AdminLogin(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.setSessionCookie(w, auth.Principal{Kind: auth.KindAdmin, AdminID: admin.ID})
	writeJSON(w, http.StatusOK, admin)
}

// AdminProfile handles GET /api/admin/profile requests.
func (h *AuthHandler) AdminProfile(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFrom(r.Context())

	admin, err := h.service.GetAdmin(r.Context(), principal.AdminID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

// AdminList handles GET /api/admin/list requests.
func (h *AuthHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	admins, err := h.service.GetAllAdmins(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if admins == nil {
		admins = []model.AdminUser{}
	}
	writeJSON(w, http.StatusOK, admins)
}

// AdminCreate handles POST /api/admin/create requests.
func (h *AuthHandler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAdminRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	admin, err := h.service.CreateAdmin(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, admin)
}

// ListUsers handles GET /api/admin/users requests.
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, p auth.Principal) {
	token := h.sessions.Create(p)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
