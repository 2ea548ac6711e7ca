package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"corus-backend/internal/auth"
	"corus-backend/internal/httpx"
	"corus-backend/internal/middleware"
	"corus-backend/internal/models"
	"corus-backend/internal/transport"
	"corus-backend/internal/validation"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SessionUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionResponse carries the access token in the body so the SPA can send
// it as a bearer header; the cookies cover same-site requests.
type SessionResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

type Handler struct {
	users        UserRepository
	manager      *auth.Manager
	val          *validation.Validator
	log          *slog.Logger
	cookieSecure bool
}

func NewHandler(users UserRepository, manager *auth.Manager, val *validation.Validator, log *slog.Logger, cookieSecure bool) *Handler {
	return &Handler{
		users:        users,
		manager:      manager,
		val:          val,
		log:          log,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := h.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Warn("admin login: unknown user", slog.String("username", req.Username))
			transport.WriteError(w, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		log.Error("admin login: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		log.Warn("admin login: invalid password", slog.String("username", req.Username))
		transport.WriteError(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	h.issueSession(w, log, user.Role, user.Username, "Login successful")
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	cookie, err := r.Cookie(auth.RefreshCookie)
	if err != nil || cookie.Value == "" {
		transport.WriteError(w, http.StatusUnauthorized, "Missing refresh token", nil)
		return
	}

	claims, err := h.manager.Parse(cookie.Value)
	if err != nil || claims.Role != models.UserRoleAdmin {
		log.Warn("admin refresh: invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "Invalid refresh token", nil)
		return
	}

	h.issueSession(w, log, claims.Role, claims.Username, "Session refreshed")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	h.clearCookies(w)
	log.Info("admin logout: ok")
	transport.WriteEnvelope(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	transport.WriteEnvelope(w, http.StatusOK, "Session retrieved successfully", SessionUser{
		Username: claims.Username,
		Role:     claims.Role,
	})
}

func (h *Handler) issueSession(w http.ResponseWriter, log *slog.Logger, role, username, message string) {
	accessToken, err := h.manager.NewAccessToken(role, username)
	if err != nil {
		log.Error("admin auth: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	refreshToken, err := h.manager.NewRefreshToken(role, username)
	if err != nil {
		log.Error("admin auth: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	h.setCookie(w, auth.AccessCookie, accessToken, h.manager.AccessTTL)
	h.setCookie(w, auth.RefreshCookie, refreshToken, h.manager.RefreshTTL)

	log.Info("admin auth: session issued", slog.String("username", username))
	transport.WriteEnvelope(w, http.StatusOK, message, SessionResponse{
		Token: accessToken,
		User:  SessionUser{Username: username, Role: role},
	})
}

func (h *Handler) setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearCookies(w http.ResponseWriter) {
	for _, name := range []string{auth.AccessCookie, auth.RefreshCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.cookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
