package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/guard"
	"github.com/odyssey-erp/hris-access/internal/permission"
	"github.com/odyssey-erp/hris-access/internal/platform/httpx"
)

// LoginObserver is notified of every login attempt.
type LoginObserver interface {
	ObserveLogin(outcome string)
}

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	tokens    *TokenIssuer
	validator *validator.Validate
	observer  LoginObserver
	gate      guard.Middleware
	limiter   func(http.Handler) http.Handler
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, tokens *TokenIssuer) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		logger:    logger,
		service:   service,
		tokens:    tokens,
		validator: validator.New(),
		gate: guard.Middleware{
			Guard: &guard.Guard{Logger: logger},
			Deny:  denyJSON,
		},
	}
}

// WithObserver reports login outcomes and guard decisions to o.
func (h *Handler) WithObserver(o interface {
	LoginObserver
	guard.Observer
}) *Handler {
	h.observer = o
	h.gate.Guard.Observer = o
	return h
}

// WithLoginRateLimit caps login attempts per client IP.
func (h *Handler) WithLoginRateLimit(requests int, window time.Duration) *Handler {
	if requests <= 0 {
		h.limiter = nil
		return h
	}
	h.limiter = httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			httpx.Fail(w, http.StatusTooManyRequests, "Too many login attempts, please try again later")
		}),
	)
	return h
}

// MountRoutes registers auth routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		if h.limiter != nil {
			r.Use(h.limiter)
		}
		r.Post("/auth/login", h.handleLogin)
	})
	r.Post("/auth/refresh-token", h.handleRefresh)

	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(h.tokens.JWTAuth()))
		r.Use(h.requireAccess)
		r.Post("/auth/change-password", h.handleChangePassword)
		r.Get("/auth/me", h.handleMe)
		r.With(h.gate.RequireAny(permission.RoleRead, permission.PermissionRead)).Get("/system/roles", h.handleRoles)
	})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,nefield=CurrentPassword"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.observeLogin("invalid")
		httpx.Fail(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	sess, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.observeLogin(loginOutcome(err))
		h.logger.Info("login rejected", slog.String("username", req.Username), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.observeLogin("success")
	h.logger.Info("login", slog.String("user_id", sess.User.ID), slog.String("username", sess.User.Username))
	httpx.OK(w, "Login successful", sess)
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || h.validator.Struct(req) != nil {
		httpx.Fail(w, http.StatusBadRequest, "Refresh token is required")
		return
	}
	token, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "Token refreshed", map[string]string{"token": token})
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "New password must be at least 6 characters and differ from the current one")
		return
	}
	user := principalFrom(r.Context())
	if err := h.service.ChangePassword(r.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("password changed", slog.String("user_id", user.ID))
	httpx.OK(w, "Password changed successfully", nil)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, "", principalFrom(r.Context()))
}

func (h *Handler) handleRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.Roles(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "", roles)
}

// requireAccess accepts verified access tokens only and binds the token's
// account to the request for guard checks.
func (h *Handler) requireAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			httpx.Fail(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if typ, _ := claims["type"].(string); typ != "access" {
			httpx.Fail(w, http.StatusUnauthorized, "Invalid token type")
			return
		}
		userID, _ := claims["user_id"].(string)
		user, err := h.service.Profile(r.Context(), userID)
		if err != nil {
			httpx.Fail(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), principalKey{}, &user)
		ctx = guard.WithSession(ctx, principal{user: &user})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) observeLogin(outcome string) {
	if h.observer != nil {
		h.observer.ObserveLogin(outcome)
	}
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, httpx.ErrUnauthorized):
		return "invalid_credentials"
	case errors.Is(err, httpx.ErrForbidden):
		return "disabled"
	default:
		return "error"
	}
}

type principalKey struct{}

// principal is the per-request session the guard evaluates.
type principal struct{ user *access.User }

func (p principal) IsAuthenticated(context.Context) bool { return p.user != nil }

func (p principal) CurrentUser() *access.User { return p.user }

func principalFrom(ctx context.Context) *access.User {
	u, _ := ctx.Value(principalKey{}).(*access.User)
	return u
}

func denyJSON(w http.ResponseWriter, _ *http.Request, d guard.Decision) {
	if d.Reason == guard.ReasonUnauthenticated {
		httpx.Fail(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	httpx.Fail(w, http.StatusForbidden, "Insufficient permissions")
}
