package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rcnapps/ordinand/internal/common"
	"github.com/rcnapps/ordinand/internal/logging"
	"github.com/rcnapps/ordinand/internal/server/admins"
	"github.com/rcnapps/ordinand/internal/server/registrations"
)

// AdminAuth is the slice of the admin service the handler needs.
type AdminAuth interface {
	Login(ctx context.Context, username string, password []byte) (*admins.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*admins.TokenPair, error)
	VerifyAccessToken(token string) (string, error)
}

// RegistrationAdmin is the registration service surface used by admins:
// listing and recording the payment state reported by the out-of-band
// payment collaborator.
type RegistrationAdmin interface {
	List(ctx context.Context) ([]*registrations.Summary, error)
	RecordPayment(ctx context.Context, id string, status string) error
}

// AdminHandler serves the JWT-protected admin endpoints.
type AdminHandler struct {
	auth    AdminAuth
	service RegistrationAdmin
	logger  logging.Logger
}

// NewAdminHandler constructs the admin handler.
func NewAdminHandler(auth AdminAuth, service RegistrationAdmin, logger logging.Logger) *AdminHandler {
	return &AdminHandler{auth: auth, service: service, logger: logger.With("module", "admin_handler")}
}

// Register mounts the admin routes.
func (h *AdminHandler) Register(r chi.Router) {
	r.Post("/api/admin/login", h.HandleLogin)
	r.Post("/api/admin/refresh", h.HandleRefresh)
	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Get("/api/admin/registrations", h.HandleListRegistrations)
		r.Patch("/api/admin/registrations/{id}/payment", h.HandleRecordPayment)
	})
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// HandleLogin verifies admin credentials and issues a token pair.
func (h *AdminHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserName string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	pair, err := h.auth.Login(r.Context(), req.UserName, []byte(req.Password))
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeNotice(w, http.StatusUnauthorized, destructive("Login failed", "Invalid username or password."))
			return
		}
		h.logger.Error(r.Context(), "admin login failed", "error", err)
		writeNotice(w, http.StatusInternalServerError, destructive("Login failed", "Please try again."))
		return
	}

	writeJSON(w, http.StatusOK, &tokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// HandleRefresh rotates a refresh token.
func (h *AdminHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	pair, err := h.auth.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrRefreshTokenExpired) {
			writeNotice(w, http.StatusUnauthorized, destructive("Session expired", "Please log in again."))
			return
		}
		h.logger.Error(r.Context(), "token refresh failed", "error", err)
		writeNotice(w, http.StatusInternalServerError, destructive("Something went wrong", "Please try again."))
		return
	}

	writeJSON(w, http.StatusOK, &tokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// HandleListRegistrations returns all registrations, newest first.
func (h *AdminHandler) HandleListRegistrations(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "listing registrations failed", "error", err)
		writeNotice(w, http.StatusInternalServerError, destructive("Something went wrong", "Please try again."))
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleRecordPayment stores a reported payment status for one registration.
func (h *AdminHandler) HandleRecordPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Status == "" {
		writeNotice(w, http.StatusBadRequest, destructive("Bad request", "A payment status is required."))
		return
	}

	if err := h.service.RecordPayment(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeNotice(w, http.StatusNotFound, destructive("Not found", "No such registration."))
			return
		}
		h.logger.Error(r.Context(), "recording payment failed", "id", id, "error", err)
		writeNotice(w, http.StatusInternalServerError, destructive("Something went wrong", "Please try again."))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
