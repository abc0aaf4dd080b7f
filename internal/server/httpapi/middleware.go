package httpapi

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const adminIDKey contextKey = "admin_id"

// requireAdmin rejects requests without a valid Bearer access token and puts
// the admin id on the request context for downstream handlers.
func (h *AdminHandler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeNotice(w, http.StatusUnauthorized, destructive("Unauthorized", "An access token is required."))
			return
		}

		adminID, err := h.auth.VerifyAccessToken(token)
		if err != nil {
			writeNotice(w, http.StatusUnauthorized, destructive("Unauthorized", "The access token is invalid or expired."))
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminIDFromContext returns the authenticated admin id, if any.
func AdminIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminIDKey).(string)
	return id, ok
}
