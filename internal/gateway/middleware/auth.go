package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wxpress/salesboard/internal/modules/auth/infrastructure/jwt"
)

type contextKey string

const (
	ContextKeyStaffID   contextKey = "staff_id"
	ContextKeyStaffName contextKey = "staff_name"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// RequireAuth enforces a valid staff session on mutating and admin routes.
// The token comes from the Authorization header, or from the token query
// parameter for clients that cannot set headers (websocket upgrades).
// On success the staff identity is injected into the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := ""
		authHeader := r.Header.Get("Authorization")

		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			tokenStr = r.URL.Query().Get("token")
		}

		if tokenStr == "" {
			http.Error(w, `{"error": "missing or invalid authorization"}`, http.StatusUnauthorized)
			return
		}

		claims, err := jwt.ValidateToken(tokenStr, m.jwtSecret)
		if err != nil {
			http.Error(w, `{"error": "invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyStaffID, claims.StaffID)
		ctx = context.WithValue(ctx, ContextKeyStaffName, claims.Name)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
