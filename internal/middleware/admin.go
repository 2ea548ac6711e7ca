package middleware

import (
	"context"
	"net/http"
	"strings"

	"corus-backend/internal/auth"
	"corus-backend/internal/models"
	"corus-backend/internal/transport"
)

type claimsKey struct{}

// AdminAuth protects /admin routes. It accepts either the access-token
// cookie set by the login endpoint or a bearer token in the Authorization
// header (the shape API clients send). Verified claims are stored on the
// request context for handlers that need the session identity.
func AdminAuth(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "Admin auth not configured", nil)
				return
			}

			if token := bearerToken(r); token != "" {
				if claims, err := manager.Parse(token); err == nil && claims.Role == models.UserRoleAdmin {
					next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
					return
				}
			}

			if cookie, err := r.Cookie(auth.AccessCookie); err == nil && cookie.Value != "" {
				if claims, err := manager.Parse(cookie.Value); err == nil && claims.Role == models.UserRoleAdmin {
					next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
					return
				}
			}

			transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		})
	}
}

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) *auth.Claims {
	if v := ctx.Value(claimsKey{}); v != nil {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
