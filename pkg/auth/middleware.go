package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/velmoria/scriptstore/pkg/utils"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	RoleKey   ContextKey = "role"
)

// Authenticate validates the bearer token and stores the caller's id and role
// in the request context.
func Authenticate(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RoleResolver reports the caller's current role from the backing store.
// Tokens outlive role changes, so the claim alone cannot be trusted here.
type RoleResolver interface {
	Role(ctx context.Context, userID int) (string, error)
}

// RequireRole rejects callers whose current role is not in the allowed set.
// The role comes from the resolver (claims cache with database fallthrough),
// so a demotion takes effect immediately instead of at token expiry. The
// resolved role replaces the token claim in the request context. It assumes
// Authenticate already ran.
func RequireRole(resolver RoleResolver, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(UserIDKey).(int)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			role, err := resolver.Role(r.Context(), userID)
			if err != nil || !allowed[role] {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			ctx := context.WithValue(r.Context(), RoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
