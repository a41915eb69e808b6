package middleware

import (
	"context"
	"net/http"

	jwtinfra "github.com/go-auth-api/internal/infrastructure/jwt"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// SessionCookieName is the fixed name of the session cookie.
const SessionCookieName = "token"

// Auth returns middleware that validates the session cookie and injects the
// authenticated account id into the request context. The session is stateless:
// signature and expiry are the only checks.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized - no token provided")
				return
			}
			claims, err := provider.Verify(cookie.Value)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized - invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), accountIDKey, claims.AccountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountIDFromContext extracts the authenticated account id from the request context.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok
}
