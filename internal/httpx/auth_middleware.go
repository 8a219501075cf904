package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"bookcatalog/internal/auth"
)

// RequireAuth resolves the bearer token into a user identity or rejects the
// request with 401. Handlers behind it can rely on UserIDFrom.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED",
					"Authentication credentials were not provided.", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token.", nil)
				return
			}
			userID, err := strconv.ParseInt(claims.Sub, 10, 64)
			if err != nil {
				JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token.", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), userID)))
		})
	}
}
