package httpx

import (
	"net/http"
	"strings"

	"bookcatalog/internal/platform/crypto"
)

// RequireRole accepts only requests bearing a valid HS256 token signed with
// secret whose role claim equals role.
func RequireRole(secret, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := crypto.ParseToken(secret, token)
			if err != nil {
				JSONError(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if claims.Role != role {
				JSONError(w, r, http.StatusForbidden, "Forbidden resource")
				return
			}

			ctx := ContextWithSubject(r.Context(), claims.Sub, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
