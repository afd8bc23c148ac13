package middleware

import (
	"net/http"
	"strings"

	"bimsite/internal/httputil"
)

// TokenVerifier validates a bearer token extracted from a request.
type TokenVerifier interface {
	Verify(token string) error
}

// RequireAdmin guards the admin routes behind a bearer token check.
func RequireAdmin(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			if err := verifier.Verify(token); err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
