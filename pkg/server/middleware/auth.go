package middleware

import (
	"net/http"
	"strings"

	"tenantgate/pkg/rbac"
	"tenantgate/pkg/token"
)

const bearerPrefix = "Bearer "

// TokenAuthenticator is middleware that validates access tokens and
// places the resulting principal on the request context.
type TokenAuthenticator struct {
	Signer *token.Signer
}

// NewTokenAuthenticator creates a new token authenticator middleware
func NewTokenAuthenticator(signer *token.Signer) *TokenAuthenticator {
	return &TokenAuthenticator{Signer: signer}
}

// Middleware returns an HTTP middleware that validates access tokens
func (a *TokenAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Authorization missing"))
			return
		}

		raw, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || raw == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Malformed authorization header"))
			return
		}

		principal, err := a.Signer.Parse(raw)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid or expired token"))
			return
		}

		ctx := rbac.NewContext(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
