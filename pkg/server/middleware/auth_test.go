package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantgate/pkg/rbac"
	"tenantgate/pkg/token"
)

func newSigner(t *testing.T) *token.Signer {
	t.Helper()
	signer, err := token.NewSigner([]byte("0123456789abcdef0123456789abcdef"), time.Minute)
	require.NoError(t, err)
	return signer
}

func TestMiddleware(t *testing.T) {
	signer := newSigner(t)
	authenticator := NewTokenAuthenticator(signer)

	var gotPrincipal rbac.Principal
	var reached bool
	handler := authenticator.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrincipal, _ = rbac.FromContext(r.Context())
		reached = true
	}))

	admin, err := rbac.NewPrincipal(uuid.New(), "root@tenantgate.test", rbac.RoleAdministrator, uuid.Nil)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		reached = false
		raw, err := signer.Issue(admin, time.Now())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
		assert.Equal(t, admin.ID, gotPrincipal.ID)
		assert.Equal(t, rbac.RoleAdministrator, gotPrincipal.Role)
	})

	t.Run("missing header", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("expired token", func(t *testing.T) {
		reached = false
		raw, err := signer.Issue(admin, time.Now().Add(-time.Hour))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("garbage token", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})
}
