package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantgate/pkg/rbac"
	"tenantgate/pkg/server/store"
	"tenantgate/pkg/token"
)

func newTestSigner(t *testing.T) *token.Signer {
	t.Helper()
	signer, err := token.NewSigner([]byte("0123456789abcdef0123456789abcdef"), 8*time.Minute)
	require.NoError(t, err)
	return signer
}

func TestHandleAuthenticate(t *testing.T) {
	signer := newTestSigner(t)

	t.Run("valid credentials yield a usable token", func(t *testing.T) {
		authenticate := NewMockAuthenticateStore()
		authenticate.On("VerifyAPIKey", "jane@acme.test", "the-key").Return(&store.User{
			ID: ownerID, CompanyID: companyID, Name: "Jane Owner",
			Email: "jane@acme.test", Role: rbac.RoleCompanyOwner,
		}, nil)

		req := newRequest(t, http.MethodPost, "/authenticate",
			AuthenticateRequest{Email: "jane@acme.test", APIKey: "the-key"}, nil, nil)
		rec := httptest.NewRecorder()

		handleAuthenticate(authenticate, signer)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var response AuthenticateResponse
		decodeJSON(t, rec, &response)
		assert.Equal(t, int64(480), response.ExpiresIn)

		principal, err := signer.Parse(response.Token)
		require.NoError(t, err)
		assert.Equal(t, ownerID, principal.ID)
		assert.Equal(t, rbac.RoleCompanyOwner, principal.Role)
		assert.Equal(t, companyID, principal.Company)
	})

	t.Run("invalid credentials are a 401", func(t *testing.T) {
		authenticate := NewMockAuthenticateStore()
		authenticate.On("VerifyAPIKey", "jane@acme.test", "wrong").
			Return(nil, store.ErrInvalidCredentials)

		req := newRequest(t, http.MethodPost, "/authenticate",
			AuthenticateRequest{Email: "jane@acme.test", APIKey: "wrong"}, nil, nil)
		rec := httptest.NewRecorder()

		handleAuthenticate(authenticate, signer)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email gets the same 401", func(t *testing.T) {
		authenticate := NewMockAuthenticateStore()
		authenticate.On("VerifyAPIKey", "ghost@acme.test", "any").
			Return(nil, store.ErrInvalidCredentials)

		req := newRequest(t, http.MethodPost, "/authenticate",
			AuthenticateRequest{Email: "ghost@acme.test", APIKey: "any"}, nil, nil)
		rec := httptest.NewRecorder()

		handleAuthenticate(authenticate, signer)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email or API key")
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		authenticate := NewMockAuthenticateStore()

		req := newRequest(t, http.MethodPost, "/authenticate",
			AuthenticateRequest{Email: "jane@acme.test"}, nil, nil)
		rec := httptest.NewRecorder()

		handleAuthenticate(authenticate, signer)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		authenticate.AssertNotCalled(t, "VerifyAPIKey")
	})
}
