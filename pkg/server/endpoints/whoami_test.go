package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleWhoami(t *testing.T) {
	t.Run("reports the owner's identity", func(t *testing.T) {
		principal := ownerPrincipal(t)
		req := newRequest(t, http.MethodGet, "/whoami", nil, &principal, nil)
		rec := httptest.NewRecorder()

		handleWhoami()(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var response WhoamiResponse
		decodeJSON(t, rec, &response)
		assert.Equal(t, ownerID.String(), response.ID)
		assert.Equal(t, "jane@acme.test", response.Login)
		assert.Equal(t, "company_owner", response.Role)
		assert.Equal(t, companyID.String(), response.Company)
	})

	t.Run("administrator has no company", func(t *testing.T) {
		principal := adminPrincipal(t)
		req := newRequest(t, http.MethodGet, "/whoami", nil, &principal, nil)
		rec := httptest.NewRecorder()

		handleWhoami()(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var response WhoamiResponse
		decodeJSON(t, rec, &response)
		assert.Equal(t, "administrator", response.Role)
		assert.Empty(t, response.Company)
	})

	t.Run("missing principal is a 401", func(t *testing.T) {
		req := newRequest(t, http.MethodGet, "/whoami", nil, nil, nil)
		rec := httptest.NewRecorder()

		handleWhoami()(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
