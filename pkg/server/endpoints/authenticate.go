package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tenantgate/pkg/audit"
	"tenantgate/pkg/rbac"
	"tenantgate/pkg/server"
	"tenantgate/pkg/server/store"
	"tenantgate/pkg/token"
)

// AuthenticateRequest is the body for the authenticate endpoint
type AuthenticateRequest struct {
	Email  string `json:"email"`
	APIKey string `json:"api_key"`
}

// AuthenticateResponse carries the issued access token
type AuthenticateResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// RegisterAuthenticateEndpoint registers the public authenticate
// endpoint. It is the only endpoint that accepts API keys.
func RegisterAuthenticateEndpoint(s *server.Server) {
	s.Router.HandleFunc("/authenticate",
		handleAuthenticate(s.AuthenticateStore, s.Signer)).Methods("POST")
}

func handleAuthenticate(authenticate store.AuthenticateStore, signer *token.Signer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body AuthenticateRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.APIKey == "" {
			respondWithError(w, http.StatusBadRequest, "Both email and api_key are required")
			return
		}

		user, err := authenticate.VerifyAPIKey(body.Email, body.APIKey)
		if err != nil {
			audit.Log(audit.AuthenticateEvent{
				Login:        body.Email,
				ClientIP:     clientIP(r),
				Success:      false,
				ErrorMessage: "invalid credentials",
			})

			if errors.Is(err, store.ErrInvalidCredentials) {
				respondWithError(w, http.StatusUnauthorized, "Invalid email or API key")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Authentication failed")
			return
		}

		principal, err := rbac.NewPrincipal(user.ID, user.Email, user.Role, user.CompanyID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Authentication failed")
			return
		}

		raw, err := signer.Issue(principal, time.Now())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Authentication failed")
			return
		}

		audit.Log(audit.AuthenticateEvent{
			Login:    user.Email,
			ClientIP: clientIP(r),
			Success:  true,
		})

		respondWithJSON(w, http.StatusOK, AuthenticateResponse{
			Token:     raw,
			ExpiresIn: int64(signer.TTL().Seconds()),
		})
	}
}
