package endpoints

import (
	"net/http"

	"github.com/google/uuid"

	"tenantgate/pkg/rbac"
	"tenantgate/pkg/server"
	"tenantgate/pkg/server/middleware"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	ID      string `json:"id"`
	Login   string `json:"login"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	authMiddleware := middleware.NewTokenAuthenticator(s.Signer)

	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(authMiddleware.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami()).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := rbac.FromContext(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		response := WhoamiResponse{
			ID:    principal.ID.String(),
			Login: principal.Login,
			Role:  principal.Role.String(),
		}
		if principal.Company != uuid.Nil {
			response.Company = principal.Company.String()
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}
