package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"tenantgate/pkg/audit"
	"tenantgate/pkg/rbac"
	"tenantgate/pkg/server"
	"tenantgate/pkg/server/middleware"
	"tenantgate/pkg/server/store"
)

// UserResponse represents a company user in the API response
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatedUserResponse is the create response. It is the only place the
// API key ever appears.
type CreatedUserResponse struct {
	UserResponse
	APIKey string `json:"api_key"`
}

// UserRequest is the body for user create and update
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResponse(user *store.User) UserResponse {
	response := UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
	if user.CompanyID != uuid.Nil {
		response.CompanyID = user.CompanyID.String()
	}
	return response
}

// RegisterUsersEndpoints registers the nested company user endpoints
func RegisterUsersEndpoints(s *server.Server) {
	authMiddleware := middleware.NewTokenAuthenticator(s.Signer)

	usersRouter := s.Router.PathPrefix("/companies/{company_id}/users").Subrouter()
	usersRouter.Use(authMiddleware.Middleware)

	usersRouter.HandleFunc("", handleListUsers(s.UsersStore)).Methods("GET")
	usersRouter.HandleFunc("", handleCreateUser(s.UsersStore)).Methods("POST")
	usersRouter.HandleFunc("/{user_id}", handleShowUser(s.UsersStore)).Methods("GET")
	usersRouter.HandleFunc("/{user_id}", handleUpdateUser(s.UsersStore)).Methods("PUT")
	usersRouter.HandleFunc("/{user_id}", handleDeleteUser(s.UsersStore)).Methods("DELETE")
}

func handleListUsers(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyIDVar(w, r)
		if !ok {
			return
		}

		if _, ok := requireAuthorized(w, r, rbac.ActionList, rbac.CompanyUserResource(companyID)); !ok {
			return
		}

		all, err := users.ListCompanyUsers(companyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Company not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to list users")
			return
		}

		response := make([]UserResponse, 0, len(all))
		for i := range all {
			response = append(response, newUserResponse(&all[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleCreateUser(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyIDVar(w, r)
		if !ok {
			return
		}

		principal, ok := requireAuthorized(w, r, rbac.ActionCreate, rbac.CompanyUserResource(companyID))
		if !ok {
			return
		}

		var body UserRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" || body.Email == "" {
			respondWithError(w, http.StatusBadRequest, "Both name and email are required")
			return
		}

		user, apiKey, err := users.CreateCompanyUser(companyID, store.Profile{
			Name:  body.Name,
			Email: body.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				respondWithError(w, http.StatusNotFound, "Company not found")
			case errors.Is(err, store.ErrDuplicateEmail):
				respondWithError(w, http.StatusConflict, "Email is already taken")
			default:
				respondWithError(w, http.StatusInternalServerError, "Failed to create user")
			}
			return
		}

		audit.Log(audit.UserEvent{
			Login:     principal.Login,
			ClientIP:  clientIP(r),
			Operation: "create",
			CompanyID: companyID.String(),
			UserID:    user.ID.String(),
		})

		respondWithJSON(w, http.StatusCreated, CreatedUserResponse{
			UserResponse: newUserResponse(user),
			APIKey:       apiKey,
		})
	}
}

func handleShowUser(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, userID, ok := userVars(w, r)
		if !ok {
			return
		}

		if _, ok := requireAuthorized(w, r, rbac.ActionRead, rbac.CompanyUserResource(companyID)); !ok {
			return
		}

		user, err := users.FetchCompanyUser(companyID, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "User not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch user")
			return
		}

		respondWithJSON(w, http.StatusOK, newUserResponse(user))
	}
}

func handleUpdateUser(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, userID, ok := userVars(w, r)
		if !ok {
			return
		}

		principal, ok := requireAuthorized(w, r, rbac.ActionUpdate, rbac.CompanyUserResource(companyID))
		if !ok {
			return
		}

		var body UserRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" || body.Email == "" {
			respondWithError(w, http.StatusBadRequest, "Both name and email are required")
			return
		}

		err := users.UpdateCompanyUser(companyID, userID, store.Profile{
			Name:  body.Name,
			Email: body.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				respondWithError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, store.ErrDuplicateEmail):
				respondWithError(w, http.StatusConflict, "Email is already taken")
			default:
				respondWithError(w, http.StatusInternalServerError, "Failed to update user")
			}
			return
		}

		audit.Log(audit.UserEvent{
			Login:     principal.Login,
			ClientIP:  clientIP(r),
			Operation: "update",
			CompanyID: companyID.String(),
			UserID:    userID.String(),
		})

		user, err := users.FetchCompanyUser(companyID, userID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch user")
			return
		}
		respondWithJSON(w, http.StatusOK, newUserResponse(user))
	}
}

func handleDeleteUser(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, userID, ok := userVars(w, r)
		if !ok {
			return
		}

		principal, ok := requireAuthorized(w, r, rbac.ActionDelete, rbac.CompanyUserResource(companyID))
		if !ok {
			return
		}

		if err := users.DeleteCompanyUser(companyID, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "User not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete user")
			return
		}

		audit.Log(audit.UserEvent{
			Login:     principal.Login,
			ClientIP:  clientIP(r),
			Operation: "delete",
			CompanyID: companyID.String(),
			UserID:    userID.String(),
		})

		w.WriteHeader(http.StatusNoContent)
	}
}

func userVars(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	companyID, ok := companyIDVar(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	userID, err := uuid.Parse(mux.Vars(r)["user_id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Malformed user id")
		return uuid.Nil, uuid.Nil, false
	}
	return companyID, userID, true
}
