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

// CompanyResponse represents a company in the API response
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyRequest is the body for company create and update
type CompanyRequest struct {
	Name string `json:"name"`
}

func newCompanyResponse(company *store.Company) CompanyResponse {
	return CompanyResponse{
		ID:        company.ID.String(),
		Name:      company.Name,
		CreatedAt: company.CreatedAt,
	}
}

// RegisterCompaniesEndpoints registers the company management endpoints
func RegisterCompaniesEndpoints(s *server.Server) {
	authMiddleware := middleware.NewTokenAuthenticator(s.Signer)

	companiesRouter := s.Router.PathPrefix("/companies").Subrouter()
	companiesRouter.Use(authMiddleware.Middleware)

	companiesRouter.HandleFunc("", handleListCompanies(s.CompaniesStore)).Methods("GET")
	companiesRouter.HandleFunc("", handleCreateCompany(s.CompaniesStore)).Methods("POST")
	companiesRouter.HandleFunc("/{company_id}", handleShowCompany(s.CompaniesStore)).Methods("GET")
	companiesRouter.HandleFunc("/{company_id}", handleUpdateCompany(s.CompaniesStore)).Methods("PUT")
	companiesRouter.HandleFunc("/{company_id}", handleDeleteCompany(s.CompaniesStore)).Methods("DELETE")
}

func handleListCompanies(companies store.CompaniesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, ok := requireAuthorized(w, r, rbac.ActionList, rbac.CompanyResource())
		if !ok {
			return
		}

		all, err := companies.ListCompanies()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list companies")
			return
		}

		response := make([]CompanyResponse, 0, len(all))
		for i := range all {
			response = append(response, newCompanyResponse(&all[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleCreateCompany(companies store.CompaniesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requireAuthorized(w, r, rbac.ActionCreate, rbac.CompanyResource())
		if !ok {
			return
		}

		var body CompanyRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
			respondWithError(w, http.StatusBadRequest, "A non-empty name is required")
			return
		}

		company, err := companies.CreateCompany(body.Name)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create company")
			return
		}

		audit.Log(audit.CompanyEvent{
			Login:     principal.Login,
			ClientIP:  clientIP(r),
			Operation: "create",
			CompanyID: company.ID.String(),
		})

		respondWithJSON(w, http.StatusCreated, newCompanyResponse(company))
	}
}

func handleShowCompany(companies store.CompaniesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyIDVar(w, r)
		if !ok {
			return
		}

		if _, ok := requireAuthorized(w, r, rbac.ActionRead, rbac.CompanyResource()); !ok {
			return
		}

		company, err := companies.FetchCompany(companyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Company not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch company")
			return
		}

		respondWithJSON(w, http.StatusOK, newCompanyResponse(company))
	}
}

func handleUpdateCompany(companies store.CompaniesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyIDVar(w, r)
		if !ok {
			return
		}

		principal, ok := requireAuthorized(w, r, rbac.ActionUpdate, rbac.CompanyResource())
		if !ok {
			return
		}

		var body CompanyRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
			respondWithError(w, http.StatusBadRequest, "A non-empty name is required")
			return
		}

		if err := companies.UpdateCompany(companyID, body.Name); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Company not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to update company")
			return
		}

		audit.Log(audit.CompanyEvent{
			Login:     principal.Login,
			ClientIP:  clientIP(r),
			Operation: "update",
			CompanyID: companyID.String(),
		})

		company, err := companies.FetchCompany(companyID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch company")
			return
		}
		respondWithJSON(w, http.StatusOK, newCompanyResponse(company))
	}
}

func handleDeleteCompany(companies store.CompaniesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyIDVar(w, r)
		if !ok {
			return
		}

		principal, ok := requireAuthorized(w, r, rbac.ActionDelete, rbac.CompanyResource())
		if !ok {
			return
		}

		if err := companies.DeleteCompany(companyID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Company not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete company")
			return
		}

		audit.Log(audit.CompanyEvent{
			Login:     principal.Login,
			ClientIP:  clientIP(r),
			Operation: "delete",
			CompanyID: companyID.String(),
		})

		w.WriteHeader(http.StatusNoContent)
	}
}

// companyIDVar parses the company_id path variable, writing a 400 on
// malformed input.
func companyIDVar(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	companyID, err := uuid.Parse(mux.Vars(r)["company_id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Malformed company id")
		return uuid.Nil, false
	}
	return companyID, true
}
