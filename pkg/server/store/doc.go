// Package store provides storage abstractions for the tenantgate server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database
// implementation. This enables easier testing with mocks and potential
// support for different storage backends.
//
// # Available Stores
//
//   - CompaniesStore: company CRUD
//   - UsersStore: company-scoped user CRUD and administrator provisioning
//   - AuthenticateStore: API key verification
//   - HealthStore: database liveness
//
// Store operations run after a successful authorization check; the
// user store still scopes every query by company id so a cross-company
// access attempt is rejected at the storage boundary even if a caller
// skipped the gate.
//
// # Usage
//
//	users := gorm.NewUsersStore(db)
//	_, _, err := users.CreateCompanyUser(companyID, store.Profile{Name: "Jane", Email: "jane@acme.test"})
//	if err != nil {
//	    if errors.Is(err, store.ErrDuplicateEmail) {
//	        // Handle conflict
//	    }
//	}
package store
