package store

import (
	"time"

	"github.com/google/uuid"

	"tenantgate/pkg/rbac"
)

// Profile is the caller-supplied part of a user. The role is never
// part of it: company-user creation always assigns CompanyOwner.
type Profile struct {
	Name  string
	Email string
}

// User represents a principal row. CompanyID is uuid.Nil for
// administrators.
type User struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Email     string
	Role      rbac.Role
	CreatedAt time.Time
}

// UsersStore abstracts user storage operations. All company-user
// operations are scoped by company id at the SQL level.
type UsersStore interface {
	// CreateCompanyUser creates a CompanyOwner user inside a company and
	// returns the user plus its one-time API key.
	// Returns ErrNotFound if the company doesn't exist and
	// ErrDuplicateEmail if the email is already taken anywhere.
	CreateCompanyUser(companyID uuid.UUID, profile Profile) (*User, string, error)

	// UpdateCompanyUser updates a user's profile.
	// Returns ErrNotFound if userID is not owned by companyID and
	// ErrDuplicateEmail if the new email collides with another user.
	UpdateCompanyUser(companyID, userID uuid.UUID, profile Profile) error

	// DeleteCompanyUser removes a user. Deletion is not idempotent:
	// a second call returns ErrNotFound.
	DeleteCompanyUser(companyID, userID uuid.UUID) error

	// ListCompanyUsers returns a company's CompanyOwner users in
	// creation order, empty if none.
	// Returns ErrNotFound for an unknown company.
	ListCompanyUsers(companyID uuid.UUID) ([]User, error)

	// FetchCompanyUser retrieves a single user under the same scoping
	// rule as UpdateCompanyUser.
	FetchCompanyUser(companyID, userID uuid.UUID) (*User, error)

	// FetchUserByEmail retrieves a user by email across all companies.
	FetchUserByEmail(email string) (*User, error)

	// CreateAdministrator provisions an Administrator with no company
	// affiliation and returns the user plus its one-time API key.
	CreateAdministrator(profile Profile) (*User, string, error)
}
