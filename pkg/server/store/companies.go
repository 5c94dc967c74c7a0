package store

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a tenant
type Company struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// CompaniesStore abstracts company storage operations
type CompaniesStore interface {
	// CreateCompany creates a company and returns it
	CreateCompany(name string) (*Company, error)

	// FetchCompany retrieves a company by id.
	// Returns ErrNotFound if it doesn't exist.
	FetchCompany(id uuid.UUID) (*Company, error)

	// FetchCompanyByName retrieves the oldest company with the given
	// name. Returns ErrNotFound if none exists.
	FetchCompanyByName(name string) (*Company, error)

	// ListCompanies returns all companies in creation order
	ListCompanies() ([]Company, error)

	// UpdateCompany renames a company.
	// Returns ErrNotFound if it doesn't exist.
	UpdateCompany(id uuid.UUID, name string) error

	// DeleteCompany removes a company and its users.
	// Returns ErrNotFound if it doesn't exist.
	DeleteCompany(id uuid.UUID) error
}
