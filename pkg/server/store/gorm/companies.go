package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tenantgate/pkg/server/store"
)

// Ensure CompaniesStore implements store.CompaniesStore
var _ store.CompaniesStore = (*CompaniesStore)(nil)

// CompaniesStore implements store.CompaniesStore using GORM
type CompaniesStore struct {
	db *gorm.DB
}

// NewCompaniesStore creates a new CompaniesStore
func NewCompaniesStore(db *gorm.DB) *CompaniesStore {
	return &CompaniesStore{db: db}
}

type companyRow struct {
	CompanyID uuid.UUID
	Name      string
	CreatedAt time.Time
}

func (r companyRow) toCompany() store.Company {
	return store.Company{ID: r.CompanyID, Name: r.Name, CreatedAt: r.CreatedAt}
}

// CreateCompany creates a company and returns it
func (s *CompaniesStore) CreateCompany(name string) (*store.Company, error) {
	var row companyRow
	tx := s.db.Raw(`
		INSERT INTO companies (company_id, name)
		VALUES (?, ?)
		RETURNING company_id, name, created_at
	`, uuid.New(), name).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}

	company := row.toCompany()
	return &company, nil
}

// FetchCompany retrieves a company by id
func (s *CompaniesStore) FetchCompany(id uuid.UUID) (*store.Company, error) {
	var row companyRow
	tx := s.db.Raw(`
		SELECT company_id, name, created_at
		FROM companies WHERE company_id = ?
	`, id).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}

	company := row.toCompany()
	return &company, nil
}

// FetchCompanyByName retrieves the oldest company with the given name
func (s *CompaniesStore) FetchCompanyByName(name string) (*store.Company, error) {
	var row companyRow
	tx := s.db.Raw(`
		SELECT company_id, name, created_at
		FROM companies WHERE name = ?
		ORDER BY created_at, company_id
		LIMIT 1
	`, name).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}

	company := row.toCompany()
	return &company, nil
}

// ListCompanies returns all companies in creation order
func (s *CompaniesStore) ListCompanies() ([]store.Company, error) {
	var rows []companyRow
	tx := s.db.Raw(`
		SELECT company_id, name, created_at
		FROM companies
		ORDER BY created_at, company_id
	`).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	companies := make([]store.Company, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, row.toCompany())
	}
	return companies, nil
}

// UpdateCompany renames a company
func (s *CompaniesStore) UpdateCompany(id uuid.UUID, name string) error {
	tx := s.db.Exec(`UPDATE companies SET name = ? WHERE company_id = ?`, name, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteCompany removes a company; its users go with it via the
// foreign-key cascade.
func (s *CompaniesStore) DeleteCompany(id uuid.UUID) error {
	tx := s.db.Exec(`DELETE FROM companies WHERE company_id = ?`, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *CompaniesStore) companyExists(id uuid.UUID) (bool, error) {
	var exists bool
	tx := s.db.Raw(`SELECT EXISTS(SELECT 1 FROM companies WHERE company_id = ?)`, id).Scan(&exists)
	return exists, tx.Error
}
