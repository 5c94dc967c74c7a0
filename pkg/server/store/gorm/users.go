package gorm

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tenantgate/pkg/model"
	"tenantgate/pkg/rbac"
	"tenantgate/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore and store.AuthenticateStore
var (
	_ store.UsersStore        = (*UsersStore)(nil)
	_ store.AuthenticateStore = (*UsersStore)(nil)
)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

type userRow struct {
	UserID    uuid.UUID
	CompanyID *uuid.UUID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

func (r userRow) toUser() (store.User, error) {
	role, err := rbac.RoleString(r.Role)
	if err != nil {
		return store.User{}, fmt.Errorf("user %s has unknown role: %w", r.UserID, err)
	}
	user := store.User{
		ID:        r.UserID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      role,
		CreatedAt: r.CreatedAt,
	}
	if r.CompanyID != nil {
		user.CompanyID = *r.CompanyID
	}
	return user, nil
}

// CreateCompanyUser creates a CompanyOwner user inside a company and
// returns the user plus its one-time API key. The role is assigned
// here and never taken from the caller.
func (s *UsersStore) CreateCompanyUser(companyID uuid.UUID, profile store.Profile) (*store.User, string, error) {
	exists, err := s.companyExists(companyID)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		return nil, "", store.ErrNotFound
	}

	apiKey, err := model.GenerateAPIKey()
	if err != nil {
		return nil, "", err
	}

	var row userRow
	tx := s.db.Raw(`
		INSERT INTO users (user_id, company_id, name, email, role, api_key_digest)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING user_id, company_id, name, email, role, created_at
	`, uuid.New(), companyID, profile.Name, profile.Email,
		rbac.RoleCompanyOwner.String(), apiKeyDigest(apiKey)).Scan(&row)
	if tx.Error != nil {
		return nil, "", translateError(tx.Error)
	}

	user, err := row.toUser()
	if err != nil {
		return nil, "", err
	}
	return &user, apiKey, nil
}

// UpdateCompanyUser updates a user's profile under company scoping
func (s *UsersStore) UpdateCompanyUser(companyID, userID uuid.UUID, profile store.Profile) error {
	tx := s.db.Exec(`
		UPDATE users SET name = ?, email = ?
		WHERE user_id = ? AND company_id = ?
	`, profile.Name, profile.Email, userID, companyID)
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteCompanyUser removes a user under company scoping. Not
// idempotent: a second delete reports ErrNotFound.
func (s *UsersStore) DeleteCompanyUser(companyID, userID uuid.UUID) error {
	tx := s.db.Exec(`
		DELETE FROM users
		WHERE user_id = ? AND company_id = ?
	`, userID, companyID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListCompanyUsers returns a company's CompanyOwner users in creation order
func (s *UsersStore) ListCompanyUsers(companyID uuid.UUID) ([]store.User, error) {
	exists, err := s.companyExists(companyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, store.ErrNotFound
	}

	var rows []userRow
	tx := s.db.Raw(`
		SELECT user_id, company_id, name, email, role, created_at
		FROM users
		WHERE company_id = ? AND role = ?
		ORDER BY created_at, user_id
	`, companyID, rbac.RoleCompanyOwner.String()).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	users := make([]store.User, 0, len(rows))
	for _, row := range rows {
		user, err := row.toUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// FetchCompanyUser retrieves a single user under company scoping
func (s *UsersStore) FetchCompanyUser(companyID, userID uuid.UUID) (*store.User, error) {
	var row userRow
	tx := s.db.Raw(`
		SELECT user_id, company_id, name, email, role, created_at
		FROM users
		WHERE user_id = ? AND company_id = ?
	`, userID, companyID).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}

	user, err := row.toUser()
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchUserByEmail retrieves a user by email across all companies
func (s *UsersStore) FetchUserByEmail(email string) (*store.User, error) {
	var record model.User
	if err := s.db.Where(&model.User{Email: email}).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	user, err := userRow{
		UserID:    record.UserID,
		CompanyID: record.CompanyID,
		Name:      record.Name,
		Email:     record.Email,
		Role:      record.Role,
		CreatedAt: record.CreatedAt,
	}.toUser()
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateAdministrator provisions an Administrator with no company
// affiliation and returns the user plus its one-time API key.
func (s *UsersStore) CreateAdministrator(profile store.Profile) (*store.User, string, error) {
	apiKey, err := model.GenerateAPIKey()
	if err != nil {
		return nil, "", err
	}

	var row userRow
	tx := s.db.Raw(`
		INSERT INTO users (user_id, company_id, name, email, role, api_key_digest)
		VALUES (?, NULL, ?, ?, ?, ?)
		RETURNING user_id, company_id, name, email, role, created_at
	`, uuid.New(), profile.Name, profile.Email,
		rbac.RoleAdministrator.String(), apiKeyDigest(apiKey)).Scan(&row)
	if tx.Error != nil {
		return nil, "", translateError(tx.Error)
	}

	user, err := row.toUser()
	if err != nil {
		return nil, "", err
	}
	return &user, apiKey, nil
}

// VerifyAPIKey checks an email/API-key pair and returns the user on success
func (s *UsersStore) VerifyAPIKey(email, apiKey string) (*store.User, error) {
	var record model.User
	if err := s.db.Where(&model.User{Email: email}).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrInvalidCredentials
		}
		return nil, err
	}

	if subtle.ConstantTimeCompare(apiKeyDigest(apiKey), record.APIKeyDigest) != 1 {
		return nil, store.ErrInvalidCredentials
	}

	user, err := userRow{
		UserID:    record.UserID,
		CompanyID: record.CompanyID,
		Name:      record.Name,
		Email:     record.Email,
		Role:      record.Role,
		CreatedAt: record.CreatedAt,
	}.toUser()
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UsersStore) companyExists(id uuid.UUID) (bool, error) {
	var exists bool
	tx := s.db.Raw(`SELECT EXISTS(SELECT 1 FROM companies WHERE company_id = ?)`, id).Scan(&exists)
	return exists, tx.Error
}

// apiKeyDigest hashes an API key for storage and comparison.
func apiKeyDigest(apiKey string) []byte {
	digest := sha256.Sum256([]byte(apiKey))
	return digest[:]
}
