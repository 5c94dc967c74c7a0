package endpoints

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tenantgate/pkg/server/store"
)

// MockCompaniesStore implements store.CompaniesStore for testing using testify/mock
type MockCompaniesStore struct {
	mock.Mock
}

func NewMockCompaniesStore() *MockCompaniesStore {
	return &MockCompaniesStore{}
}

func (m *MockCompaniesStore) CreateCompany(name string) (*store.Company, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Company), args.Error(1)
}

func (m *MockCompaniesStore) FetchCompany(id uuid.UUID) (*store.Company, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Company), args.Error(1)
}

func (m *MockCompaniesStore) FetchCompanyByName(name string) (*store.Company, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Company), args.Error(1)
}

func (m *MockCompaniesStore) ListCompanies() ([]store.Company, error) {
	args := m.Called()
	return args.Get(0).([]store.Company), args.Error(1)
}

func (m *MockCompaniesStore) UpdateCompany(id uuid.UUID, name string) error {
	args := m.Called(id, name)
	return args.Error(0)
}

func (m *MockCompaniesStore) DeleteCompany(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) CreateCompanyUser(companyID uuid.UUID, profile store.Profile) (*store.User, string, error) {
	args := m.Called(companyID, profile)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*store.User), args.String(1), args.Error(2)
}

func (m *MockUsersStore) UpdateCompanyUser(companyID, userID uuid.UUID, profile store.Profile) error {
	args := m.Called(companyID, userID, profile)
	return args.Error(0)
}

func (m *MockUsersStore) DeleteCompanyUser(companyID, userID uuid.UUID) error {
	args := m.Called(companyID, userID)
	return args.Error(0)
}

func (m *MockUsersStore) ListCompanyUsers(companyID uuid.UUID) ([]store.User, error) {
	args := m.Called(companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.User), args.Error(1)
}

func (m *MockUsersStore) FetchCompanyUser(companyID, userID uuid.UUID) (*store.User, error) {
	args := m.Called(companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}

func (m *MockUsersStore) FetchUserByEmail(email string) (*store.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}

func (m *MockUsersStore) CreateAdministrator(profile store.Profile) (*store.User, string, error) {
	args := m.Called(profile)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*store.User), args.String(1), args.Error(2)
}

// MockAuthenticateStore implements store.AuthenticateStore for testing using testify/mock
type MockAuthenticateStore struct {
	mock.Mock
}

func NewMockAuthenticateStore() *MockAuthenticateStore {
	return &MockAuthenticateStore{}
}

func (m *MockAuthenticateStore) VerifyAPIKey(email, apiKey string) (*store.User, error) {
	args := m.Called(email, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) Ping() error {
	args := m.Called()
	return args.Error(0)
}
