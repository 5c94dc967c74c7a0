package seed

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantgate/pkg/rbac"
	"tenantgate/pkg/server/store"
)

// fakeStores is an in-memory CompaniesStore/UsersStore pair, just
// enough for exercising Apply.
type fakeStores struct {
	companies []store.Company
	users     []store.User
}

func (f *fakeStores) CreateCompany(name string) (*store.Company, error) {
	company := store.Company{ID: uuid.New(), Name: name}
	f.companies = append(f.companies, company)
	return &company, nil
}

func (f *fakeStores) FetchCompany(id uuid.UUID) (*store.Company, error) {
	for _, c := range f.companies {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStores) FetchCompanyByName(name string) (*store.Company, error) {
	for _, c := range f.companies {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStores) ListCompanies() ([]store.Company, error) { return f.companies, nil }

func (f *fakeStores) UpdateCompany(id uuid.UUID, name string) error { return store.ErrNotFound }

func (f *fakeStores) DeleteCompany(id uuid.UUID) error { return store.ErrNotFound }

func (f *fakeStores) addUser(companyID uuid.UUID, profile store.Profile, role rbac.Role) (*store.User, string, error) {
	for _, u := range f.users {
		if u.Email == profile.Email {
			return nil, "", store.ErrDuplicateEmail
		}
	}
	user := store.User{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      profile.Name,
		Email:     profile.Email,
		Role:      role,
	}
	f.users = append(f.users, user)
	return &user, "api-key-" + profile.Email, nil
}

func (f *fakeStores) CreateCompanyUser(companyID uuid.UUID, profile store.Profile) (*store.User, string, error) {
	return f.addUser(companyID, profile, rbac.RoleCompanyOwner)
}

func (f *fakeStores) CreateAdministrator(profile store.Profile) (*store.User, string, error) {
	return f.addUser(uuid.Nil, profile, rbac.RoleAdministrator)
}

func (f *fakeStores) UpdateCompanyUser(companyID, userID uuid.UUID, profile store.Profile) error {
	return store.ErrNotFound
}

func (f *fakeStores) DeleteCompanyUser(companyID, userID uuid.UUID) error { return store.ErrNotFound }

func (f *fakeStores) ListCompanyUsers(companyID uuid.UUID) ([]store.User, error) {
	var users []store.User
	for _, u := range f.users {
		if u.CompanyID == companyID && u.Role == rbac.RoleCompanyOwner {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeStores) FetchCompanyUser(companyID, userID uuid.UUID) (*store.User, error) {
	for _, u := range f.users {
		if u.ID == userID && u.CompanyID == companyID {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStores) FetchUserByEmail(email string) (*store.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

const sampleDocument = `
administrators:
  - name: Root
    email: root@tenantgate.test
companies:
  - name: Acme
    owners:
      - name: Jane Owner
        email: jane@acme.test
      - name: John Owner
        email: john@acme.test
  - name: Globex
    owners: []
`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	require.Len(t, doc.Administrators, 1)
	require.Len(t, doc.Companies, 2)
	assert.Equal(t, "Acme", doc.Companies[0].Name)
	assert.Len(t, doc.Companies[0].Owners, 2)
	assert.Empty(t, doc.Companies[1].Owners)
}

func TestParseRejectsMissingEmail(t *testing.T) {
	_, err := Parse(strings.NewReader("administrators:\n  - name: No Email\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("companies:\n  - name: Acme\n    owners:\n      - name: No Email\n"))
	assert.Error(t, err)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse(strings.NewReader("companies: [unclosed"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	stores := &fakeStores{}
	result, err := Apply(doc, stores, stores)
	require.NoError(t, err)

	// 1 admin + 2 companies + 2 owners
	assert.Equal(t, 5, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Len(t, result.APIKeys, 3)
	assert.Contains(t, result.APIKeys, "root@tenantgate.test")
	assert.Contains(t, result.APIKeys, "jane@acme.test")

	acme, err := stores.FetchCompanyByName("Acme")
	require.NoError(t, err)
	owners, err := stores.ListCompanyUsers(acme.ID)
	require.NoError(t, err)
	assert.Len(t, owners, 2)
}

func TestApplyIsIdempotent(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	stores := &fakeStores{}
	_, err = Apply(doc, stores, stores)
	require.NoError(t, err)

	result, err := Apply(doc, stores, stores)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 5, result.Skipped)
	assert.Empty(t, result.APIKeys)

	companies, err := stores.ListCompanies()
	require.NoError(t, err)
	assert.Len(t, companies, 2)
}
