package gorm

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tenantgate/pkg/rbac"
	"tenantgate/pkg/server/store"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)

	return db, mock
}

func expectCompanyExists(mock sqlmock.Sqlmock, companyID uuid.UUID, exists bool) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM companies WHERE company_id = $1)`)).
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}

func TestCreateCompanyUser(t *testing.T) {
	companyID := uuid.New()

	t.Run("assigns the company-owner role and returns a one-time key", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		expectCompanyExists(mock, companyID, true)

		userID := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs(sqlmock.AnyArg(), companyID, "Jane Owner", "jane@acme.test",
				"company_owner", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(
				[]string{"user_id", "company_id", "name", "email", "role", "created_at"},
			).AddRow(userID.String(), companyID.String(), "Jane Owner", "jane@acme.test",
				"company_owner", time.Now()))

		user, apiKey, err := users.CreateCompanyUser(companyID, store.Profile{
			Name:  "Jane Owner",
			Email: "jane@acme.test",
		})
		require.NoError(t, err)
		assert.Equal(t, rbac.RoleCompanyOwner, user.Role)
		assert.Equal(t, companyID, user.CompanyID)
		assert.NotEmpty(t, apiKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown company", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		expectCompanyExists(mock, companyID, false)

		_, _, err := users.CreateCompanyUser(companyID, store.Profile{
			Name:  "Jane Owner",
			Email: "jane@acme.test",
		})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation surfaces as ErrDuplicateEmail", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		expectCompanyExists(mock, companyID, true)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"})

		_, _, err := users.CreateCompanyUser(companyID, store.Profile{
			Name:  "Jane Owner",
			Email: "taken@acme.test",
		})
		assert.ErrorIs(t, err, store.ErrDuplicateEmail)
	})
}

func TestUpdateCompanyUser(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()

	t.Run("scoped update", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET name = $1, email = $2`)).
			WithArgs("New Name", "new@acme.test", userID, companyID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := users.UpdateCompanyUser(companyID, userID, store.Profile{
			Name:  "New Name",
			Email: "new@acme.test",
		})
		assert.NoError(t, err)
	})

	t.Run("user owned by a different company", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET name = $1, email = $2`)).
			WithArgs("New Name", "new@acme.test", userID, companyID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := users.UpdateCompanyUser(companyID, userID, store.Profile{
			Name:  "New Name",
			Email: "new@acme.test",
		})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("email collision with another user", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET name = $1, email = $2`)).
			WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"})

		err := users.UpdateCompanyUser(companyID, userID, store.Profile{
			Name:  "New Name",
			Email: "taken@other.test",
		})
		assert.ErrorIs(t, err, store.ErrDuplicateEmail)
	})
}

func TestDeleteCompanyUser(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()

	t.Run("second delete is ErrNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users`)).
			WithArgs(userID, companyID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users`)).
			WithArgs(userID, companyID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, users.DeleteCompanyUser(companyID, userID))
		assert.ErrorIs(t, users.DeleteCompanyUser(companyID, userID), store.ErrNotFound)
	})
}

func TestListCompanyUsers(t *testing.T) {
	companyID := uuid.New()

	t.Run("creation order, company-owner rows only", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		expectCompanyExists(mock, companyID, true)

		first := uuid.New()
		second := uuid.New()
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, company_id, name, email, role, created_at`)).
			WithArgs(companyID, "company_owner").
			WillReturnRows(sqlmock.NewRows(
				[]string{"user_id", "company_id", "name", "email", "role", "created_at"},
			).
				AddRow(first.String(), companyID.String(), "First", "first@acme.test", "company_owner", now).
				AddRow(second.String(), companyID.String(), "Second", "second@acme.test", "company_owner", now.Add(time.Second)))

		got, err := users.ListCompanyUsers(companyID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first, got[0].ID)
		assert.Equal(t, second, got[1].ID)
	})

	t.Run("unknown company", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		expectCompanyExists(mock, companyID, false)

		_, err := users.ListCompanyUsers(companyID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("empty company lists no users", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		expectCompanyExists(mock, companyID, true)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, company_id, name, email, role, created_at`)).
			WithArgs(companyID, "company_owner").
			WillReturnRows(sqlmock.NewRows(
				[]string{"user_id", "company_id", "name", "email", "role", "created_at"},
			))

		got, err := users.ListCompanyUsers(companyID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestFetchCompanyUser(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()

	t.Run("not owned by company", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, company_id, name, email, role, created_at`)).
			WithArgs(userID, companyID).
			WillReturnRows(sqlmock.NewRows(
				[]string{"user_id", "company_id", "name", "email", "role", "created_at"},
			))

		_, err := users.FetchCompanyUser(companyID, userID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
