package gorm

import (
	"errors"

	"github.com/jackc/pgconn"

	"tenantgate/pkg/server/store"
)

// PostgreSQL error codes the stores care about.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// translateError maps storage-engine errors onto the store sentinels so
// callers never see raw SQLSTATEs. A unique violation is always the
// email index; a foreign-key violation means the owning company is gone.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return store.ErrDuplicateEmail
		case foreignKeyViolation:
			return store.ErrNotFound
		}
	}
	return err
}
