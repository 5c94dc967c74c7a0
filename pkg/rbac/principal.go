package rbac

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Principal is the authenticated actor making a request. It is a plain
// immutable value: every gate and store call receives it as an
// explicit argument.
type Principal struct {
	ID      uuid.UUID
	Login   string
	Role    Role
	Company uuid.UUID // uuid.Nil unless the principal is a CompanyOwner
}

// NewPrincipal builds a validated principal. Undefined roles are
// rejected here rather than inside the gate, and a CompanyOwner must
// carry its company affiliation.
func NewPrincipal(id uuid.UUID, login string, role Role, company uuid.UUID) (Principal, error) {
	if !role.IsARole() {
		return Principal{}, fmt.Errorf("undefined role %d for principal %q", int(role), login)
	}
	if role == RoleCompanyOwner && company == uuid.Nil {
		return Principal{}, fmt.Errorf("company owner %q must belong to a company", login)
	}
	return Principal{ID: id, Login: login, Role: role, Company: company}, nil
}

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Principal.
	Key ContextKey = "principal"
)

// FromContext retrieves the Principal from ctx.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(Key).(Principal)
	return p, ok
}

// NewContext stores the Principal in ctx.
func NewContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, Key, p)
}
