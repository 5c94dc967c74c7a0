package rbac

import "github.com/google/uuid"

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform snake -json -text -output kind.gen.go

// Kind identifies the type of resource an action targets.
type Kind int

const (
	KindCompany Kind = iota
	KindCompanyUser
)

// Resource describes the target of an action: its kind, plus the
// identifier of the owning company for company-scoped kinds. Company
// is uuid.Nil when the kind is not scoped to a company.
type Resource struct {
	Kind    Kind
	Company uuid.UUID
}

// CompanyResource describes the company collection or a single
// company. The gate does not distinguish the two; only Administrators
// touch either.
func CompanyResource() Resource {
	return Resource{Kind: KindCompany}
}

// CompanyUserResource describes a user (or the user collection) owned
// by the given company.
func CompanyUserResource(companyID uuid.UUID) Resource {
	return Resource{Kind: KindCompanyUser, Company: companyID}
}
