package rbac

import "github.com/google/uuid"

//go:generate go run github.com/dmarkham/enumer -type DenialReason -trimprefix Reason -transform snake -json -text -output reason.gen.go

// DenialReason says why Authorize denied a request.
type DenialReason int

const (
	ReasonInsufficientRole DenialReason = iota
	ReasonCompanyMismatch
	ReasonUnknownResource
)

// Decision is the outcome of an authorization check. Reason is only
// meaningful when Allowed is false.
type Decision struct {
	Allowed bool
	Reason  DenialReason
}

// Allow returns an allowing decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with the given reason.
func Deny(reason DenialReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize decides whether principal may perform action on resource.
// It is a pure function of its three inputs: no I/O, no ambient state,
// and it never panics on well-formed principals. Unrecognized resource
// kinds and malformed descriptors fail closed with ReasonUnknownResource.
//
// Rules, first match wins:
//
//  1. Company resources belong to Administrators alone.
//  2. Company-user resources: Administrators may do anything. A
//     CompanyOwner is scoped to its own company; reaching into another
//     company's users is a company mismatch. Owner self-service inside
//     the own company is staged but not enabled yet, so matching
//     requests are still denied for insufficient role. Customers are
//     always denied.
func Authorize(principal Principal, action Action, resource Resource) Decision {
	_ = action // every rule below applies uniformly to all actions

	switch resource.Kind {
	case KindCompany:
		if principal.Role == RoleAdministrator {
			return Allow()
		}
		return Deny(ReasonInsufficientRole)

	case KindCompanyUser:
		// A company-user descriptor without an owning company is
		// malformed; fail closed rather than guess a scope.
		if resource.Company == uuid.Nil {
			return Deny(ReasonUnknownResource)
		}

		switch principal.Role {
		case RoleAdministrator:
			return Allow()
		case RoleCompanyOwner:
			if resource.Company != principal.Company {
				return Deny(ReasonCompanyMismatch)
			}
			// Extension point: owner self-service user management,
			// scoped to the owner's company. Not enabled yet.
			return Deny(ReasonInsufficientRole)
		default:
			return Deny(ReasonInsufficientRole)
		}
	}

	return Deny(ReasonUnknownResource)
}
