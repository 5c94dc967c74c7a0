// Package rbac implements the authorization core for tenantgate.
//
// The package has three pieces:
//
//   - Role: an enumerated privilege level with a total order
//     (Customer < CompanyOwner < Administrator)
//   - Principal: the authenticated actor, carrying a role and an
//     optional company affiliation
//   - Authorize: a pure decision function that maps a principal, an
//     action and a resource descriptor to Allow or Deny
//
// Authorize holds no state and performs no I/O. It is safe to call
// concurrently from any number of request-handling goroutines. All
// permission decisions are a function of the principal's role and
// company affiliation and nothing else; callers pass the principal
// explicitly rather than reading it from ambient state.
//
// # Basic Usage
//
//	p, err := rbac.NewPrincipal(userID, "owner@acme.test", rbac.RoleCompanyOwner, acmeID)
//	if err != nil {
//	    // role/company combination is invalid
//	}
//
//	decision := rbac.Authorize(p, rbac.ActionRead, rbac.Resource{
//	    Kind:    rbac.KindCompanyUser,
//	    Company: acmeID,
//	})
//	if !decision.Allowed {
//	    // respond 403; decision.Reason says why
//	}
package rbac
