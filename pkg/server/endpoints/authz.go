package endpoints

import (
	"net/http"

	"tenantgate/pkg/audit"
	"tenantgate/pkg/rbac"
)

// requireAuthorized resolves the principal from the request context,
// consults the role gate and audits the decision. On denial it writes
// the response itself and reports false.
func requireAuthorized(w http.ResponseWriter, r *http.Request, action rbac.Action, resource rbac.Resource) (rbac.Principal, bool) {
	principal, ok := rbac.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
		return rbac.Principal{}, false
	}

	decision := rbac.Authorize(principal, action, resource)

	event := audit.AuthorizeEvent{
		Login:    principal.Login,
		ClientIP: clientIP(r),
		Action:   action.String(),
		Resource: resourceLabel(resource),
		Allowed:  decision.Allowed,
	}
	if !decision.Allowed {
		event.Reason = decision.Reason.String()
	}
	audit.Log(event)

	if !decision.Allowed {
		respondWithError(w, http.StatusForbidden, decision.Reason.String())
		return principal, false
	}

	return principal, true
}

func resourceLabel(resource rbac.Resource) string {
	label := resource.Kind.String()
	if resource.Kind == rbac.KindCompanyUser {
		label += "/" + resource.Company.String()
	}
	return label
}

// clientIP extracts the client address for audit events
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}
