package audit

import "fmt"

// AuthenticateEvent records an API key exchange attempt on the
// authenticate endpoint.
type AuthenticateEvent struct {
	Login        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string {
	return "authn"
}

func (e AuthenticateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated", e.Login)
	}
	msg := fmt.Sprintf("%s failed to authenticate", e.Login)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AuthenticateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AuthenticateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Login,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "authenticate",
			"result":    result,
		},
	}
}

// AuthorizeEvent records a role gate decision for a request.
type AuthorizeEvent struct {
	Login    string
	ClientIP string
	Action   string
	Resource string
	Allowed  bool
	Reason   string
}

func (e AuthorizeEvent) MessageID() string {
	return "authz"
}

func (e AuthorizeEvent) Message() string {
	if e.Allowed {
		return fmt.Sprintf("%s was allowed to %s %s", e.Login, e.Action, e.Resource)
	}
	return fmt.Sprintf("%s was denied to %s %s: %s", e.Login, e.Action, e.Resource, e.Reason)
}

func (e AuthorizeEvent) Severity() Severity {
	if e.Allowed {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AuthorizeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthorizeEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Allowed {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.Login,
		},
		SDIDSubject: {
			"resource": e.Resource,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Action,
			"result":    result,
		},
	}
	if !e.Allowed && e.Reason != "" {
		sd[SDIDAction]["reason"] = e.Reason
	}
	return sd
}

// CompanyEvent records a mutation of a company record.
type CompanyEvent struct {
	Login     string
	ClientIP  string
	Operation string // create, update, delete
	CompanyID string
}

func (e CompanyEvent) MessageID() string {
	return "company"
}

func (e CompanyEvent) Message() string {
	return fmt.Sprintf("%s performed %s on company %s", e.Login, e.Operation, e.CompanyID)
}

func (e CompanyEvent) Severity() Severity {
	return SeverityNotice
}

func (e CompanyEvent) Facility() int {
	return FacilityAuth
}

func (e CompanyEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Login,
		},
		SDIDSubject: {
			"company": e.CompanyID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    "success",
		},
	}
}

// UserEvent records a mutation of a company user record.
type UserEvent struct {
	Login     string
	ClientIP  string
	Operation string // create, update, delete
	CompanyID string
	UserID    string
}

func (e UserEvent) MessageID() string {
	return "user"
}

func (e UserEvent) Message() string {
	return fmt.Sprintf("%s performed %s on user %s in company %s", e.Login, e.Operation, e.UserID, e.CompanyID)
}

func (e UserEvent) Severity() Severity {
	return SeverityNotice
}

func (e UserEvent) Facility() int {
	return FacilityAuth
}

func (e UserEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Login,
		},
		SDIDSubject: {
			"company": e.CompanyID,
			"subject": e.UserID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    "success",
		},
	}
}
