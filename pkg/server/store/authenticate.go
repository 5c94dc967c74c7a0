package store

// AuthenticateStore abstracts credential verification
type AuthenticateStore interface {
	// VerifyAPIKey checks an email/API-key pair and returns the user on
	// success. Returns ErrInvalidCredentials on mismatch or unknown
	// email; the two cases are indistinguishable to the caller.
	VerifyAPIKey(email, apiKey string) (*User, error)
}
