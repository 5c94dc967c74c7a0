package store

import "errors"

// ErrNotFound is returned when a company or user doesn't exist, or when
// a user is addressed through a company that doesn't own it.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an email is already taken by
// another user. Uniqueness is global across companies.
var ErrDuplicateEmail = errors.New("email already taken")

// ErrInvalidCredentials is returned when an API key doesn't match.
var ErrInvalidCredentials = errors.New("invalid credentials")
