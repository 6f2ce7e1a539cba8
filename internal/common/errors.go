// Package common defines sentinel errors shared between the server layers
// and the CLI client. Callers match them with errors.Is.
package common

import "errors"

var (
	// repository-level errors
	ErrorNotFound = errors.New("not found")

	// service-level errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// signup-specific: username uniqueness violated
	ErrUsernameTaken = errors.New("username already exists")

	// token verification errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// a stored password hash that bcrypt cannot parse; indicates a
	// corrupted record or a misconfigured hashing scheme
	ErrInvalidHash = errors.New("invalid password hash")

	// fatal startup configuration problems
	ErrConfiguration = errors.New("configuration error")
)
