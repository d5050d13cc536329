package auth

import "errors"

// Failure taxonomy surfaced to handlers. Malformed, badly signed and
// expired tokens all map to ErrInvalidToken so callers cannot tell which
// check rejected them.
var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("forbidden")
	ErrPersistence        = errors.New("persistence failure")
)
