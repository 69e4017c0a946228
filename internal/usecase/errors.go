package usecase

import "errors"

// Sentinel errors for the handler boundary. Handlers map these to HTTP
// statuses with errors.Is; anything else becomes a generic 500.
var (
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is shared by unknown-email and wrong-password
	// so the response cannot reveal whether an email is registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserNotFound = errors.New("user not found")

	ErrNotImplemented = errors.New("not implemented")
)
