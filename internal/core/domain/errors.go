package domain

import "errors"

// Sentinel errors shared between services, repositories, and the HTTP error
// handler. Repositories translate store-level failures (no rows, unique
// violations) into these before they cross the ports boundary.
var (
	// ErrValidation marks client input the caller must correct. It is always
	// wrapped with a field-level message.
	ErrValidation = errors.New("validation failed")

	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("user with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrEventNotFound        = errors.New("event not found")
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrRegistrationNotFound = errors.New("registration not found")
)
