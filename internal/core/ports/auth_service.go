package ports

import (
	"context"

	"github.com/eventhub/events-api/internal/core/domain"
)

type AuthService interface {
	// Register creates an account with the default user role and returns a
	// freshly issued session token alongside the stored user.
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	// Login verifies credentials and returns a session token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// EnsureAdmin seeds the bootstrap admin account if no user with the given
	// email exists yet. Called once at startup, before the server listens.
	EnsureAdmin(ctx context.Context, name, email, password string) error
}
