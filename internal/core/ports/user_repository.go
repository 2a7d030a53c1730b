package ports

import (
	"context"

	"github.com/eventhub/events-api/internal/core/domain"
)

// UserRepository defines the interface for credential persistence. Email
// comparison is exact-match as stored.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create inserts the user and returns the stored record. A duplicate
	// email yields domain.ErrEmailTaken, enforced by the store's unique
	// constraint rather than a prior read.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
