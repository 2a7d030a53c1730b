package ports

import (
	"context"

	"github.com/eventhub/events-api/internal/core/domain"
)

// RegistrationRepository is the persistence interface for the registration
// ledger. The store's UNIQUE(user_id, event_id) constraint is the arbiter of
// the at-most-one invariant: Create relies on it rather than check-then-insert.
type RegistrationRepository interface {
	// Create inserts a registration. A duplicate (user, event) pair yields
	// domain.ErrAlreadyRegistered.
	Create(ctx context.Context, reg *domain.Registration) error
	// Delete removes the registration for exactly (userID, eventID). Zero
	// rows affected yields domain.ErrRegistrationNotFound.
	Delete(ctx context.Context, userID, eventID string) error
	// ListEventsByUser joins through the ledger, ordered by event date ascending.
	ListEventsByUser(ctx context.Context, userID string) ([]domain.Event, error)
	// ListParticipants returns summaries of users registered for the event,
	// ordered by registration time ascending.
	ListParticipants(ctx context.Context, eventID string) ([]domain.UserSummary, error)
}
