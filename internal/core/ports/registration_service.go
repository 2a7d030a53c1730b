package ports

import (
	"context"

	"github.com/eventhub/events-api/internal/core/domain"
)

// RegistrationService enforces the registration ledger invariants. The acting
// user ID always comes from verified token claims, never from request bodies.
type RegistrationService interface {
	Register(ctx context.Context, userID, eventID string) (*domain.Registration, error)
	Cancel(ctx context.Context, userID, eventID string) error
	// ListUserEvents returns the events the user is registered for, ordered
	// by event date ascending.
	ListUserEvents(ctx context.Context, userID string) ([]domain.Event, error)
	// ListParticipants returns the users registered for an event. Admin-only
	// at the API boundary.
	ListParticipants(ctx context.Context, eventID string) ([]domain.UserSummary, error)
}
