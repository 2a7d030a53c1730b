package ports

import (
	"context"

	"github.com/eventhub/events-api/internal/core/domain"
)

// EventRepository defines the interface for event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	// List returns all events ordered by date ascending.
	List(ctx context.Context) ([]domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// Update and Delete return domain.ErrEventNotFound when no row matches,
	// distinguishing "nothing changed" from a store fault.
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
}
