package ports

import (
	"context"
	"time"

	"github.com/eventhub/events-api/internal/core/domain"
)

// EventInput carries the admin-supplied fields for creating or updating an
// event. Title and Date are required; the rest is optional.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	ImageURL    string
}

type EventService interface {
	Create(ctx context.Context, in EventInput) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, id string, in EventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
