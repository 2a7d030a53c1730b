package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eventhub/events-api/internal/core/domain"
	"github.com/eventhub/events-api/internal/core/ports"
)

// EventService implements admin-side event CRUD. Business rules are thin:
// title and date are required, everything else is free-form. No rule ties an
// event's date to the future.
type EventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

func NewEventService(repo ports.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, log: log}
}

func validateEventInput(in ports.EventInput) error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, in ports.EventInput) (*domain.Event, error) {
	if err := validateEventInput(in); err != nil {
		return nil, err
	}

	event := &domain.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", event.ID).Str("title", event.Title).Msg("event created")
	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) Update(ctx context.Context, id string, in ports.EventInput) (*domain.Event, error) {
	if err := validateEventInput(in); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", id).Msg("event updated")
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("event_id", id).Msg("event deleted")
	return nil
}
