package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/events-api/internal/core/domain"
	"github.com/eventhub/events-api/internal/core/ports"
)

// RegistrationService maintains the ledger of who attends what. The userID
// arguments always come from verified token claims; request bodies are never
// trusted for identity, so a user can only ever touch their own registrations.
type RegistrationService struct {
	regs   ports.RegistrationRepository
	events ports.EventRepository
	log    zerolog.Logger
}

func NewRegistrationService(regs ports.RegistrationRepository, events ports.EventRepository, log zerolog.Logger) *RegistrationService {
	return &RegistrationService{regs: regs, events: events, log: log}
}

// Register records the user's registration for an event. The existence check
// gives a clean NotFound for dangling event IDs; the at-most-one invariant is
// enforced by the store's unique pair constraint, not by this read, so two
// concurrent registrations cannot both slip through.
func (s *RegistrationService) Register(ctx context.Context, userID, eventID string) (*domain.Registration, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	reg := &domain.Registration{
		UserID:       userID,
		EventID:      eventID,
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.regs.Create(ctx, reg); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("event_id", eventID).Msg("registration created")
	return reg, nil
}

// Cancel removes the acting user's registration for the event. The delete
// predicate is scoped to the claims-derived user ID, so nobody can cancel on
// another user's behalf.
func (s *RegistrationService) Cancel(ctx context.Context, userID, eventID string) error {
	if eventID == "" {
		return fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	if err := s.regs.Delete(ctx, userID, eventID); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Str("event_id", eventID).Msg("registration cancelled")
	return nil
}

func (s *RegistrationService) ListUserEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	return s.regs.ListEventsByUser(ctx, userID)
}

func (s *RegistrationService) ListParticipants(ctx context.Context, eventID string) ([]domain.UserSummary, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.regs.ListParticipants(ctx, eventID)
}
