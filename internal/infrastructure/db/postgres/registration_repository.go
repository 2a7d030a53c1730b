package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventhub/events-api/internal/core/domain"
)

// RegistrationRepository persists the registration ledger. The
// UNIQUE(user_id, event_id) constraint is the correctness backstop for
// concurrent registrations: two requests passing the application-level event
// check cannot both insert.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	reg.ID = uuid.New().String()

	_, err := r.db.Exec(ctx,
		`INSERT INTO registrations (id, user_id, event_id, registered_at)
		 VALUES ($1, $2, $3, $4)`,
		reg.ID, reg.UserID, reg.EventID, reg.RegisteredAt,
	)
	if err != nil {
		if isPgError(err, codeUniqueViolation) {
			return domain.ErrAlreadyRegistered
		}
		// The event (or user) vanished between the service's existence check
		// and this insert; the foreign key catches the race.
		if isPgError(err, codeForeignKeyViolation) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

// Delete removes the registration for exactly (userID, eventID). Scoping the
// predicate to the acting user's id is what enforces ownership.
func (r *RegistrationRepository) Delete(ctx context.Context, userID, eventID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM registrations WHERE user_id = $1 AND event_id = $2`,
		userID, eventID,
	)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

// ListEventsByUser joins through the ledger, ordered by event date ascending.
func (r *RegistrationRepository) ListEventsByUser(ctx context.Context, userID string) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT e.id, e.title, e.description, e.date, e.location, e.image_url
		 FROM events e
		 JOIN registrations r ON e.id = r.event_id
		 WHERE r.user_id = $1
		 ORDER BY e.date ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list user events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListParticipants returns the users registered for an event, oldest
// registration first.
func (r *RegistrationRepository) ListParticipants(ctx context.Context, eventID string) ([]domain.UserSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.name, u.email
		 FROM users u
		 JOIN registrations r ON u.id = r.user_id
		 WHERE r.event_id = $1
		 ORDER BY r.registered_at ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var participants []domain.UserSummary
	for rows.Next() {
		var p domain.UserSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Email); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}
