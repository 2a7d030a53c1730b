package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventhub/events-api/internal/core/domain"
)

// EventRepository persists events.
type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	event.ID = uuid.New().String()

	_, err := r.db.Exec(ctx,
		`INSERT INTO events (id, title, description, date, location, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		event.ID, event.Title, event.Description, event.Date, event.Location, event.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// List returns all events ordered by date ascending. Past events stay listed.
func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, date, location, image_url
		 FROM events
		 ORDER BY date ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var e domain.Event
	err := r.db.QueryRow(ctx,
		`SELECT id, title, description, date, location, image_url
		 FROM events WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// Update overwrites every mutable field. Zero rows affected means the id does
// not exist, reported as ErrEventNotFound rather than a store fault.
func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events
		 SET title = $2, description = $3, date = $4, location = $5, image_url = $6
		 WHERE id = $1`,
		event.ID, event.Title, event.Description, event.Date, event.Location, event.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// Delete removes the event; registrations cascade via the schema.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func scanEvents(rows pgx.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.ImageURL); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
