package domain

import "time"

// Event is a bookable happening managed by administrators. Past events are
// not special-cased anywhere: they stay listed and remain registrable.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// Registration links a user to an event. The (UserID, EventID) pair is unique;
// the store's constraint is the arbiter under concurrency.
type Registration struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	EventID      string    `json:"event_id"`
	RegisteredAt time.Time `json:"registered_at"`
}
