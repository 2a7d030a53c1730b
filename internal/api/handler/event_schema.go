package handler

import (
	"time"

	"github.com/eventhub/events-api/internal/core/ports"
)

// eventRequest is the payload for creating or updating an event. Only title
// and date are required; past dates are accepted.
type eventRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"        validate:"required"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
}

func (r eventRequest) toInput() ports.EventInput {
	return ports.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}
