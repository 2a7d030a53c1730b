package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/events-api/internal/api/metrics"
	"github.com/eventhub/events-api/internal/core/domain"
	"github.com/eventhub/events-api/internal/core/ports"
)

type registerForEventRequest struct {
	EventID string `json:"event_id" validate:"required"`
}

// RegistrationHandler serves the registration ledger routes. The acting user
// always comes from token claims; the event id is the only client input.
type RegistrationHandler struct {
	registrations ports.RegistrationService
}

func NewRegistrationHandler(registrations ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

// Register signs the acting user up for an event.
//
// @Summary      Register for an event
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerForEventRequest  true  "Event reference"
// @Success      201   {object}  domain.Registration
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /registration [post]
func (h *RegistrationHandler) Register(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	var req registerForEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reg, err := h.registrations.Register(c.Request().Context(), userID, req.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, reg)
}

// Cancel removes the acting user's registration for an event.
//
// @Summary      Cancel a registration
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        event_id  path      string  true  "Event ID"
// @Success      200       {object}  messageResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /registration/{event_id} [delete]
func (h *RegistrationHandler) Cancel(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	if err := h.registrations.Cancel(c.Request().Context(), userID, c.Param("event_id")); err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("cancelled").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "registration cancelled"})
}

// MyEvents lists the events the acting user is registered for, date ascending.
//
// @Summary      List own registered events
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Event
// @Failure      401  {object}  errorResponse
// @Router       /user/events [get]
func (h *RegistrationHandler) MyEvents(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	events, err := h.registrations.ListUserEvents(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Participants lists the users registered for an event. Admin only.
//
// @Summary      List event participants
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID"
// @Success      200  {array}   domain.UserSummary
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /events/{id}/registrations [get]
func (h *RegistrationHandler) Participants(c echo.Context) error {
	participants, err := h.registrations.ListParticipants(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, participants)
}
