package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/events-api/internal/api/middleware"
)

// actingUserID extracts the user id injected by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// wiring bug, rejected as unauthenticated rather than trusted.
func actingUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
