package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/events-api/internal/core/domain"
)

// RequireRole gates a route on the claims role set by Auth. A valid token
// with the wrong role is 403, distinct from the 401 of a missing or invalid
// token.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(domain.Role)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization required")
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		}
	}
}
