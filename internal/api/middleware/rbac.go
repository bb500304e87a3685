package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/content-system/internal/core/domain"
)

// RequireAction enforces the authorization policy for one declared action.
// The decision comes entirely from domain.Decide; routes never carry their
// own role lists. Unknown actions and roles deny by default.
func RequireAction(action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !domain.Decide(claims.Role, action) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access forbidden"})
			}
			return next(c)
		}
	}
}
