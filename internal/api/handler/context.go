package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/content-system/internal/api/middleware"
	"github.com/pressroom/content-system/internal/core/service"
)

// ctxClaims extracts the claims injected by the Auth middleware and
// fast-fails before any service call. Presence of claims proves the
// middleware ran on this route; a handler reached without them is a
// wiring bug, reported as 401 rather than a panic downstream.
func ctxClaims(c echo.Context) (*service.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || claims.Username == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
