package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/content-system/internal/api/metrics"
	"github.com/pressroom/content-system/internal/core/service"
)

const claimsContextKey = "auth_claims"

const bearerRealm = `Bearer realm="content-system"`

// Auth verifies the bearer token and injects the resolved claims into the
// request context. Rejections carry a WWW-Authenticate challenge naming
// the reason; the store is never touched.
func Auth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return challenge(c, "missing_token", "no token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return challenge(c, "missing_token", "authorization header is not a bearer credential")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				desc := "token is invalid"
				if errors.Is(err, service.ErrTokenExpired) {
					desc = "token expired"
				}
				return challenge(c, "invalid_token", desc)
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims attached by Auth, if any.
func ClaimsFrom(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*service.Claims)
	return claims, ok
}

// SetClaims attaches claims directly. Intended for tests.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(claimsContextKey, claims)
}

func challenge(c echo.Context, reason, description string) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	c.Response().Header().Set(echo.HeaderWWWAuthenticate,
		bearerRealm+`, error="`+reason+`", error_description="`+description+`"`)
	return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
}
