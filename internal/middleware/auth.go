package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"manufacturer-api/internal/auth"
)

// ContextKeyEmail is where RequireAuth stores the verified identity claim.
const ContextKeyEmail = "email"

// RequireAuth enforces `Authorization: Bearer <token>` on gated routes.
// A missing header is 401; a present but invalid or expired token is 403.
func RequireAuth(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(ContextKeyEmail, claims.Email)
			return next(c)
		}
	}
}

// RequirePermission runs after RequireAuth and consults the authorization
// policy for the given resource/action pair.
func RequirePermission(policy auth.Policy, resource, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get(ContextKeyEmail).(string)

			err := policy.Authorize(c.Request().Context(), identity, resource, action)
			if err != nil {
				if errors.Is(err, auth.ErrDenied) {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
				return err
			}

			return next(c)
		}
	}
}
