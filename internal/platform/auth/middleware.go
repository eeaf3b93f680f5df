package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// Middleware authenticates every request with a bearer token and places the
// resolved user id on the request context. All credential failures produce
// the same 401 response.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			uid, err := ResolveToken(secret, parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ctx := context.WithValue(c.Request().Context(), UserIDKey, uid)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id, or uuid.Nil when the
// request did not pass through the auth middleware.
func UserIDFromContext(ctx context.Context) uuid.UUID {
	uid, _ := ctx.Value(UserIDKey).(uuid.UUID)
	return uid
}
