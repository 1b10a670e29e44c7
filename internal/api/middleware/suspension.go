package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// SuspensionChecker reports whether an account id has been suspended or
// deleted since its token was issued.
type SuspensionChecker interface {
	IsSuspended(ctx context.Context, userID string) (bool, error)
}

// SuspensionGuard rejects requests from accounts that were suspended or
// deleted after their JWT was issued. Must run after Auth. A checker
// failure lets the request through: the store remains authoritative and
// Redis being down must not lock every admin out.
func SuspensionGuard(checker SuspensionChecker, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return next(c)
			}

			suspended, err := checker.IsSuspended(c.Request().Context(), userID)
			if err != nil {
				log.Warn().Err(err).Str("user_id", userID).Msg("suspension check failed, allowing request")
				return next(c)
			}
			if suspended {
				return echo.NewHTTPError(http.StatusUnauthorized, "account suspended")
			}
			return next(c)
		}
	}
}
