package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// callerID extracts the authenticated account id injected by the Auth
// middleware. An empty id means the middleware did not run; fail fast
// before any service call.
func callerID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
