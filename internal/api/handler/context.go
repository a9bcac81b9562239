package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the session claims injected by the gate middleware and
// performs a fast-fail check before any service call: a non-empty role proves
// the gate ran for this route.
func ctxClaims(c echo.Context) (email, name, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get("email").(string)
	name, _ = c.Get("name").(string)
	return email, name, role, nil
}
