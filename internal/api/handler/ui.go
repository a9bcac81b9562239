package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UIHandler serves the minimal HTML shells for the login page and the admin
// app. The actual interfaces are static bundles deployed separately; these
// shells exist so the gate's redirects always land on a route.
type UIHandler struct{}

func NewUIHandler() *UIHandler {
	return &UIHandler{}
}

func (h *UIHandler) Login(c echo.Context) error {
	return c.HTML(http.StatusOK, `<!doctype html><title>Sign in</title><div id="login"></div>`)
}

func (h *UIHandler) Admin(c echo.Context) error {
	return c.HTML(http.StatusOK, `<!doctype html><title>Admin</title><div id="admin"></div>`)
}
