package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/metrics"
)

// RouteClass is the gate's classification of a request path.
type RouteClass int

const (
	// ClassPublic paths pass through; the session reader is never invoked.
	ClassPublic RouteClass = iota
	// ClassAdminUI paths are browser navigation: denial redirects.
	ClassAdminUI
	// ClassAdminAPI paths are JSON endpoints: denial returns 401/403.
	ClassAdminAPI
)

const (
	loginPath     = "/login"
	adminHomePath = "/admin"
)

// gateRoute binds a path prefix to a class and, optionally, an admin-only
// requirement. Longest prefixes come first so the admin-only sub-paths win
// over their parents.
type gateRoute struct {
	prefix    string
	class     RouteClass
	adminOnly bool
}

// routeTable is the single declarative source of protected routes. Anything
// not matched here is public.
var routeTable = []gateRoute{
	{prefix: "/api/admin/users", class: ClassAdminAPI, adminOnly: true},
	{prefix: "/api/admin/settings", class: ClassAdminAPI, adminOnly: true},
	{prefix: "/api/admin", class: ClassAdminAPI},
	{prefix: "/admin/users", class: ClassAdminUI, adminOnly: true},
	{prefix: "/admin/settings", class: ClassAdminUI, adminOnly: true},
	{prefix: "/admin", class: ClassAdminUI},
}

// Classify returns the route class for path and whether it additionally
// requires the admin role.
func Classify(path string) (RouteClass, bool) {
	for _, r := range routeTable {
		if matchPrefix(path, r.prefix) {
			return r.class, r.adminOnly
		}
	}
	return ClassPublic, false
}

// matchPrefix matches on path-segment boundaries: "/admin" covers "/admin"
// and "/admin/...", not "/administrator".
func matchPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

// Gate intercepts every request and enforces the access policy:
//
//	public             → allow
//	protected, no session  → ui: redirect /login   | api: 401
//	admin-only, role editor → ui: redirect /admin  | api: 403
//	otherwise           → allow, claims injected into context
//
// A session reader failure is indistinguishable from "no session" (fail
// closed).
func Gate(sessions SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			class, adminOnly := Classify(c.Request().URL.Path)
			if class == ClassPublic {
				return next(c)
			}

			sess, err := sessions.Read(c.Request())
			if err != nil || sess == nil {
				metrics.GateDenialsTotal.WithLabelValues(className(class), "unauthenticated").Inc()
				if class == ClassAdminUI {
					return c.Redirect(http.StatusFound, loginPath)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if adminOnly && sess.Role != domain.RoleAdmin {
				metrics.GateDenialsTotal.WithLabelValues(className(class), "forbidden").Inc()
				if class == ClassAdminUI {
					// Authenticated but under-privileged: back to the admin
					// home, not the login page.
					return c.Redirect(http.StatusFound, adminHomePath)
				}
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}

			c.Set("email", sess.Email)
			c.Set("name", sess.Name)
			c.Set("role", sess.Role)

			return next(c)
		}
	}
}

func className(class RouteClass) string {
	if class == ClassAdminUI {
		return "admin-ui"
	}
	return "admin-api"
}
