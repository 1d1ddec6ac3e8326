package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control against the token's "roles" claim.
// Authorities are prefixed role names, e.g. "ROLE_ADMIN"; the claim may hold
// a comma-separated list.
func RBAC(allowedAuthorities ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedAuthorities))
	for _, a := range allowedAuthorities {
		allowed[a] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get("roles").(string)
			for _, r := range strings.Split(roles, ",") {
				if _, ok := allowed[strings.TrimSpace(r)]; ok {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
	}
}
