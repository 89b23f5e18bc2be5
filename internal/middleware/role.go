package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole returns a middleware that enforces that the authenticated
// user has one of the given roles.  The roles correspond to the values
// stored in the JWT's "role" claim (BUYER or SELLER).  A request whose
// role is missing or not in the allowed set is aborted with 403.  It
// assumes JWTAuth has already stored the role in context under "role".
func RequireRole(roles ...string) echo.MiddlewareFunc {
	// Set of allowed roles for constant-time lookups.
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := c.Get("role")
			role, ok := v.(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
