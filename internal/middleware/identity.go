package middleware

// identity.go holds helpers shared across middleware files for pulling the
// authenticated user's identity out of the Echo context. The rate limiter
// keys buckets per user where possible and falls back to "anon" for
// unauthenticated traffic.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the user identifier stored by JWTAuth, or "anon"
// when the request is unauthenticated. The claim value may arrive as a
// string or float64 depending on how the token was decoded, so both are
// handled.
func currentUserID(c echo.Context) string {
	if v := c.Get("user_id"); v != nil {
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return strconv.FormatInt(int64(t), 10)
		case int64:
			return strconv.FormatInt(t, 10)
		}
	}
	return "anon"
}
