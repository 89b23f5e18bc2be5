package handler

// common.go holds helpers shared by the handler package.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// getUserID pulls the authenticated user's ID out of the Echo context.
// JWTAuth stores the raw "sub" claim, which arrives as float64 when the
// token was decoded from JSON or as a string from some issuers. The
// second return value is false when no usable ID is present.
func getUserID(c echo.Context) (uint64, bool) {
	switch v := c.Get("user_id").(type) {
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case uint64:
		return v, true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
