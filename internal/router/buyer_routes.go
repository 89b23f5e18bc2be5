package router

import (
	"github.com/labstack/echo/v4"

	"github.com/venueverse/venue-verse/internal/handler"
	"github.com/venueverse/venue-verse/internal/middleware"
	"github.com/venueverse/venue-verse/internal/model"
)

// RegisterBuyer registers buyer-scoped endpoints under /v1. All routes
// require a valid JWT and the BUYER role. Buyers browse the venue
// catalog with filters, submit booking requests, list their own
// bookings and cancel pending ones.
//
// The optional browse middleware (Redis response cache) is applied to
// the catalog listing only; everything else is per-user data that must
// never be served from a shared cache.
func RegisterBuyer(e *echo.Echo, browse *handler.BuyerBrowseHandler, bookings *handler.BuyerBookingHandler, jwtSecret string, browseCache echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleBuyer),
	)

	if browseCache != nil {
		g.GET("/venues", browse.List, browseCache)
	} else {
		g.GET("/venues", browse.List)
	}

	g.POST("/venues/:id/bookings", bookings.Create)
	g.GET("/my-bookings", bookings.List)
	g.DELETE("/bookings/:id", bookings.Cancel)
}
