package router

import (
	"github.com/labstack/echo/v4"

	"github.com/venueverse/venue-verse/internal/handler"
	"github.com/venueverse/venue-verse/internal/middleware"
	"github.com/venueverse/venue-verse/internal/model"
)

// RegisterSeller registers SELLER-scoped endpoints under /v1.
// All routes require a valid JWT and SELLER role. Sellers manage their
// venue listings and decide incoming booking requests.
func RegisterSeller(e *echo.Echo, venues *handler.SellerVenueHandler, bookings *handler.SellerBookingHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleSeller),
	)

	// ---- Venues ----
	g.POST("/my-venues", venues.Create)
	g.GET("/my-venues", venues.List)
	g.DELETE("/my-venues/:id", venues.Delete)

	// ---- Booking requests ----
	g.GET("/booking-requests", bookings.ListRequests)
	g.PATCH("/booking-requests/:id", bookings.UpdateStatus)
}
