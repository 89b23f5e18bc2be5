package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/venueverse/venue-verse/internal/model"
	"github.com/venueverse/venue-verse/internal/queue"
	"github.com/venueverse/venue-verse/internal/repository"
	queue_publisher "github.com/venueverse/venue-verse/internal/service"
)

// SellerBookingHandler serves the seller's booking management
// endpoints: list incoming requests and decide them.
type SellerBookingHandler struct {
	Bookings *repository.BookingRepo
}

func NewSellerBookingHandler(b *repository.BookingRepo) *SellerBookingHandler {
	return &SellerBookingHandler{Bookings: b}
}

// ListRequests returns the bookings targeting the seller's venues.
// The optional `status` and `venue_id` query parameters are exact-match
// view filters applied in memory, and the result is ordered with
// pending requests first, then ascending by booking date.
func (h *SellerBookingHandler) ListRequests(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var f model.BookingFilter
	f.Status = strings.ToLower(strings.TrimSpace(c.QueryParam("status")))
	if s := c.QueryParam("venue_id"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			f.VenueID = v
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListBySeller(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	bookings = model.FilterBookings(bookings, f)
	model.SortBookingsForSeller(bookings)
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}

type decideBookingReq struct {
	Status string `json:"status"`
}

// UpdateStatus decides a pending booking request. The underlying
// UPDATE only matches rows that are still pending and owned by the
// seller, so a request decided concurrently in another session comes
// back as 409 instead of silently overwriting the earlier decision.
func (h *SellerBookingHandler) UpdateStatus(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	var req decideBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != model.BookingApproved && status != model.BookingRejected {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be approved or rejected"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	decidedAt := time.Now().UTC()
	if err := h.Bookings.UpdateStatusBySeller(ctx, id, uid, status, decidedAt); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking already decided"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update booking failed"})
		}
	}

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load booking failed"})
	}

	// Best effort: a broker outage must not fail the request.
	_ = queue_publisher.PublishBookingDecided(ctx, queue.BookingDecidedEvent{
		BookingID:   b.ID,
		VenueID:     b.VenueID,
		VenueName:   b.VenueName,
		SellerID:    b.SellerID,
		BuyerID:     b.BuyerID,
		BookingDate: b.BookingDate,
		Status:      b.Status,
		Price:       b.Price,
		DecidedAt:   decidedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, b)
}
