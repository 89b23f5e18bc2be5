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

// BuyerBookingHandler serves the buyer's booking endpoints: create a
// request against a venue, list own requests, cancel while pending.
type BuyerBookingHandler struct {
	Venues   *repository.VenueRepo
	Bookings *repository.BookingRepo
}

func NewBuyerBookingHandler(v *repository.VenueRepo, b *repository.BookingRepo) *BuyerBookingHandler {
	return &BuyerBookingHandler{Venues: v, Bookings: b}
}

// createBookingReq deliberately takes attendees as an untyped value:
// clients submit it from a form field, so both "3" and 3 must count as
// numeric input and both "0" and 0 must fail validation the same way.
type createBookingReq struct {
	BookingDate string `json:"booking_date"`
	Purpose     string `json:"purpose"`
	Attendees   any    `json:"attendees"`
	Notes       string `json:"notes"`
}

// validateCreateBooking checks the booking fields in order: date
// present and well-formed, purpose non-empty after trim, attendee
// count present/numeric/positive. It returns one message per failing
// field and the parsed attendee count on full success.
func validateCreateBooking(req *createBookingReq) (int, map[string]string) {
	errs := map[string]string{}
	date := strings.TrimSpace(req.BookingDate)
	if date == "" {
		errs["booking_date"] = "booking date is required"
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		errs["booking_date"] = "booking date must be YYYY-MM-DD"
	}
	if strings.TrimSpace(req.Purpose) == "" {
		errs["purpose"] = "purpose is required"
	}
	attendees, attErr := parseAttendees(req.Attendees)
	if attErr != "" {
		errs["attendees"] = attErr
	}
	return attendees, errs
}

// parseAttendees normalizes the attendee count. JSON numbers arrive as
// float64, form-sourced values as strings; both are accepted. The
// empty message means the value parsed and is positive.
func parseAttendees(v any) (int, string) {
	switch t := v.(type) {
	case nil:
		return 0, "attendee count is required"
	case float64:
		if t != float64(int(t)) {
			return 0, "attendee count must be a whole number"
		}
		if int(t) <= 0 {
			return 0, "attendee count must be greater than zero"
		}
		return int(t), ""
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, "attendee count is required"
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, "attendee count must be a number"
		}
		if n <= 0 {
			return 0, "attendee count must be greater than zero"
		}
		return n, ""
	default:
		return 0, "attendee count must be a number"
	}
}

// Create validates and inserts a booking request against a venue. The
// stored record copies the venue's id, name, owner and price at this
// moment, so later venue deletion never orphans the booking.
func (h *BuyerBookingHandler) Create(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	venueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || venueID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}

	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	attendees, errs := validateCreateBooking(&req)
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.Venues.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load venue failed"})
	}

	b := &model.Booking{
		VenueID:     v.ID,
		VenueName:   v.Name,
		SellerID:    v.OwnerID,
		BuyerID:     uid,
		BookingDate: strings.TrimSpace(req.BookingDate),
		Purpose:     strings.TrimSpace(req.Purpose),
		Attendees:   attendees,
		Notes:       strings.TrimSpace(req.Notes),
		Status:      model.BookingPending,
		Price:       v.Price,
	}
	if err := h.Bookings.Create(ctx, b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	// Best effort: a broker outage must not fail the request.
	_ = queue_publisher.PublishBookingRequested(ctx, queue.BookingRequestedEvent{
		BookingID:   b.ID,
		VenueID:     b.VenueID,
		VenueName:   b.VenueName,
		SellerID:    b.SellerID,
		BuyerID:     b.BuyerID,
		BookingDate: b.BookingDate,
		Purpose:     b.Purpose,
		Attendees:   b.Attendees,
		Price:       b.Price,
		RequestedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, b)
}

// List returns the buyer's bookings, newest first.
func (h *BuyerBookingHandler) List(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByBuyer(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}

// Cancel hard-deletes one of the buyer's bookings. The delete only
// matches while the booking is still pending; a decided booking
// answers 409 so the client can refresh its view.
func (h *BuyerBookingHandler) Cancel(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.DeleteByIDAndBuyer(ctx, id, uid); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking already decided"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel booking failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
