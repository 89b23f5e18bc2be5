package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/venueverse/venue-verse/internal/model"
	"github.com/venueverse/venue-verse/internal/repository"
)

// SellerVenueHandler serves the seller's venue management endpoints:
// create, list own, delete own. Venues have no edit operation; a
// listing is replaced by deleting and re-creating it.
type SellerVenueHandler struct {
	Venues *repository.VenueRepo
}

func NewSellerVenueHandler(v *repository.VenueRepo) *SellerVenueHandler {
	return &SellerVenueHandler{Venues: v}
}

type createVenueReq struct {
	Name        string   `json:"name"`
	OpenTime    string   `json:"open_time"`
	CloseTime   string   `json:"close_time"`
	OpenDays    []string `json:"open_days"`
	AC          bool     `json:"ac"`
	SoundSystem bool     `json:"sound_system"`
	FoodCourt   bool     `json:"food_court"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
}

// validateCreateVenue collects one message per failing field. Open days
// must come from the weekday set; anything else is rejected rather than
// silently stored.
func validateCreateVenue(req *createVenueReq) map[string]string {
	errs := map[string]string{}
	if len(strings.TrimSpace(req.Name)) < 3 {
		errs["name"] = "name must be at least 3 characters"
	}
	if strings.TrimSpace(req.OpenTime) == "" {
		errs["open_time"] = "opening time is required"
	}
	if strings.TrimSpace(req.CloseTime) == "" {
		errs["close_time"] = "closing time is required"
	}
	if len(req.OpenDays) == 0 {
		errs["open_days"] = "select at least one open day"
	} else {
		valid := make(map[string]bool, len(model.Weekdays))
		for _, d := range model.Weekdays {
			valid[d] = true
		}
		for _, d := range req.OpenDays {
			if !valid[strings.ToLower(strings.TrimSpace(d))] {
				errs["open_days"] = "open days must be weekday names"
				break
			}
		}
	}
	if strings.TrimSpace(req.Location) == "" {
		errs["location"] = "location is required"
	}
	if req.Price <= 0 {
		errs["price"] = "price must be greater than zero"
	}
	return errs
}

// Create inserts a venue owned by the authenticated seller and returns
// the stored record.
func (h *SellerVenueHandler) Create(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req createVenueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if errs := validateCreateVenue(&req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	days := make([]string, 0, len(req.OpenDays))
	for _, d := range req.OpenDays {
		days = append(days, strings.ToLower(strings.TrimSpace(d)))
	}

	v := &model.Venue{
		OwnerID:   uid,
		Name:      strings.TrimSpace(req.Name),
		OpenTime:  strings.TrimSpace(req.OpenTime),
		CloseTime: strings.TrimSpace(req.CloseTime),
		OpenDays:  days,
		Amenities: model.Amenities{AC: req.AC, SoundSystem: req.SoundSystem, FoodCourt: req.FoodCourt},
		Location:  strings.TrimSpace(req.Location),
		Price:     req.Price,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Venues.Create(ctx, v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create venue failed"})
	}
	return c.JSON(http.StatusCreated, v)
}

// List returns the venues owned by the authenticated seller.
func (h *SellerVenueHandler) List(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	venues, err := h.Venues.ListByOwner(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list venues failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"venues": venues})
}

// Delete hard-deletes a venue owned by the authenticated seller.
// Bookings against the venue are left untouched; they keep their
// snapshot of the venue's name and price.
func (h *SellerVenueHandler) Delete(c echo.Context) error {
	uid, ok := getUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Venues.DeleteByIDAndOwner(ctx, id, uid); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows), errors.Is(err, repository.ErrVenueNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete venue failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
