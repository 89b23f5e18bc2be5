package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/venueverse/venue-verse/internal/model"
	"github.com/venueverse/venue-verse/internal/repository"
)

// BuyerBrowseHandler serves the buyer's venue browsing endpoint. The
// collection is fetched whole and filtered in memory; the filter is a
// pure conjunction over the active query parameters, so no parameters
// means the full set in storage order.
type BuyerBrowseHandler struct {
	Venues *repository.VenueRepo
}

func NewBuyerBrowseHandler(v *repository.VenueRepo) *BuyerBrowseHandler {
	return &BuyerBrowseHandler{Venues: v}
}

// parseVenueFilter builds a VenueFilter from query parameters. Absent
// or unparsable values leave the corresponding criterion inactive.
func parseVenueFilter(c echo.Context) model.VenueFilter {
	var f model.VenueFilter
	if s := c.QueryParam("min_price"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			f.MinPrice = &v
		}
	}
	if s := c.QueryParam("max_price"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			f.MaxPrice = &v
		}
	}
	f.AC = queryFlag(c, "ac")
	f.SoundSystem = queryFlag(c, "sound_system")
	f.FoodCourt = queryFlag(c, "food_court")
	f.Day = strings.ToLower(strings.TrimSpace(c.QueryParam("day")))
	return f
}

func queryFlag(c echo.Context, name string) bool {
	v := strings.ToLower(c.QueryParam(name))
	return v == "true" || v == "1"
}

// List returns the venues matching the filter query parameters.
func (h *BuyerBrowseHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	venues, err := h.Venues.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list venues failed"})
	}
	filtered := model.FilterVenues(venues, parseVenueFilter(c))
	return c.JSON(http.StatusOK, echo.Map{"venues": filtered})
}
