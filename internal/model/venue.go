package model

import (
	"strings"
	"time"
)

// Weekdays lists the valid members of a venue's open-days set in
// calendar order. Values are stored lowercase, matching the day
// filter values accepted by the browse endpoint.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Amenities groups the three amenity flags a venue can advertise.
// It is embedded in Venue and reused by the browse filter, where a
// checked flag means "the venue must have this amenity".
type Amenities struct {
	AC          bool `json:"ac"`
	SoundSystem bool `json:"sound_system"`
	FoodCourt   bool `json:"food_court"`
}

// Venue represents a bookable space listing as stored in the
// `venues` table. A venue is owned exclusively by the seller that
// created it and is either present or hard-deleted; there is no
// edit-in-place or soft delete.
//
// Fields:
//  ID        – primary key identifier.
//  OwnerID   – users.id of the owning seller.
//  Name      – listing name (at least 3 characters).
//  OpenTime  – opening time string with am/pm suffix (e.g. "9 am").
//  CloseTime – closing time string with am/pm suffix (e.g. "10 pm").
//  OpenDays  – non-empty set of lowercase weekdays the venue operates.
//  Amenities – amenity flags.
//  Location  – free-form location string.
//  Price     – positive price per day.
//  CreatedAt – timestamp of creation.
type Venue struct {
	ID        uint64    `json:"id"`
	OwnerID   uint64    `json:"owner_id"`
	Name      string    `json:"name"`
	OpenTime  string    `json:"open_time"`
	CloseTime string    `json:"close_time"`
	OpenDays  []string  `json:"open_days"`
	Amenities Amenities `json:"amenities"`
	Location  string    `json:"location"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// IsOpenOn reports whether day (lowercase) is in the venue's
// open-days set.
func (v *Venue) IsOpenOn(day string) bool {
	for _, d := range v.OpenDays {
		if d == day {
			return true
		}
	}
	return false
}

// JoinOpenDays serializes an open-days slice into the comma-joined
// form stored in the venues.open_days column.
func JoinOpenDays(days []string) string {
	return strings.Join(days, ",")
}

// SplitOpenDays parses the venues.open_days column back into a
// slice, dropping empty segments so a malformed row never yields
// phantom days.
func SplitOpenDays(s string) []string {
	out := make([]string, 0, 7)
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// VenueFilter carries the browse filter criteria. Zero values mean
// "criterion inactive": nil price bounds, false amenity flags and an
// empty Day leave the corresponding predicate out of the
// conjunction entirely.
type VenueFilter struct {
	MinPrice    *float64
	MaxPrice    *float64
	AC          bool
	SoundSystem bool
	FoodCourt   bool
	Day         string
}

// IsZero reports whether no criterion is active, i.e. filtering
// would return the input unchanged.
func (f VenueFilter) IsZero() bool {
	return f.MinPrice == nil && f.MaxPrice == nil && !f.AC && !f.SoundSystem && !f.FoodCourt && f.Day == ""
}

// Matches reports whether a single venue satisfies the conjunction
// of the filter's active predicates: price >= min (when set), price
// <= max (when set), every checked amenity present, and the selected
// day contained in the open-days set (when selected).
func (f VenueFilter) Matches(v *Venue) bool {
	if f.MinPrice != nil && v.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && v.Price > *f.MaxPrice {
		return false
	}
	if f.AC && !v.Amenities.AC {
		return false
	}
	if f.SoundSystem && !v.Amenities.SoundSystem {
		return false
	}
	if f.FoodCourt && !v.Amenities.FoodCourt {
		return false
	}
	if f.Day != "" && !v.IsOpenOn(strings.ToLower(f.Day)) {
		return false
	}
	return true
}

// FilterVenues returns the subset of venues matching the filter,
// preserving the input order. With no active criteria the input
// slice is returned as-is, so clearing filters restores the full
// list unchanged.
func FilterVenues(venues []*Venue, f VenueFilter) []*Venue {
	if f.IsZero() {
		return venues
	}
	out := make([]*Venue, 0, len(venues))
	for _, v := range venues {
		if f.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}
